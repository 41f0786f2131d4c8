// Package orders defines the order status vocabulary and the customer-facing
// message produced on every transition.
package orders

import "fmt"

// Status values an order moves through. No value is terminal and any status
// may transition to any other; the sequence below is only the usual path.
const (
	StatusPending        = "Pendente"
	StatusPaid           = "Pago"
	StatusInProduction   = "Em Produção"
	StatusOutForDelivery = "Saiu para Entrega"
	StatusShipped        = "Enviado"
	StatusDelivered      = "Entregue"
)

var statusMessages = map[string]string{
	StatusPending:        "Pedido recebido! Aguardando confirmação do pagamento. ⏳",
	StatusPaid:           "Pagamento confirmado! Seu pedido está em produção! 💰",
	StatusInProduction:   "Seu pedido está em produção! 🔧",
	StatusOutForDelivery: "Seu pedido saiu para entrega! 🚚",
	StatusShipped:        "Seu pedido foi enviado! 📦",
	StatusDelivered:      "Pedido entregue! Obrigado pela preferência! ✅",
}

// StatusMessage returns the notification text for a status. Unknown values
// get a generic fallback instead of an error so a transition never fails on
// messaging alone.
func StatusMessage(status string) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return fmt.Sprintf("Status do pedido atualizado para: %s", status)
}
