package handlers

import (
	"testing"

	"backend/internal/models"
	"backend/internal/orders"
)

func TestNewStatusNotification(t *testing.T) {
	order := models.Order{
		OrderID: "pedido_20260831_150405_a1b2c3d4",
		Customer: models.OrderCustomer{
			Name:  "Ana",
			Email: "ana@example.com",
			Phone: "11987654321",
		},
	}

	n := newStatusNotification(order, orders.StatusPaid, orders.StatusMessage(orders.StatusPaid))

	if n.OrderID != order.OrderID {
		t.Errorf("order id not carried over: %q", n.OrderID)
	}
	if n.Email != "ana@example.com" || n.Phone != "11987654321" {
		t.Errorf("destination not carried over: %q / %q", n.Email, n.Phone)
	}
	if n.Status != orders.StatusPaid {
		t.Errorf("unexpected status: %q", n.Status)
	}
	if n.Message != "Pagamento confirmado! Seu pedido está em produção! 💰" {
		t.Errorf("unexpected message: %q", n.Message)
	}
	if n.Delivered {
		t.Error("delivered must start false; dispatch is external")
	}
	if n.CreatedAt.IsZero() {
		t.Error("created at not set")
	}
}

func TestNewStatusNotificationUnknownStatusGetsFallback(t *testing.T) {
	order := models.Order{
		OrderID:  "pedido_20260831_150405_a1b2c3d4",
		Customer: models.OrderCustomer{Email: "ana@example.com"},
	}

	// Statuses outside the fixed vocabulary are still applied; the rendered
	// message falls back to the generic template.
	status := "Em Análise"
	n := newStatusNotification(order, status, orders.StatusMessage(status))

	if n.Status != status {
		t.Errorf("unknown status must be kept as-is, got %q", n.Status)
	}
	if n.Message != "Status do pedido atualizado para: Em Análise" {
		t.Errorf("unexpected fallback message: %q", n.Message)
	}
}
