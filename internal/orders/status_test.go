package orders

import "testing"

func TestStatusMessageForKnownStatuses(t *testing.T) {
	if got := StatusMessage(StatusPaid); got != "Pagamento confirmado! Seu pedido está em produção! 💰" {
		t.Fatalf("unexpected Pago message: %q", got)
	}
	for _, status := range []string{StatusPending, StatusInProduction, StatusOutForDelivery, StatusShipped, StatusDelivered} {
		if StatusMessage(status) == "" {
			t.Fatalf("expected message for status %s", status)
		}
	}
}

func TestStatusMessageFallbackForUnknownStatus(t *testing.T) {
	got := StatusMessage("Extraviado")
	want := "Status do pedido atualizado para: Extraviado"
	if got != want {
		t.Fatalf("fallback mismatch: got %q want %q", got, want)
	}
}
