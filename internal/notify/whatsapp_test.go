package notify

import (
	"strings"
	"testing"
)

func TestChatLinkAddsCountryCodeAndEscapesMessage(t *testing.T) {
	w := NewWhatsApp("55")

	link, ok := w.ChatLink("(11) 98765-4321", "Pagamento confirmado! Seu pedido está em produção! 💰")
	if !ok {
		t.Fatal("expected link for valid phone")
	}
	if !strings.HasPrefix(link, "https://wa.me/5511987654321?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.ContainsAny(link, " !") {
		t.Fatalf("message not escaped: %s", link)
	}
}

func TestChatLinkKeepsExistingCountryCode(t *testing.T) {
	w := NewWhatsApp("55")

	link, ok := w.ChatLink("5511987654321", "oi")
	if !ok {
		t.Fatal("expected link")
	}
	if !strings.HasPrefix(link, "https://wa.me/5511987654321?") {
		t.Fatalf("country code duplicated: %s", link)
	}
}

func TestChatLinkRejectsShortOrMissingPhone(t *testing.T) {
	w := NewWhatsApp("55")

	for _, phone := range []string{"", "123", "abc"} {
		if _, ok := w.ChatLink(phone, "oi"); ok {
			t.Fatalf("expected no link for phone %q", phone)
		}
	}
}
