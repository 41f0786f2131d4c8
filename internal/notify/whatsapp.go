// Package notify builds best-effort customer notifications. Delivery itself
// is external: this service only constructs the click-to-chat link and
// reports whether one could be built. A notify failure never fails the
// surrounding status update.
package notify

import (
	"fmt"
	"log"
	"net/url"
	"strings"
)

// WhatsApp constructs wa.me click-to-chat links for a fixed country code.
type WhatsApp struct {
	CountryCode string
}

func NewWhatsApp(countryCode string) *WhatsApp {
	return &WhatsApp{CountryCode: countryCode}
}

// ChatLink returns the click-to-chat URL for the phone and message, or
// ok=false when the phone is missing or too short to address.
func (w *WhatsApp) ChatLink(phone, message string) (string, bool) {
	digits := digitsOf(phone)
	if len(digits) < 10 {
		return "", false
	}

	if !strings.HasPrefix(digits, w.CountryCode) {
		digits = w.CountryCode + digits
	}

	link := fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message))
	return link, true
}

// Notify builds the dispatch link for the order message. The returned flag is
// informational only; the caller records it, never fails on it.
func (w *WhatsApp) Notify(phone, message string) (string, bool) {
	link, ok := w.ChatLink(phone, message)
	if !ok {
		log.Println("[NOTIFY] [WARN] no dispatchable phone for notification")
		return "", false
	}
	log.Println("[NOTIFY] [INFO] chat link built for notification")
	return link, true
}

func digitsOf(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
