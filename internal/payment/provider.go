// Package payment talks to the external payment provider. The core only
// depends on the Provider interface; the Mercado Pago client is wired in at
// startup.
package payment

import (
	"context"
	"fmt"
)

// Item is one cart line sent to the provider.
type Item struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
	UnitPrice  float64 `json:"unit_price"`
}

// BackURLs are the redirect targets the provider sends the customer to.
type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// Preference is the provider's answer: a hosted payment link plus its id.
type Preference struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type Provider interface {
	CreatePreference(ctx context.Context, items []Item, backURLs BackURLs) (*Preference, error)
}

// ProviderError covers any failed or linkless provider response. The order
// stays Pendente when this surfaces; the caller may retry against the same
// order id.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("payment provider error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("payment provider error: %s", e.Message)
}
