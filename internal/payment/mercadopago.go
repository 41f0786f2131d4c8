package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// MercadoPago creates checkout preferences via the REST API. Every call is
// bounded by the client timeout so a hung provider cannot stall checkout.
type MercadoPago struct {
	apiURL string
	token  string
	client *http.Client
}

func NewMercadoPago(apiURL, token string) *MercadoPago {
	return &MercadoPago{
		apiURL: apiURL,
		token:  token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type preferenceRequest struct {
	Items    []Item   `json:"items"`
	BackURLs BackURLs `json:"back_urls"`
}

func (m *MercadoPago) CreatePreference(ctx context.Context, items []Item, backURLs BackURLs) (*Preference, error) {
	body, err := json.Marshal(preferenceRequest{Items: items, BackURLs: backURLs})
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		m.apiURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, &ProviderError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.token)

	resp, err := m.client.Do(req)
	if err != nil {
		log.Println("[PAYMENT] [ERROR] preference request failed:", err)
		return nil, &ProviderError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Println("[PAYMENT] [ERROR] provider returned status:", resp.StatusCode)
		return nil, &ProviderError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var pref Preference
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, &ProviderError{Message: "invalid provider response: " + err.Error()}
	}
	if pref.InitPoint == "" {
		return nil, &ProviderError{Message: "link de pagamento não gerado"}
	}

	log.Println("[PAYMENT] [INFO] preference created:", pref.ID)
	return &pref, nil
}
