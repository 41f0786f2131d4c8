package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testItems() []Item {
	return []Item{
		{ID: "produto_1", Title: "Creatina DUX", Quantity: 2, CurrencyID: "BRL", UnitPrice: 50.00},
	}
}

func testBackURLs() BackURLs {
	return BackURLs{
		Success: "http://localhost:8080/pagamento/sucesso",
		Failure: "http://localhost:8080/pagamento/falha",
		Pending: "http://localhost:8080/pagamento/pendente",
	}
}

func TestCreatePreferenceSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/checkout/preferences" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("unexpected authorization header: %s", got)
		}

		var req preferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid request body: %v", err)
		}
		if len(req.Items) != 1 || req.Items[0].CurrencyID != "BRL" {
			t.Fatalf("unexpected items payload: %+v", req.Items)
		}
		if req.BackURLs.Pending == "" {
			t.Fatal("missing pending back url")
		}

		_ = json.NewEncoder(w).Encode(Preference{
			ID:        "pref-123",
			InitPoint: "https://mp.example/init/pref-123",
		})
	}))
	defer server.Close()

	mp := NewMercadoPago(server.URL, "test-token")
	pref, err := mp.CreatePreference(context.Background(), testItems(), testBackURLs())
	if err != nil {
		t.Fatalf("create preference failed: %v", err)
	}
	if pref.InitPoint != "https://mp.example/init/pref-123" {
		t.Fatalf("unexpected init point: %s", pref.InitPoint)
	}
}

func TestCreatePreferenceProviderFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid token"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	mp := NewMercadoPago(server.URL, "bad-token")
	_, err := mp.CreatePreference(context.Background(), testItems(), testBackURLs())

	pErr, ok := err.(*ProviderError)
	if !ok {
		t.Fatalf("expected ProviderError, got %T", err)
	}
	if pErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", pErr.StatusCode)
	}
}

func TestCreatePreferenceMissingLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(Preference{ID: "pref-456"})
	}))
	defer server.Close()

	mp := NewMercadoPago(server.URL, "test-token")
	if _, err := mp.CreatePreference(context.Background(), testItems(), testBackURLs()); err == nil {
		t.Fatal("expected error when provider returns no init_point")
	}
}
