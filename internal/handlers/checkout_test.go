package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/checkout"
	"backend/internal/models"
)

func TestPaymentItems(t *testing.T) {
	order := models.Order{
		Items: []models.OrderItem{
			{ProductID: "creatina_dux", Name: "Creatina DUX", Price: 50.00, Quantity: 2},
			{ProductID: "whey_max", Name: "Whey MAX", Flavor: "Chocolate", Price: 19.90, Quantity: 1},
		},
	}

	items := paymentItems(order)
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	if items[0].Title != "Creatina DUX" {
		t.Errorf("unexpected title without flavor: %q", items[0].Title)
	}
	if items[1].Title != "Whey MAX - Chocolate" {
		t.Errorf("unexpected title with flavor: %q", items[1].Title)
	}

	for _, item := range items {
		if item.CurrencyID != "BRL" {
			t.Errorf("expected BRL currency, got %q", item.CurrencyID)
		}
	}
	if items[0].Quantity != 2 || items[0].UnitPrice != 50.00 {
		t.Errorf("quantity/price not carried over: %+v", items[0])
	}
}

func TestBackURLs(t *testing.T) {
	urls := backURLs("https://loja.example.com")

	if urls.Success != "https://loja.example.com/pagamento/sucesso" {
		t.Errorf("unexpected success url: %q", urls.Success)
	}
	if urls.Failure != "https://loja.example.com/pagamento/falha" {
		t.Errorf("unexpected failure url: %q", urls.Failure)
	}
	if urls.Pending != "https://loja.example.com/pagamento/pendente" {
		t.Errorf("unexpected pending url: %q", urls.Pending)
	}
}

func TestAccountIDFromHeader(t *testing.T) {
	const secret = "test-secret"
	accountID := primitive.NewObjectID()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   accountID.Hex(),
		"role":  models.RoleCustomer,
		"email": "cliente@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}

	got, err := accountIDFromHeader("Bearer "+signed, secret)
	if err != nil {
		t.Fatalf("expected valid header, got error: %v", err)
	}
	if got == nil || *got != accountID {
		t.Errorf("wrong account id: got %v, want %s", got, accountID.Hex())
	}

	got, err = accountIDFromHeader("", secret)
	if err != nil || got != nil {
		t.Errorf("empty header should resolve to anonymous, got id=%v err=%v", got, err)
	}

	if _, err := accountIDFromHeader("Bearer "+signed, "wrong-secret"); err == nil {
		t.Error("expected error for token signed with another secret")
	}

	if _, err := accountIDFromHeader("Basic abc123", secret); err == nil {
		t.Error("expected error for non-bearer header")
	}

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": accountID.Hex(),
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signedExpired, err := expired.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("signing expired token: %v", err)
	}
	if _, err := accountIDFromHeader("Bearer "+signedExpired, secret); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestRespondCheckoutErrorMapsValidationTo400(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		customer models.OrderCustomer
		field    string
	}{
		{"missing name", models.OrderCustomer{}, "nome"},
		{"bad email", models.OrderCustomer{Name: "Ana", Email: "not-an-email"}, "email"},
		{"bad cpf", models.OrderCustomer{Name: "Ana", Email: "ana@example.com", CPF: "111.111.111-11"}, "cpf"},
		{"empty cart", models.OrderCustomer{Name: "Ana", Email: "ana@example.com"}, "carrinho"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			_, err := checkout.BuildOrder(tc.customer, nil)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			respondCheckoutError(c, err)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body["field"] != tc.field {
				t.Errorf("expected field %q, got %q", tc.field, body["field"])
			}
			if body["error"] == "" {
				t.Error("expected a field-level reason in the body")
			}
		})
	}
}

func TestRespondCheckoutErrorOtherErrorsAre500(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondCheckoutError(c, errors.New("collection dropped"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
