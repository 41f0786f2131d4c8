package checkout

import (
	"strings"
	"testing"

	"backend/internal/models"
	"backend/internal/orders"
)

func cartFixture() []models.CartItem {
	return []models.CartItem{
		{ProductID: "produto_1", Name: "Creatina DUX", Price: 50.00, Quantity: 2},
		{ProductID: "produto_2", Name: "Whey MAX", Price: 19.90, Quantity: 1, Flavor: "choc"},
	}
}

func TestTotalRoundsToTwoDecimals(t *testing.T) {
	if got := Total(cartFixture()); got != 119.90 {
		t.Fatalf("expected total 119.90, got %v", got)
	}

	items := []models.CartItem{{Price: 0.1, Quantity: 3}}
	if got := Total(items); got != 0.30 {
		t.Fatalf("expected rounded total 0.30, got %v", got)
	}

	if got := Total(nil); got != 0 {
		t.Fatalf("expected empty total 0, got %v", got)
	}
}

func TestSummaryFormat(t *testing.T) {
	got := Summary(cartFixture())
	want := "Creatina DUX (Qtd: 2) | Whey MAX - Sabor: choc (Qtd: 1)"
	if got != want {
		t.Fatalf("summary mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestNewOrderIDShapeAndUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewOrderID()
		if !strings.HasPrefix(id, "pedido_") {
			t.Fatalf("unexpected order id shape: %s", id)
		}
		if seen[id] {
			t.Fatalf("duplicate order id within the same second: %s", id)
		}
		seen[id] = true
	}
}

func TestBuildOrderFreezesCart(t *testing.T) {
	customer := models.OrderCustomer{
		Name:  "Ana Souza",
		Email: "Ana@Exemplo.com",
		Phone: "(11) 98765-4321",
	}

	order, err := BuildOrder(customer, cartFixture())
	if err != nil {
		t.Fatalf("build order failed: %v", err)
	}

	if order.Status != orders.StatusPending {
		t.Fatalf("expected initial status %s, got %s", orders.StatusPending, order.Status)
	}
	if order.Total != 119.90 {
		t.Fatalf("expected total 119.90, got %v", order.Total)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 frozen items, got %d", len(order.Items))
	}
	if order.Customer.Email != "ana@exemplo.com" {
		t.Fatalf("expected normalized email, got %s", order.Customer.Email)
	}
	if !strings.Contains(order.ProductsSummary, "Sabor: choc") {
		t.Fatalf("summary missing flavor: %s", order.ProductsSummary)
	}
}

func TestBuildOrderRejectsEmptyCart(t *testing.T) {
	customer := models.OrderCustomer{Name: "Ana", Email: "ana@exemplo.com"}

	_, err := BuildOrder(customer, nil)
	vErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError for empty cart, got %T", err)
	}
	if vErr.Field != "carrinho" {
		t.Fatalf("expected carrinho field, got %s", vErr.Field)
	}
}

func TestBuildOrderRejectsInvalidSnapshotBeforeAnythingElse(t *testing.T) {
	_, err := BuildOrder(models.OrderCustomer{Name: "Ana", Email: "inválido"}, cartFixture())
	if _, ok := err.(ValidationError); !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
