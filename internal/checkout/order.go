package checkout

import (
	"encoding/hex"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"backend/internal/models"
	"backend/internal/orders"
)

// NewOrderID returns a globally unique order id. The timestamp keeps ids
// human sortable; uniqueness comes from the random suffix and is additionally
// enforced by the unique index on orders.orderId.
func NewOrderID() string {
	u := uuid.New()
	return fmt.Sprintf("pedido_%s_%s",
		time.Now().Format("20060102_150405"),
		hex.EncodeToString(u[:])[:8],
	)
}

// Total sums price×quantity over the cart, rounded to 2 decimal places.
func Total(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

// Summary renders the human-readable product list stored on the order:
// "name[ - Sabor: flavor] (Qtd: n)" joined by " | ".
func Summary(items []models.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		line := item.Name
		if item.Flavor != "" {
			line += fmt.Sprintf(" - Sabor: %s", item.Flavor)
		}
		line += fmt.Sprintf(" (Qtd: %d)", item.Quantity)
		parts = append(parts, line)
	}
	return strings.Join(parts, " | ")
}

// BuildOrder validates the snapshot, rejects an empty cart and freezes the
// cart into a new Pendente order. Nothing is persisted here.
func BuildOrder(customer models.OrderCustomer, items []models.CartItem) (models.Order, error) {
	if err := ValidateCustomer(customer); err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ValidationError{Field: "carrinho", Message: "carrinho vazio"}
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Flavor:    item.Flavor,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	customer.Email = strings.ToLower(strings.TrimSpace(customer.Email))
	customer.Name = strings.TrimSpace(customer.Name)

	return models.Order{
		OrderID:         NewOrderID(),
		Customer:        customer,
		Items:           orderItems,
		Total:           Total(items),
		ProductsSummary: Summary(items),
		Status:          orders.StatusPending,
		CreatedAt:       time.Now(),
	}, nil
}
