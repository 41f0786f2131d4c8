package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/cart"
	"backend/internal/checkout"
	"backend/internal/models"
	"backend/internal/orders"
	"backend/internal/payment"
)

type checkoutRequest struct {
	Customer models.OrderCustomer `json:"cliente" binding:"required"`
}

// paymentItems flattens an order into the provider's line-item shape.
func paymentItems(order models.Order) []payment.Item {
	items := make([]payment.Item, 0, len(order.Items))
	for _, line := range order.Items {
		title := line.Name
		if line.Flavor != "" {
			title = line.Name + " - " + line.Flavor
		}
		items = append(items, payment.Item{
			ID:         line.ProductID,
			Title:      title,
			Quantity:   line.Quantity,
			CurrencyID: "BRL",
			UnitPrice:  line.Price,
		})
	}
	return items
}

// respondCheckoutError maps a BuildOrder failure onto the wire: a
// ValidationError answers 400 with its field, anything else is a 500.
// ValidationError is value-typed, so errors.As takes a value target.
func respondCheckoutError(c *gin.Context, err error) {
	var ve checkout.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": ve.Message,
			"field": ve.Field,
		})
		return
	}
	log.Println("[CHECKOUT] [ERROR] order build failed:", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível criar o pedido"})
}

func backURLs(baseURL string) payment.BackURLs {
	return payment.BackURLs{
		Success: baseURL + "/pagamento/sucesso",
		Failure: baseURL + "/pagamento/falha",
		Pending: baseURL + "/pagamento/pendente",
	}
}

// Checkout snapshots the caller's cart into an order, persists it as
// "Pendente" and only then asks the payment provider for a checkout link.
// A provider failure leaves the order on record so payment can be retried.
func Checkout(db *mongo.Database, stores *cart.Stores, provider payment.Provider, jwtSecret, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/checkout"
		defer handlePanic(c, route)

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "serviço indisponível")
			return
		}

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		owner, store, _ := cartActor(c, stores, jwtSecret)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		items, err := store.List(ctx, owner)
		if err != nil {
			log.Println("[CHECKOUT] [ERROR] cart read failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "carrinho indisponível"})
			return
		}

		order, err := checkout.BuildOrder(req.Customer, items)
		if err != nil {
			respondCheckoutError(c, err)
			return
		}

		if _, err := db.Collection("orders").InsertOne(ctx, order); err != nil {
			log.Println("[CHECKOUT] [ERROR] order insert failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível salvar o pedido"})
			return
		}

		pref, err := provider.CreatePreference(ctx, paymentItems(order), backURLs(baseURL))
		if err != nil {
			// The order stays "Pendente" and the cart untouched; the client
			// can retry payment for the same order id.
			log.Println("[CHECKOUT] [ERROR] payment preference failed for", order.OrderID, ":", err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error":    "não foi possível gerar o link de pagamento",
				"order_id": order.OrderID,
			})
			return
		}

		if err := store.Clear(ctx, owner); err != nil {
			log.Println("[CHECKOUT] [ERROR] cart clear failed for", order.OrderID, ":", err)
		}

		log.Println("[CHECKOUT] [INFO] order created:", order.OrderID)
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"order_id":      order.OrderID,
			"init_point":    pref.InitPoint,
			"preference_id": pref.ID,
		})
	}
}

// RetryPayment generates a fresh checkout link for an order that never left
// "Pendente". Orders in any later status are done paying.
func RetryPayment(db *mongo.Database, provider payment.Provider, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "pedido não encontrado"})
			return
		}
		if err != nil {
			log.Println("[CHECKOUT] [ERROR] order lookup failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível consultar o pedido"})
			return
		}

		if order.Status != orders.StatusPending {
			c.JSON(http.StatusConflict, gin.H{"error": "pedido já processado"})
			return
		}

		pref, err := provider.CreatePreference(ctx, paymentItems(order), backURLs(baseURL))
		if err != nil {
			log.Println("[CHECKOUT] [ERROR] payment preference retry failed for", order.OrderID, ":", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "não foi possível gerar o link de pagamento"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"order_id":      order.OrderID,
			"init_point":    pref.InitPoint,
			"preference_id": pref.ID,
		})
	}
}
