package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
	"backend/internal/orders"
)

// GetOrderStatus looks an order up by id plus the e-mail it was placed with.
// Both have to match; any mismatch gets the same not-found answer so the
// endpoint leaks nothing about which part was wrong.
func GetOrderStatus(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := strings.TrimSpace(c.Query("orderId"))
		email := strings.ToLower(strings.TrimSpace(c.Query("email")))

		if orderID == "" || email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId e email são obrigatórios"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{
			"orderId":        orderID,
			"customer.email": email,
		}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "pedido não encontrado"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível consultar o pedido"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"order_id":  order.OrderID,
			"status":    order.Status,
			"message":   orders.StatusMessage(order.Status),
			"produtos":  order.ProductsSummary,
			"total":     order.Total,
			"createdAt": order.CreatedAt,
		})
	}
}
