package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
	"backend/internal/notify"
	"backend/internal/orders"
)

type setOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetOrders returns the admin order list, newest first.
func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(c.Query("page"), c.Query("limit"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination params"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		filter := bson.M{}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}

		total, err := db.Collection("orders").CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível listar os pedidos"})
			return
		}

		opts := options.Find().
			SetSort(bson.M{"createdAt": -1}).
			SetSkip((page - 1) * limit).
			SetLimit(limit)

		cursor, err := db.Collection("orders").Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível listar os pedidos"})
			return
		}
		defer cursor.Close(ctx)

		list := make([]models.Order, 0)
		if err := cursor.All(ctx, &list); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível listar os pedidos"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"pedidos": list,
			"total":   total,
			"page":    page,
			"limit":   limit,
		})
	}
}

// newStatusNotification builds the append-only notification row for a status
// transition. Delivered starts false; only an external dispatcher flips it.
func newStatusNotification(order models.Order, status, message string) models.Notification {
	return models.Notification{
		OrderID:   order.OrderID,
		Email:     order.Customer.Email,
		Phone:     order.Customer.Phone,
		Status:    status,
		Message:   message,
		Delivered: false,
		CreatedAt: time.Now(),
	}
}

// SetOrderStatus moves an order to a new status and records the customer
// notification for it. The notification row is written before any delivery
// attempt so a failed send never loses the status change.
func SetOrderStatus(db *mongo.Database, messenger *notify.WhatsApp) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var req setOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "pedido não encontrado"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível consultar o pedido"})
			return
		}

		if _, err := db.Collection("orders").UpdateOne(ctx,
			bson.M{"orderId": orderID},
			bson.M{"$set": bson.M{"status": req.Status}},
		); err != nil {
			log.Println("[ORDER] [ERROR] status update failed for", orderID, ":", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível atualizar o pedido"})
			return
		}

		message := orders.StatusMessage(req.Status)

		// The notification row is part of the transition, not best-effort;
		// only the dispatch below is allowed to fail silently.
		notification := newStatusNotification(order, req.Status, message)
		if _, err := db.Collection("notifications").InsertOne(ctx, notification); err != nil {
			log.Println("[ORDER] [ERROR] notification insert failed for", orderID, ":", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível registrar a notificação"})
			return
		}

		link, ok := messenger.Notify(order.Customer.Phone, message)

		log.Println("[ORDER] [INFO]", orderID, "->", req.Status)

		resp := gin.H{
			"success":  true,
			"order_id": order.OrderID,
			"status":   req.Status,
			"message":  message,
			"notified": ok,
		}
		if ok {
			resp["whatsapp_link"] = link
		}
		c.JSON(http.StatusOK, resp)
	}
}
