package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is an append-only record created on every order status
// transition. Delivered stays false until an external dispatcher confirms
// delivery; nothing in this service flips it.
type Notification struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID   string             `bson:"orderId" json:"orderId"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Message   string             `bson:"message" json:"message"`
	Delivered bool               `bson:"delivered" json:"delivered"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
