package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is one product+flavor line in a cart. The (owner, productId,
// flavor) triple is unique per cart; adding a matching item increments the
// quantity instead of creating a second row. Owner is either an account id
// or an anonymous cart-session id; the two never mix.
type CartItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Owner     string             `bson:"owner" json:"-"`
	ProductID string             `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Brand     string             `bson:"brand,omitempty" json:"brand,omitempty"`
	Price     float64            `bson:"price" json:"price"`
	Flavor    string             `bson:"flavor,omitempty" json:"flavor,omitempty"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	AddedAt   time.Time          `bson:"addedAt" json:"addedAt"`
}
