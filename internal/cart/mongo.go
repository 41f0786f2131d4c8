package cart

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"backend/internal/models"
)

// MongoStore persists account carts in the cart_items collection. Add is a
// single upsert so concurrent adds for the same (owner, productId, flavor)
// never lose an increment; the unique index in internal/database backs this.
type MongoStore struct {
	db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.db.Collection("cart_items")
}

func (s *MongoStore) Add(ctx context.Context, owner string, item models.CartItem) error {
	item = normalizeItem(item)
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	filter := bson.M{
		"owner":     owner,
		"productId": item.ProductID,
		"flavor":    item.Flavor,
	}
	update := bson.M{
		"$inc": bson.M{"quantity": item.Quantity},
		"$setOnInsert": bson.M{
			"owner":     owner,
			"productId": item.ProductID,
			"flavor":    item.Flavor,
			"name":      item.Name,
			"brand":     item.Brand,
			"price":     item.Price,
			"image":     item.Image,
			"addedAt":   item.AddedAt,
		},
	}

	_, err := s.collection().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoStore) Remove(ctx context.Context, owner, productID, flavor string) error {
	_, err := s.collection().DeleteOne(ctx, bson.M{
		"owner":     owner,
		"productId": productID,
		"flavor":    flavor,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoStore) SetQuantity(ctx context.Context, owner, productID, flavor string, quantity int) error {
	if quantity == 0 {
		return s.Remove(ctx, owner, productID, flavor)
	}

	_, err := s.collection().UpdateOne(ctx, bson.M{
		"owner":     owner,
		"productId": productID,
		"flavor":    flavor,
	}, bson.M{
		"$set": bson.M{"quantity": quantity},
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoStore) Clear(ctx context.Context, owner string) error {
	_, err := s.collection().DeleteMany(ctx, bson.M{"owner": owner})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *MongoStore) List(ctx context.Context, owner string) ([]models.CartItem, error) {
	cursor, err := s.collection().Find(ctx, bson.M{"owner": owner},
		options.Find().SetSort(bson.D{{Key: "addedAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	var items []models.CartItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return items, nil
}
