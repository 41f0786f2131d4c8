package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureAccountIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("accounts").Indexes()

	// Emails are lower-cased before every write and lookup, so the unique
	// index enforces case-insensitive uniqueness.
	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureAccountIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureAccountIndexes: email index error:", err)
		return err
	}
	log.Println("EnsureAccountIndexes: email_unique index created")
	return nil
}

func EnsureCartIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("cart_items").Indexes()

	// One row per (owner, productId, flavor); the upsert in the cart store
	// relies on this to make increment-or-insert race free.
	lineIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "owner", Value: 1},
			{Key: "productId", Value: 1},
			{Key: "flavor", Value: 1},
		},
		Options: options.Index().
			SetName("owner_product_flavor_unique").
			SetUnique(true),
	}

	log.Println("EnsureCartIndexes: creating owner_product_flavor_unique index")
	_, err := indexes.CreateOne(ctx, lineIndex)
	if err != nil {
		log.Println("EnsureCartIndexes: cart line index error:", err)
		return err
	}
	log.Println("EnsureCartIndexes: owner_product_flavor_unique index created")
	return nil
}

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	orderIDIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().
			SetName("orderId_unique").
			SetUnique(true),
	}

	log.Println("EnsureOrderIndexes: creating orderId_unique index")
	_, err := indexes.CreateOne(ctx, orderIDIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: orderId index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: orderId_unique index created")
	return nil
}

func EnsureNotificationIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("notifications").Indexes()

	orderIDIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "orderId", Value: 1}},
		Options: options.Index().SetName("orderId_index"),
	}

	log.Println("EnsureNotificationIndexes: creating orderId_index index")
	_, err := indexes.CreateOne(ctx, orderIDIndex)
	if err != nil {
		log.Println("EnsureNotificationIndexes: orderId index error:", err)
		return err
	}
	log.Println("EnsureNotificationIndexes: orderId_index index created")
	return nil
}
