package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a cart line frozen into an order at checkout time.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Flavor    string  `bson:"flavor,omitempty" json:"flavor,omitempty"`
	Price     float64 `bson:"price" json:"price"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// OrderCustomer is the customer snapshot captured at checkout. It is
// decoupled from any later account change.
type OrderCustomer struct {
	Name      string `bson:"name" json:"nome"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"telefone,omitempty"`
	CPF       string `bson:"cpf,omitempty" json:"cpf,omitempty"`
	BirthDate string `bson:"birthDate,omitempty" json:"dataNascimento,omitempty"`
	CEP       string `bson:"cep,omitempty" json:"cep,omitempty"`
	City      string `bson:"city,omitempty" json:"cidade,omitempty"`
	State     string `bson:"state,omitempty" json:"estado,omitempty"`
	District  string `bson:"district,omitempty" json:"bairro,omitempty"`
	Address   string `bson:"address,omitempty" json:"endereco,omitempty"`
	Notes     string `bson:"notes,omitempty" json:"observacoes,omitempty"`
}

// Order defines the persisted order document. OrderID, the customer snapshot,
// the items and the total are immutable after creation; only Status changes.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OrderID         string             `bson:"orderId" json:"orderId"`
	Customer        OrderCustomer      `bson:"customer" json:"customer"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Total           float64            `bson:"total" json:"total"`
	ProductsSummary string             `bson:"productsSummary" json:"productsSummary"`
	Status          string             `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
