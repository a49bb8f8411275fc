package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a denormalized snapshot of a product at order time. ProductID
// is a weak reference: later product edits or deletions do not touch it.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Price     float64            `bson:"price" json:"price"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerName string             `bson:"customerName" json:"customerName"`
	Email        string             `bson:"email" json:"email"`
	Phone        string             `bson:"phone" json:"phone"`
	Address      string             `bson:"address" json:"address"`
	Items        []OrderItem        `bson:"items" json:"items"`
	Status       string             `bson:"status" json:"status"`
	TotalAmount  float64            `bson:"totalAmount" json:"totalAmount"`
	OrderDate    time.Time          `bson:"orderDate" json:"orderDate"`
}

// ExpandedOrderItem pairs an order line with the current catalog state of its
// product, for display. Product is nil when the product no longer exists.
type ExpandedOrderItem struct {
	OrderItem `bson:",inline"`
	Product   *Product `bson:"-" json:"product,omitempty"`
}

// ExpandedOrder is an Order whose items carry live product data.
type ExpandedOrder struct {
	Order `bson:",inline"`
	Items []ExpandedOrderItem `bson:"-" json:"items"`
}
