package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/models"
)

// PlaceOrderRequest carries the checkout payload. TotalAmount is a pointer so
// an absent field is distinguishable from zero; the figure itself is the
// client's arithmetic and is stored as supplied, not recomputed.
type PlaceOrderRequest struct {
	CustomerName string             `json:"customerName"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone"`
	Address      string             `json:"address"`
	Items        []models.OrderItem `json:"items"`
	TotalAmount  *float64           `json:"totalAmount"`
}

// Validate enforces the required fields before anything touches the store.
func (r *PlaceOrderRequest) Validate() error {
	required := []struct {
		field, value string
	}{
		{"customerName", r.CustomerName},
		{"email", r.Email},
		{"phone", r.Phone},
		{"address", r.Address},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.field, Reason: "required"}
		}
	}
	if r.TotalAmount == nil {
		return &ValidationError{Field: "totalAmount", Reason: "required"}
	}
	if *r.TotalAmount < 0 {
		return &ValidationError{Field: "totalAmount", Reason: "must not be negative"}
	}
	for i, it := range r.Items {
		if it.Quantity < 1 {
			return &ValidationError{Field: "items", Reason: fmt.Sprintf("quantity must be at least 1 (item %d)", i)}
		}
	}
	return nil
}

// OrderService persists checkouts and reads them back with live product data.
type OrderService struct {
	orders   *mongo.Collection
	products *mongo.Collection
}

func NewOrderService(orders, products *mongo.Collection) *OrderService {
	return &OrderService{orders: orders, products: products}
}

// PlaceOrder validates the request, persists a pending order stamped with the
// current time, and returns the store-assigned id. No stock decrement, no
// payment step.
func (s *OrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (primitive.ObjectID, error) {
	if err := req.Validate(); err != nil {
		return primitive.NilObjectID, err
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Items:        req.Items,
		Status:       "pending",
		TotalAmount:  *req.TotalAmount,
		OrderDate:    time.Now().UTC(),
	}

	result, err := s.orders.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, storeErr("insert order", err)
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

// GetOrder returns the order with each item's productId expanded to the
// product's current catalog state. The expansion is a live join for display:
// items keep their snapshot name and price either way, and a product that no
// longer exists simply expands to nothing.
func (s *OrderService) GetOrder(ctx context.Context, id primitive.ObjectID) (models.ExpandedOrder, error) {
	var order models.Order
	err := s.orders.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.ExpandedOrder{}, ErrNotFound
	}
	if err != nil {
		return models.ExpandedOrder{}, storeErr("get order", err)
	}

	expanded := models.ExpandedOrder{Order: order}
	expanded.Items = make([]models.ExpandedOrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		e := models.ExpandedOrderItem{OrderItem: item}

		var product models.Product
		err := s.products.FindOne(ctx, bson.M{"_id": item.ProductID}).Decode(&product)
		if err == nil {
			e.Product = &product
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			return models.ExpandedOrder{}, storeErr("expand order item", err)
		}
		expanded.Items = append(expanded.Items, e)
	}
	return expanded, nil
}
