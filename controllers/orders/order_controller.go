package controllers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/responses"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/services"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder accepts a checkout and returns the new order's id. The total
// is stored as the client computed it.
func (oc *OrderController) CreateOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	var req services.PlaceOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeBadRequest, "Invalid request body")
	}

	orderID, err := oc.orders.PlaceOrder(ctx, req)
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeValidation, "Missing required field: "+verr.Field)
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error placing order")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"orderId": orderID.Hex(),
	})
}

// GetOrder returns the order with items expanded to current product data.
func (oc *OrderController) GetOrder(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeBadRequest, "Invalid order ID format")
	}

	order, err := oc.orders.GetOrder(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return responses.Error(c, fiber.StatusNotFound, responses.CodeNotFound, "Order not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error fetching order")
	}
	return c.Status(fiber.StatusOK).JSON(order)
}
