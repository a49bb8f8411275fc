// Package client is a thin caller of the storefront API, used by the cart
// checkout flow. Calls are one-shot: failures surface immediately and
// nothing is retried.
package client

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/models"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/responses"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/services"
)

type Client struct {
	baseURL string
}

func New(baseURL string) *Client {
	return &Client{baseURL: baseURL}
}

// Products fetches the whole catalog.
func (c *Client) Products() ([]models.Product, error) {
	body, err := c.do(fiber.Get(c.baseURL+"/api/products"), fiber.StatusOK)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id.
func (c *Client) Product(id string) (models.Product, error) {
	body, err := c.do(fiber.Get(c.baseURL+"/api/products/"+id), fiber.StatusOK)
	if err != nil {
		return models.Product{}, err
	}

	var product models.Product
	if err := json.Unmarshal(body, &product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// PlaceOrder submits a checkout and returns the new order's id.
func (c *Client) PlaceOrder(req services.PlaceOrderRequest) (string, error) {
	agent := fiber.Post(c.baseURL + "/api/orders")
	agent.JSON(req)

	body, err := c.do(agent, fiber.StatusCreated)
	if err != nil {
		return "", err
	}

	var created struct {
		Message string `json:"message"`
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		return "", err
	}
	return created.OrderID, nil
}

// do executes the request and hands back the body only on the expected
// status; anything else is turned into an error from the envelope.
func (c *Client) do(agent *fiber.Agent, want int) ([]byte, error) {
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errs[0]
	}
	if code != want {
		return nil, apiError(code, body)
	}
	return body, nil
}

// apiError turns a failure envelope into a Go error. Unparseable bodies fall
// back to the bare status code.
func apiError(code int, body []byte) error {
	var envelope responses.ApiResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
		return fmt.Errorf("api: %s (%s)", envelope.Message, envelope.Code)
	}
	return fmt.Errorf("api: unexpected status %d", code)
}
