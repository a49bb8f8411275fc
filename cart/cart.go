// Package cart is the client-side half of the storefront: it holds the
// shopper's cart across a session, snapshots it to storage on every
// mutation, and drives the pricing engine and the order API at checkout.
package cart

import (
	"encoding/json"
	"errors"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/client"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/models"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/pricing"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/services"
)

var ErrEmptyCart = errors.New("cart is empty")

// Item is one cart line: a product snapshot plus how many of it.
type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// snapshot is the serialized form written to storage.
type snapshot struct {
	Items []Item `json:"items"`
}

// Controller owns the cart for a single session. It is not safe for
// concurrent use; the storefront mutates it from one place at a time.
type Controller struct {
	storage Storage
	pricing pricing.Config
	items   []Item
	promo   string
}

// NewController loads any previous snapshot from storage. A missing or
// unreadable snapshot just starts the session with an empty cart.
func NewController(storage Storage) *Controller {
	c := &Controller{storage: storage, pricing: pricing.DefaultConfig()}

	if data, err := storage.Load(); err == nil && len(data) > 0 {
		var snap snapshot
		if json.Unmarshal(data, &snap) == nil {
			c.items = snap.Items
		}
	}
	return c
}

// Add merges quantity into the existing line for the product, or appends a
// new line. Quantities below one count as one.
func (c *Controller) Add(product models.Product, quantity int) error {
	if quantity < 1 {
		quantity = 1
	}

	found := false
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, Item{Product: product, Quantity: quantity})
	}
	return c.save()
}

// Remove deletes the line for the product, if any.
func (c *Controller) Remove(productID string) error {
	for i := range c.items {
		if c.items[i].Product.ID.Hex() == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return c.save()
}

// SetQuantity updates a line's quantity; anything below one removes the line.
func (c *Controller) SetQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return c.Remove(productID)
	}
	for i := range c.items {
		if c.items[i].Product.ID.Hex() == productID {
			c.items[i].Quantity = quantity
			break
		}
	}
	return c.save()
}

// Clear empties the cart.
func (c *Controller) Clear() error {
	c.items = nil
	return c.save()
}

// Items returns a copy of the cart lines in insertion order.
func (c *Controller) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the total number of units across all lines.
func (c *Controller) Count() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// ApplyPromo records the code for subsequent quotes. An unrecognized code
// clears any previously applied promo and reports false.
func (c *Controller) ApplyPromo(code string) bool {
	if c.pricing.ValidPromo(code) {
		c.promo = code
		return true
	}
	c.promo = ""
	return false
}

// Quote prices the current cart under the applied promo.
func (c *Controller) Quote() pricing.Breakdown {
	lines := make([]pricing.LineItem, 0, len(c.items))
	for _, it := range c.items {
		lines = append(lines, pricing.LineItem{Price: it.Product.Price, Quantity: it.Quantity})
	}
	return c.pricing.Quote(lines, c.promo)
}

// CustomerInfo is the checkout form. Address already carries the city and
// zip concatenated in, the way the order API stores it.
type CustomerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Checkout quotes the cart, places the order through the API client, and
// clears the cart on success. The failed path leaves the cart untouched so
// the shopper can try again; nothing retries automatically.
func (c *Controller) Checkout(api *client.Client, info CustomerInfo) (string, error) {
	if len(c.items) == 0 {
		return "", ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, models.OrderItem{
			ProductID: it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Quantity:  it.Quantity,
		})
	}

	total := c.Quote().Total.InexactFloat64()
	req := services.PlaceOrderRequest{
		CustomerName: info.Name,
		Email:        info.Email,
		Phone:        info.Phone,
		Address:      info.Address,
		Items:        items,
		TotalAmount:  &total,
	}

	orderID, err := api.PlaceOrder(req)
	if err != nil {
		return "", err
	}

	if err := c.Clear(); err != nil {
		return orderID, err
	}
	return orderID, nil
}

func (c *Controller) save() error {
	data, err := json.Marshal(snapshot{Items: c.items})
	if err != nil {
		return err
	}
	return c.storage.Save(data)
}
