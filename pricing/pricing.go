// Package pricing computes cart totals: subtotal, tax, shipping, promo
// discount. It is pure arithmetic over decimals with no I/O; the same cart
// and code always quote the same figures.
package pricing

import "github.com/shopspring/decimal"

// PromoKind selects how a promo rule's Amount is applied.
type PromoKind string

const (
	// Percentage takes Amount percent off the subtotal.
	Percentage PromoKind = "percentage"
	// Flat takes Amount currency units off, regardless of subtotal.
	Flat PromoKind = "flat"
)

type PromoRule struct {
	Kind   PromoKind
	Amount decimal.Decimal
}

// Config is the single authoritative set of pricing constants. The promo
// table, tax rate and shipping rule used to live in two places (client and
// server seed data); everything now reads from here.
type Config struct {
	TaxRate          decimal.Decimal
	ShippingFee      decimal.Decimal
	FreeShippingOver decimal.Decimal
	Promos           map[string]PromoRule
}

// DefaultConfig returns the storefront's pricing rules: 8% flat tax,
// 10 shipping waived on subtotals over 100, and the recognized promo codes.
func DefaultConfig() Config {
	return Config{
		TaxRate:          decimal.NewFromFloat(0.08),
		ShippingFee:      decimal.NewFromInt(10),
		FreeShippingOver: decimal.NewFromInt(100),
		Promos: map[string]PromoRule{
			"SAVE10":     {Kind: Percentage, Amount: decimal.NewFromInt(10)},
			"SAVE20":     {Kind: Percentage, Amount: decimal.NewFromInt(20)},
			"FIRSTORDER": {Kind: Flat, Amount: decimal.NewFromInt(15)},
			"WELCOME":    {Kind: Percentage, Amount: decimal.NewFromInt(5)},
		},
	}
}

// LineItem is the slice of a cart entry the engine needs.
type LineItem struct {
	Price    float64
	Quantity int
}

// Breakdown is a full quote for a cart.
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	Shipping decimal.Decimal `json:"shipping"`
	Discount decimal.Decimal `json:"discount"`
	Total    decimal.Decimal `json:"total"`
}

// Quote prices a cart under an optional promo code. An unrecognized or empty
// code yields a zero discount: applying a bad code after a good one resets
// the discount rather than keeping the earlier promo. The total is not
// clamped, so a flat discount larger than the rest of the quote goes
// negative.
func (c Config) Quote(items []LineItem, promoCode string) Breakdown {
	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
	}

	tax := subtotal.Mul(c.TaxRate)

	shipping := c.ShippingFee
	if subtotal.GreaterThan(c.FreeShippingOver) {
		shipping = decimal.Zero
	}

	discount := decimal.Zero
	if rule, ok := c.Promos[promoCode]; ok {
		switch rule.Kind {
		case Percentage:
			discount = subtotal.Mul(rule.Amount).Div(decimal.NewFromInt(100))
		case Flat:
			discount = rule.Amount
		}
	}

	return Breakdown{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Discount: discount,
		Total:    subtotal.Add(tax).Add(shipping).Sub(discount),
	}
}

// ValidPromo reports whether code is in the promo table.
func (c Config) ValidPromo(code string) bool {
	_, ok := c.Promos[code]
	return ok
}
