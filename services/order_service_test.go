package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/models"
)

func validOrderRequest() PlaceOrderRequest {
	total := 129.58
	return PlaceOrderRequest{
		CustomerName: "Lina Haddad",
		Email:        "lina@example.com",
		Phone:        "+971500000000",
		Address:      "14 Pearl St, Dubai, 00000",
		Items: []models.OrderItem{
			{Name: "Midnight Oud", Price: 119.99, Quantity: 1},
		},
		TotalAmount: &total,
	}
}

func TestPlaceOrderRequestValidate(t *testing.T) {
	t.Run("valid request passes", func(t *testing.T) {
		req := validOrderRequest()
		assert.NoError(t, req.Validate())
	})

	t.Run("empty items are allowed", func(t *testing.T) {
		req := validOrderRequest()
		req.Items = nil
		assert.NoError(t, req.Validate())
	})

	missing := []struct {
		field string
		mut   func(*PlaceOrderRequest)
	}{
		{"customerName", func(r *PlaceOrderRequest) { r.CustomerName = "" }},
		{"email", func(r *PlaceOrderRequest) { r.Email = "   " }},
		{"phone", func(r *PlaceOrderRequest) { r.Phone = "" }},
		{"address", func(r *PlaceOrderRequest) { r.Address = "" }},
		{"totalAmount", func(r *PlaceOrderRequest) { r.TotalAmount = nil }},
	}
	for _, tt := range missing {
		t.Run("missing "+tt.field, func(t *testing.T) {
			req := validOrderRequest()
			tt.mut(&req)

			err := req.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	t.Run("zero total is acceptable", func(t *testing.T) {
		req := validOrderRequest()
		zero := 0.0
		req.TotalAmount = &zero
		assert.NoError(t, req.Validate())
	})

	t.Run("negative total is rejected", func(t *testing.T) {
		req := validOrderRequest()
		neg := -1.0
		req.TotalAmount = &neg

		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
		assert.Equal(t, "totalAmount", verr.Field)
	})

	t.Run("zero quantity item is rejected", func(t *testing.T) {
		req := validOrderRequest()
		req.Items[0].Quantity = 0

		var verr *ValidationError
		require.ErrorAs(t, req.Validate(), &verr)
		assert.Equal(t, "items", verr.Field)
	})
}

func TestErrorTaxonomy(t *testing.T) {
	verr := &ValidationError{Field: "email", Reason: "required"}
	assert.Contains(t, verr.Error(), "email")

	inner := assert.AnError
	serr := storeErr("insert order", inner)
	assert.ErrorIs(t, serr, inner)

	var s *StoreError
	require.ErrorAs(t, serr, &s)
	assert.Equal(t, "insert order", s.Op)
}
