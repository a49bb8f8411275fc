package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/responses"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/services"
)

func testApp() *fiber.App {
	app := fiber.New()
	pc := NewProductController(services.NewCatalogService(nil), nil)
	app.Get("/api/products/:id", pc.GetProduct)
	app.Put("/api/products/:id", pc.UpdateProduct)
	return app
}

func envelopeCode(t *testing.T, body io.Reader) string {
	t.Helper()
	data, err := io.ReadAll(body)
	require.NoError(t, err)

	var envelope responses.ApiResponse
	require.NoError(t, json.Unmarshal(data, &envelope))
	return envelope.Code
}

func TestGetProductInvalidID(t *testing.T) {
	app := testApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/nope", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, responses.CodeBadRequest, envelopeCode(t, resp.Body))
}

func TestUpdateProductInvalidID(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("PUT", "/api/products/nope", strings.NewReader(`{"price":10}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, responses.CodeBadRequest, envelopeCode(t, resp.Body))
}
