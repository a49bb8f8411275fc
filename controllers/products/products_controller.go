package controllers

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/responses"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/seed"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/services"
)

type ProductController struct {
	catalog *services.CatalogService
	seeder  *seed.Seeder
}

func NewProductController(catalog *services.CatalogService, seeder *seed.Seeder) *ProductController {
	return &ProductController{catalog: catalog, seeder: seeder}
}

// GetAllProducts returns the entire catalog. No pagination: the storefront
// renders the whole list.
func (pc *ProductController) GetAllProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	products, err := pc.catalog.ListAll(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error fetching products")
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func (pc *ProductController) GetProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeBadRequest, "Invalid product ID format")
	}

	product, err := pc.catalog.GetByID(ctx, id)
	if errors.Is(err, services.ErrNotFound) {
		return responses.Error(c, fiber.StatusNotFound, responses.CodeNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error fetching product")
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

// UpdateProduct merges the JSON body's fields into the product and returns
// the updated document.
func (pc *ProductController) UpdateProduct(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeBadRequest, "Invalid product ID format")
	}

	fields := map[string]interface{}{}
	if err := c.BodyParser(&fields); err != nil {
		return responses.Error(c, fiber.StatusBadRequest, responses.CodeBadRequest, "Error parsing product data")
	}

	product, err := pc.catalog.Update(ctx, id, fields)
	if errors.Is(err, services.ErrNotFound) {
		return responses.Error(c, fiber.StatusNotFound, responses.CodeNotFound, "Product not found")
	}
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error updating product")
	}
	return c.Status(fiber.StatusOK).JSON(product)
}

func (pc *ProductController) GetFeaturedProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	products, err := pc.catalog.ListFeatured(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error fetching featured products")
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// SearchProducts matches the path segment as a case-insensitive substring of
// name, brand, description or category.
func (pc *ProductController) SearchProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	query := c.Params("query")
	if unescaped, err := url.PathUnescape(query); err == nil {
		query = unescaped
	}

	products, err := pc.catalog.Search(ctx, query)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error searching products")
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// GetProductsByCategory filters on exact category equality, case-sensitive.
func (pc *ProductController) GetProductsByCategory(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	category := c.Params("category")
	if unescaped, err := url.PathUnescape(category); err == nil {
		category = unescaped
	}

	products, err := pc.catalog.ListByCategory(ctx, category)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error fetching products by category")
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

// SeedProducts loads the perfume fixtures into an empty catalog.
func (pc *ProductController) SeedProducts(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	inserted, err := pc.seeder.Load(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error seeding products")
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"inserted": inserted})
}
