package routes

import (
	"github.com/gofiber/fiber/v2"

	controllers "github.com/nofalazam67/TIHAMIS-FRAGRANCES/controllers/products"
)

func ProductsRoute(app *fiber.App, pc *controllers.ProductController) {
	// Fixed segments registered ahead of the :id routes.
	app.Get("/api/products/featured/all", pc.GetFeaturedProducts)
	app.Get("/api/products/search/:query", pc.SearchProducts)
	app.Get("/api/products/category/:category", pc.GetProductsByCategory)

	app.Get("/api/products", pc.GetAllProducts)
	app.Get("/api/products/:id", pc.GetProduct)
	app.Put("/api/products/:id", pc.UpdateProduct)

	// For admin: load fixtures into an empty catalog
	app.Post("/api/admin/seed", pc.SeedProducts)
}
