package routes

import (
	"github.com/gofiber/fiber/v2"

	orderController "github.com/nofalazam67/TIHAMIS-FRAGRANCES/controllers/orders"
)

func OrderRoutes(app *fiber.App, oc *orderController.OrderController) {
	app.Post("/api/orders", oc.CreateOrder)
	app.Get("/api/orders/:id", oc.GetOrder)
}
