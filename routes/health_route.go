package routes

import (
	"github.com/gofiber/fiber/v2"

	healthController "github.com/nofalazam67/TIHAMIS-FRAGRANCES/controllers/health"
)

func HealthRoute(app *fiber.App, hc *healthController.HealthController) {
	app.Get("/api/health", hc.Health)
	app.Get("/api/stats", hc.GetStats)
}
