package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/responses"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/services"
)

type HealthController struct {
	stats *services.StatsService
}

func NewHealthController(stats *services.StatsService) *HealthController {
	return &HealthController{stats: stats}
}

func (hc *HealthController) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "ok",
		"message": "Perfume store API is running",
	})
}

func (hc *HealthController) GetStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	stats, err := hc.stats.Totals(ctx)
	if err != nil {
		return responses.Error(c, fiber.StatusInternalServerError, responses.CodeStoreError, "Error fetching stats")
	}
	return c.Status(fiber.StatusOK).JSON(stats)
}
