package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/configs"
	healthController "github.com/nofalazam67/TIHAMIS-FRAGRANCES/controllers/health"
	orderController "github.com/nofalazam67/TIHAMIS-FRAGRANCES/controllers/orders"
	productController "github.com/nofalazam67/TIHAMIS-FRAGRANCES/controllers/products"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/middlewares"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/routes"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/seed"
	"github.com/nofalazam67/TIHAMIS-FRAGRANCES/services"
)

func main() {
	configs.LoadEnv()

	dbClient, err := configs.ConnectDB(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	log.Println("Connected to MongoDB")

	products := configs.GetCollection(dbClient, "products")
	orders := configs.GetCollection(dbClient, "orders")

	catalog := services.NewCatalogService(products)
	orderSvc := services.NewOrderService(orders, products)
	stats := services.NewStatsService(products, orders)
	seeder := seed.NewSeeder(products)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(middlewares.RequestID)
	app.Use(logger.New())
	app.Use(cors.New())

	routes.ProductsRoute(app, productController.NewProductController(catalog, seeder))
	routes.OrderRoutes(app, orderController.NewOrderController(orderSvc))
	routes.HealthRoute(app, healthController.NewHealthController(stats))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down")
		_ = app.Shutdown()
	}()

	if err := app.Listen(":" + configs.EnvPort()); err != nil {
		log.Println(err)
	}

	if err := configs.Disconnect(dbClient); err != nil {
		log.Println(err)
	}
}
