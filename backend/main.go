package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"habitmaster/backend/config"
	"habitmaster/backend/middleware"
	"habitmaster/backend/routes"
	"habitmaster/backend/store"
	"habitmaster/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Open the store
	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}
	defer st.Close()

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
