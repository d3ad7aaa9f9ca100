package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/mayurii-26/drive-smart-portal/src/core/config"
	"github.com/mayurii-26/drive-smart-portal/src/core/database"
	"github.com/mayurii-26/drive-smart-portal/src/core/router"
	"github.com/mayurii-26/drive-smart-portal/src/core/store"
)

func main() {
	// Initialize the Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit: 12 * 1024 * 1024, // headroom above the 10MB upload limit
	})

	// Middleware
	app.Use(recover.New())   // Recover middleware to handle panics
	app.Use(cors.New())      // CORS middleware for cross-origin requests
	app.Use(requestid.New()) // Middleware to generate unique request IDs

	// Setup environment variables
	config.SetupEnv()

	// Initialize the flat-file data stores and seed the default admin
	if err := store.Init(config.ConfigOrDefault("DATA_DIR", "data")); err != nil {
		log.Fatalf("Error initializing data stores: %v", err)
	}

	// Warn early if object storage is not configured; uploads will fail
	// per-request with a readable error until it is.
	if _, _, err := database.SupabaseStorage(); err != nil {
		log.Printf("Warning: object storage not configured: %v", err)
	}

	// Set up routes
	router.InitialiseAndSetupRoutes(app)

	// Get port from config and start the server
	port := config.ConfigOrDefault("APP_PORT", "3000")
	log.Fatal(app.Listen(fmt.Sprintf(":%s", port)))
}
