package main

import (
	"log"

	"authentix-backend/config"
	"authentix-backend/internal/catalog"
	"authentix-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Global middleware
	app.Use(cors.New())
	app.Use(logger.New())

	// Uploaded product images are served statically
	app.Static("/uploads", "./uploads")

	reference := catalog.Default()

	routes.SetupUserRoutes(app, config.DB)
	routes.SetupBrandRoutes(app, config.DB, reference)
	routes.SetupProductRoutes(app, config.DB, reference)
	routes.SetupVerifyRoutes(app, config.DB, reference)

	port := config.GetEnv("PORT", "3000")
	log.Println("Server listening on port :" + port)
	app.Listen(":" + port)
}
