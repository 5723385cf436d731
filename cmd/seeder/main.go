package main

import (
	"log"

	"authentix-backend/config"
	"authentix-backend/internal/catalog"
	"authentix-backend/internal/database"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("Starting database seeding...")

	// Standalone script, load .env manually
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: no .env file found, using system environment variables.")
	}

	config.ConnectDB()

	database.SeedAll(config.DB, catalog.Default())

	log.Println("Seeding finished.")
}
