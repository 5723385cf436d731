package routes

import (
	"authentix-backend/internal/catalog"
	"authentix-backend/internal/handler"
	"authentix-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupBrandRoutes(app *fiber.App, db *gorm.DB, reference *catalog.Reference) {
	repo := repository.NewBrandRepository(db)
	hdl := handler.NewBrandHandler(repo, reference)

	app.Get("/api/brands", hdl.GetAll)
}
