package routes

import (
	"authentix-backend/internal/catalog"
	"authentix-backend/internal/handler"
	"authentix-backend/internal/repository"
	"authentix-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupVerifyRoutes(app *fiber.App, db *gorm.DB, reference *catalog.Reference) {
	products := repository.NewProductRepository(db)
	activations := repository.NewActivationRepository(db)
	brands := repository.NewBrandRepository(db)
	uc := usecase.NewVerifyUsecase(products, activations, brands, reference)
	hdl := handler.NewVerifyHandler(uc)

	// Public: consumers can scan without an account
	app.Post("/api/verify", hdl.Verify)
}
