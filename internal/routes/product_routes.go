package routes

import (
	"authentix-backend/internal/catalog"
	"authentix-backend/internal/handler"
	"authentix-backend/internal/middleware"
	"authentix-backend/internal/model"
	"authentix-backend/internal/repository"
	"authentix-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupProductRoutes(app *fiber.App, db *gorm.DB, reference *catalog.Reference) {
	products := repository.NewProductRepository(db)
	activations := repository.NewActivationRepository(db)
	brands := repository.NewBrandRepository(db)
	uc := usecase.NewProductUsecase(products, activations, brands, reference)
	hdl := handler.NewProductHandler(uc, reference)

	api := app.Group("/api/products", middleware.Auth)
	api.Get("/", hdl.GetByBrand)

	// Only brand managers and admins can register or remove products
	manage := app.Group("/api/products", middleware.Auth, middleware.Role(model.RoleBrandManager, model.RoleSuperAdmin))
	manage.Post("/", hdl.Create)
	manage.Delete("/:id", hdl.Delete)
}
