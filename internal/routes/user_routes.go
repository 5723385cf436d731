package routes

import (
	httpdelivery "authentix-backend/internal/delivery/http"
	"authentix-backend/internal/repository"
	"authentix-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	uc := usecase.NewUserUsecase(repo)
	hdl := httpdelivery.NewUserHandler(uc)

	app.Post("/api/register", hdl.Register)
	app.Post("/api/login", hdl.Login)
}
