package handler

import (
	"errors"

	"authentix-backend/internal/model"
	"authentix-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type VerifyHandler struct {
	usecase *usecase.VerifyUsecase
}

func NewVerifyHandler(u *usecase.VerifyUsecase) *VerifyHandler {
	return &VerifyHandler{usecase: u}
}

func (h *VerifyHandler) Verify(c *fiber.Ctx) error {
	var input struct {
		Token    string          `json:"token"`
		Location *model.Location `json:"location"`
	}

	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if input.Token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Token is required"})
	}

	result, err := h.usecase.Verify(input.Token, nil, input.Location)
	if err != nil {
		// Same user-facing outcome for both; status code and server logs
		// tell an unknown code apart from a storage outage.
		if errors.Is(err, usecase.ErrUnrecognizedToken) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Verification failed"})
		}
		if errors.Is(err, usecase.ErrStorageUnavailable) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Verification failed"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Verification failed"})
	}

	return c.JSON(fiber.Map{"data": result})
}
