package handler

import (
	"authentix-backend/internal/catalog"
	"authentix-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type BrandHandler struct {
	repo      repository.BrandRepository
	reference *catalog.Reference
}

func NewBrandHandler(repo repository.BrandRepository, reference *catalog.Reference) *BrandHandler {
	return &BrandHandler{repo: repo, reference: reference}
}

// GetAll lists stored brands plus any reference brands not yet persisted.
func (h *BrandHandler) GetAll(c *fiber.Ctx) error {
	brands, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load brands"})
	}

	combined := brands
	for _, ref := range h.reference.Brands {
		seen := false
		for _, b := range brands {
			if b.ID == ref.ID {
				seen = true
				break
			}
		}
		if !seen {
			combined = append(combined, ref)
		}
	}

	return c.JSON(fiber.Map{"data": combined})
}
