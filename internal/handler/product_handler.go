package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"authentix-backend/internal/catalog"
	"authentix-backend/internal/model"
	"authentix-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	usecase   *usecase.ProductUsecase
	reference *catalog.Reference
}

func NewProductHandler(u *usecase.ProductUsecase, reference *catalog.Reference) *ProductHandler {
	return &ProductHandler{usecase: u, reference: reference}
}

func (h *ProductHandler) GetByBrand(c *fiber.Ctx) error {
	brandID := c.Query("brand_id")
	if brandID == "" {
		brandID, _ = c.Locals("managed_brand_id").(string)
	}
	if brandID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "brand_id is required"})
	}

	products, err := h.usecase.ListByBrand(brandID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not load products"})
	}

	// Uploaded images are stored as relative paths; expand to full URLs
	baseURL := c.BaseURL()
	for i := range products {
		if !strings.HasPrefix(products[i].ImageURL, "http") {
			products[i].ImageURL = baseURL + "/" + products[i].ImageURL
		}
	}

	return c.JSON(fiber.Map{"data": products})
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	draft := usecase.ProductDraft{
		Name:        c.FormValue("name"),
		SKU:         c.FormValue("sku"),
		Category:    c.FormValue("category"),
		Description: c.FormValue("description"),
	}

	brandID := c.FormValue("brand_id")
	managedBrandID, _ := c.Locals("managed_brand_id").(string)
	if brandID == "" {
		brandID = managedBrandID
	}
	if brandID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "brand_id is required"})
	}

	// Managers may only register products under their own brand
	if role, _ := c.Locals("role").(string); role == model.RoleBrandManager && brandID != managedBrandID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: not your brand"})
	}

	brand, ok := h.reference.BrandByID(brandID)
	if !ok {
		brand = h.reference.Placeholder(brandID)
	}

	// Optional product image
	if file, err := c.FormFile("image"); err == nil {
		uploadDir := "./uploads/products"
		if _, err := os.Stat(uploadDir); os.IsNotExist(err) {
			os.MkdirAll(uploadDir, 0755)
		}
		filename := fmt.Sprintf("product_%d_%s", time.Now().Unix(), filepath.Base(file.Filename))
		pathFile := fmt.Sprintf("uploads/products/%s", filename)
		if err := c.SaveFile(file, pathFile); err == nil {
			draft.ImageURL = pathFile
		}
	}

	product, err := h.usecase.Register(brand, draft)
	if err != nil {
		if errors.Is(err, usecase.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Name and SKU are required"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not register product: " + err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product registered", "data": product})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	productID := c.Params("id")
	unitToken := c.Query("token")

	// Managers may only delete products of their own brand
	if role, _ := c.Locals("role").(string); role == model.RoleBrandManager {
		product, err := h.usecase.GetByID(productID)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product not found"})
		}
		managedBrandID, _ := c.Locals("managed_brand_id").(string)
		if product.BrandID != managedBrandID {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied: not your brand"})
		}
	}

	if err := h.usecase.Delete(productID, unitToken); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
