package handler

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"authentix-backend/internal/catalog"
	"authentix-backend/internal/model"
	"authentix-backend/internal/repository"
	"authentix-backend/internal/usecase"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type productApp struct {
	app      *fiber.App
	products repository.ProductRepository
	usecase  *usecase.ProductUsecase
}

// newProductApp wires the product routes behind a stub auth layer that plants
// the given claims, the way the real Auth middleware does after parsing a JWT.
func newProductApp(t *testing.T, role, managedBrandID string) *productApp {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Brand{}, &model.Product{}, &model.Activation{}))

	reference := catalog.Default()
	products := repository.NewProductRepository(db)
	activations := repository.NewActivationRepository(db)
	brands := repository.NewBrandRepository(db)
	uc := usecase.NewProductUsecase(products, activations, brands, reference)
	hdl := NewProductHandler(uc, reference)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("role", role)
		c.Locals("managed_brand_id", managedBrandID)
		return c.Next()
	})
	app.Post("/api/products", hdl.Create)
	app.Delete("/api/products/:id", hdl.Delete)

	return &productApp{app: app, products: products, usecase: uc}
}

func productForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestCreateRejectsForeignBrandForManagers(t *testing.T) {
	f := newProductApp(t, model.RoleBrandManager, "BR-001")

	body, contentType := productForm(t, map[string]string{
		"name":     "Sneaky Serum",
		"sku":      "DP-SNEAK-01",
		"brand_id": "BR-002",
	})
	req := httptest.NewRequest("POST", "/api/products", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Nothing was written
	_, err = f.products.GetBySKU("DP-SNEAK-01")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateDefaultsToManagedBrand(t *testing.T) {
	f := newProductApp(t, model.RoleBrandManager, "BR-001")

	body, contentType := productForm(t, map[string]string{
		"name": "PowerWave 200",
		"sku":  "PW-200-BLU",
	})
	req := httptest.NewRequest("POST", "/api/products", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	stored, err := f.products.GetBySKU("PW-200-BLU")
	require.NoError(t, err)
	assert.Equal(t, "BR-001", stored.BrandID)
}

func TestAdminMayRegisterForAnyBrand(t *testing.T) {
	f := newProductApp(t, model.RoleSuperAdmin, "")

	body, contentType := productForm(t, map[string]string{
		"name":     "Vitamin C Serum XL",
		"sku":      "DP-VC-60",
		"brand_id": "BR-002",
	})
	req := httptest.NewRequest("POST", "/api/products", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDeleteRejectsForeignBrandForManagers(t *testing.T) {
	f := newProductApp(t, model.RoleBrandManager, "BR-001")

	// Product belonging to another brand, registered directly through the workflow
	dermapure, ok := catalog.Default().BrandByID("BR-002")
	require.True(t, ok)
	product, err := f.usecase.Register(dermapure, usecase.ProductDraft{Name: "Face Cream", SKU: "DP-FC-75"})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/products/"+product.ID, nil)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// Still there
	_, err = f.products.GetByID(product.ID)
	require.NoError(t, err)
}

func TestDeleteOwnBrandProduct(t *testing.T) {
	f := newProductApp(t, model.RoleBrandManager, "BR-001")

	sonicstream, ok := catalog.Default().BrandByID("BR-001")
	require.True(t, ok)
	product, err := f.usecase.Register(sonicstream, usecase.ProductDraft{Name: "Earbud Case", SKU: "SS-CASE-01"})
	require.NoError(t, err)

	req := httptest.NewRequest("DELETE", "/api/products/"+product.ID+"?token="+product.UnitToken, nil)
	resp, err := f.app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, err = f.products.GetByID(product.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
