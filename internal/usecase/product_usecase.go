package usecase

import (
	"errors"
	"log"

	"authentix-backend/internal/catalog"
	"authentix-backend/internal/model"
	"authentix-backend/internal/repository"

	"gorm.io/gorm"
)

const defaultProductImage = "https://images.unsplash.com/photo-1523275335684-37898b6baf30?q=80&w=800&auto=format&fit=crop"

// ProductDraft is the brand-side registration form.
type ProductDraft struct {
	Name        string
	SKU         string
	Category    string
	Description string
	ImageURL    string
}

type ProductUsecase struct {
	products    repository.ProductRepository
	activations repository.ActivationRepository
	brands      repository.BrandRepository
	reference   *catalog.Reference
}

func NewProductUsecase(products repository.ProductRepository, activations repository.ActivationRepository, brands repository.BrandRepository, reference *catalog.Reference) *ProductUsecase {
	return &ProductUsecase{
		products:    products,
		activations: activations,
		brands:      brands,
		reference:   reference,
	}
}

// Register onboards (or updates) a product under its SKU. The product id is
// derived from the SKU; the unit token is minted once for a new SKU and reused
// for an existing one, so QR codes already printed keep verifying after a
// metadata edit.
func (u *ProductUsecase) Register(brand model.Brand, draft ProductDraft) (*model.Product, error) {
	if draft.SKU == "" || draft.Name == "" {
		return nil, ErrValidation
	}

	if err := u.brands.Upsert(&brand); err != nil {
		return nil, err
	}

	productID := DeriveProductID(draft.SKU)
	unitToken := ""

	existing, err := u.products.GetBySKU(draft.SKU)
	switch {
	case err == nil:
		productID = existing.ID
		unitToken = existing.UnitToken
	case errors.Is(err, gorm.ErrRecordNotFound):
		unitToken, err = MintUnitToken(productID)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	imageURL := draft.ImageURL
	if imageURL == "" {
		imageURL = defaultProductImage
	}

	product := &model.Product{
		ID:          productID,
		BrandID:     brand.ID,
		Name:        draft.Name,
		SKU:         draft.SKU,
		Category:    draft.Category,
		Description: draft.Description,
		ImageURL:    imageURL,
		UnitToken:   unitToken,
		Specs: model.SpecMap{
			"Origin":   "Authentic Factory",
			"Warranty": "1 Year International",
			"Material": "Premium Grade",
		},
	}

	if err := u.products.Upsert(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product and its activation history. Ledger cleanup runs
// first (by product id, then directly by token in case the keys drifted) and
// is best-effort: a cleanup failure is logged but does not block the product
// delete, whose error is the one surfaced.
func (u *ProductUsecase) Delete(productID, unitToken string) error {
	if err := u.activations.DeleteByProduct(productID); err != nil {
		log.Println("delete product: activation cleanup by product failed:", err)
	}
	if unitToken != "" {
		if err := u.activations.Delete(unitToken); err != nil {
			log.Println("delete product: activation cleanup by token failed:", err)
		}
	}
	return u.products.Delete(productID)
}

func (u *ProductUsecase) GetByID(id string) (*model.Product, error) {
	return u.products.GetByID(id)
}

// ListByBrand merges stored products with reference products for the brand
// that are not yet in the store (matched by sku).
func (u *ProductUsecase) ListByBrand(brandID string) ([]model.Product, error) {
	stored, err := u.products.GetByBrand(brandID)
	if err != nil {
		return nil, err
	}

	combined := stored
	for _, ref := range u.reference.ProductsByBrand(brandID) {
		seen := false
		for _, p := range stored {
			if p.SKU == ref.SKU {
				seen = true
				break
			}
		}
		if !seen {
			combined = append(combined, ref)
		}
	}
	return combined, nil
}
