package usecase

import (
	"errors"
	"log"
	"strings"
	"time"

	"authentix-backend/internal/catalog"
	"authentix-backend/internal/model"
	"authentix-backend/internal/repository"

	"gorm.io/gorm"
)

// VerifyResult is what a successful scan surfaces: the matched product, its
// cumulative activation record, and the owning brand.
type VerifyResult struct {
	Product model.Product    `json:"product"`
	Record  model.Activation `json:"record"`
	Brand   model.Brand      `json:"brand"`
}

type VerifyUsecase struct {
	products    repository.ProductRepository
	activations repository.ActivationRepository
	brands      repository.BrandRepository
	reference   *catalog.Reference
}

func NewVerifyUsecase(products repository.ProductRepository, activations repository.ActivationRepository, brands repository.BrandRepository, reference *catalog.Reference) *VerifyUsecase {
	return &VerifyUsecase{
		products:    products,
		activations: activations,
		brands:      brands,
		reference:   reference,
	}
}

// Verify resolves a scanned token and records the scan event.
//
// Resolution order, first match wins:
//  1. the caller-supplied candidate set (already-loaded products),
//  2. the reference catalog,
//  3. the database, but only for tokens carrying the UNIT- prefix.
//
// An unresolvable token returns ErrUnrecognizedToken and writes nothing.
func (u *VerifyUsecase) Verify(token string, candidates []model.Product, location *model.Location) (*VerifyResult, error) {
	match, err := u.resolve(token, candidates)
	if err != nil {
		return nil, err
	}

	brand, ok := u.reference.BrandByID(match.BrandID)
	if !ok {
		brand = u.reference.Placeholder(match.BrandID)
	}
	if err := u.brands.Upsert(&brand); err != nil {
		log.Println("verify: brand upsert failed:", err)
		return nil, ErrStorageUnavailable
	}

	record, err := u.activations.RecordScan(&model.Activation{
		UnitID:            token,
		ProductID:         match.ID,
		BrandID:           brand.ID,
		Status:            model.StatusGenuine,
		ActivatedAt:       time.Now(),
		ActivatedLocation: location,
		ScanCount:         1,
	})
	if err != nil {
		log.Println("verify: recording scan failed:", err)
		return nil, ErrStorageUnavailable
	}

	return &VerifyResult{Product: *match, Record: *record, Brand: brand}, nil
}

func (u *VerifyUsecase) resolve(token string, candidates []model.Product) (*model.Product, error) {
	if token == "" {
		return nil, ErrUnrecognizedToken
	}

	for i := range candidates {
		if candidates[i].UnitToken == token {
			return &candidates[i], nil
		}
	}
	if p, ok := u.reference.ProductByToken(token); ok {
		return &p, nil
	}

	if strings.HasPrefix(token, UnitTokenPrefix) {
		p, err := u.products.GetByToken(token)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("verify: database token lookup failed:", err)
			return nil, ErrStorageUnavailable
		}
	}

	return nil, ErrUnrecognizedToken
}
