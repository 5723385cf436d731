package repository

import (
	"authentix-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BrandRepository interface {
	Upsert(brand *model.Brand) error
	GetByID(id string) (*model.Brand, error)
	GetAll() ([]model.Brand, error)
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db}
}

// Upsert is idempotent: calling it again with the same brand just rewrites the
// same row, so it is safe to call on every verification.
func (r *brandRepository) Upsert(brand *model.Brand) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "logo", "description", "contact_email"}),
	}).Create(brand).Error
}

func (r *brandRepository) GetByID(id string) (*model.Brand, error) {
	var brand model.Brand
	err := r.db.Where("id = ?", id).First(&brand).Error
	if err != nil {
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetAll() ([]model.Brand, error) {
	var brands []model.Brand
	err := r.db.Find(&brands).Error
	return brands, err
}
