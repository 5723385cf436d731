package repository

import (
	"authentix-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Upsert(product *model.Product) error
	GetByBrand(brandID string) ([]model.Product, error)
	GetByToken(token string) (*model.Product, error)
	GetBySKU(sku string) (*model.Product, error)
	GetByID(id string) (*model.Product, error)
	Delete(id string) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db}
}

// Upsert writes the product keyed on sku. Metadata is overwritten; id and
// unit_token are left as stored so tokens already printed on packaging stay
// valid when a product is re-registered.
func (r *productRepository) Upsert(product *model.Product) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sku"}},
		DoUpdates: clause.AssignmentColumns([]string{"brand_id", "name", "category", "description", "image_url", "specs"}),
	}).Create(product).Error
}

func (r *productRepository) GetByBrand(brandID string) ([]model.Product, error) {
	var products []model.Product
	err := r.db.Where("brand_id = ?", brandID).Find(&products).Error
	return products, err
}

func (r *productRepository) GetByToken(token string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("unit_token = ?", token).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetBySKU(sku string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("sku = ?", sku).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByID(id string) (*model.Product, error) {
	var product model.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&model.Product{}).Error
}
