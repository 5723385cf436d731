package repository

import (
	"authentix-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivationRepository interface {
	Get(unitID string) (*model.Activation, error)
	RecordScan(record *model.Activation) (*model.Activation, error)
	DeleteByProduct(productID string) error
	Delete(unitID string) error
}

type activationRepository struct {
	db *gorm.DB
}

func NewActivationRepository(db *gorm.DB) ActivationRepository {
	return &activationRepository{db}
}

func (r *activationRepository) Get(unitID string) (*model.Activation, error) {
	var activation model.Activation
	err := r.db.Where("unit_id = ?", unitID).First(&activation).Error
	if err != nil {
		return nil, err
	}
	return &activation, nil
}

// RecordScan is a single atomic insert-or-increment on unit_id. A fresh token
// gets a new row (scan_count 1, status as supplied); a known token only gets
// its scan_count bumped, so concurrent scans can never double-insert or lose
// an increment. Status, activated_at and location stay whatever the first
// scan wrote.
func (r *activationRepository) RecordScan(record *model.Activation) (*model.Activation, error) {
	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "unit_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"scan_count": gorm.Expr("scan_count + 1"),
		}),
	}).Create(record).Error
	if err != nil {
		return nil, err
	}
	return r.Get(record.UnitID)
}

func (r *activationRepository) DeleteByProduct(productID string) error {
	return r.db.Where("product_id = ?", productID).Delete(&model.Activation{}).Error
}

func (r *activationRepository) Delete(unitID string) error {
	return r.db.Where("unit_id = ?", unitID).Delete(&model.Activation{}).Error
}
