package model

import "time"

const (
	StatusGenuine    = "GENUINE"
	StatusDuplicate  = "DUPLICATE"
	StatusSuspicious = "SUSPICIOUS"
)

// Activation is the scan history for one unit token. One row per token,
// scan_count only ever goes up.
type Activation struct {
	UnitID            string    `json:"unit_id" gorm:"primaryKey;column:unit_id"`
	ProductID         string    `json:"product_id"`
	BrandID           string    `json:"brand_id"`
	Status            string    `json:"status"`
	ActivatedAt       time.Time `json:"activated_at"`
	ActivatedLocation *Location `json:"activated_location" gorm:"type:json"`
	ScanCount         int       `json:"scan_count"`
}
