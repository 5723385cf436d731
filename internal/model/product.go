package model

type Product struct {
	ID          string  `json:"id" gorm:"primaryKey"`
	BrandID     string  `json:"brand_id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku" gorm:"column:sku;unique;not null"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	UnitToken   string  `json:"unit_token" gorm:"uniqueIndex"`
	Specs       SpecMap `json:"specs" gorm:"type:json"`
}
