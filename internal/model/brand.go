package model

type Brand struct {
	ID           string `json:"id" gorm:"primaryKey"`
	Name         string `json:"name"`
	Logo         string `json:"logo"`
	Description  string `json:"description"`
	ContactEmail string `json:"contact_email" gorm:"column:contact_email"`
}
