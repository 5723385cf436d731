package model

import "gorm.io/gorm"

const (
	RoleSuperAdmin   = "SUPER_ADMIN"
	RoleBrandManager = "BRAND_MANAGER"
	RoleConsumer     = "CONSUMER"
)

type User struct {
	gorm.Model
	PublicID       string `json:"public_id" gorm:"column:public_id;unique;not null"`
	Name           string `json:"name"`
	Email          string `json:"email" gorm:"unique;not null"`
	Password       string `json:"-"`
	Role           string `json:"role" gorm:"default:CONSUMER"`
	ManagedBrandID string `json:"managed_brand_id"`
}
