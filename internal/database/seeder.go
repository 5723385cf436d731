package database

import (
	"log"

	"authentix-backend/internal/catalog"
	"authentix-backend/internal/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedAll loads the reference catalog into the store and creates the demo
// admin and brand-manager accounts.
func SeedAll(db *gorm.DB, reference *catalog.Reference) {
	// 1. Reference brands
	for _, b := range reference.Brands {
		db.FirstOrCreate(&b, model.Brand{ID: b.ID})
	}

	// 2. Reference products, keyed on sku
	for _, p := range reference.Products {
		db.FirstOrCreate(&p, model.Product{SKU: p.SKU})
	}

	// 3. Admin account
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

	admin := model.User{
		PublicID: uuid.NewString(),
		Name:     "System Admin",
		Email:    "admin@authentix.io",
		Password: string(hashedPassword),
		Role:     model.RoleSuperAdmin,
	}
	result := db.FirstOrCreate(&admin, model.User{Email: admin.Email})
	if result.Error == nil {
		// Keep the demo password in sync even if the account already exists
		db.Model(&admin).Update("password", string(hashedPassword))
		log.Println("Admin account seeded")
	}

	// 4. One manager account per reference brand
	for _, b := range reference.Brands {
		manager := model.User{
			PublicID:       uuid.NewString(),
			Name:           b.Name + " Admin",
			Email:          "manager@" + b.ID + ".authentix.io",
			Password:       string(hashedPassword),
			Role:           model.RoleBrandManager,
			ManagedBrandID: b.ID,
		}
		db.FirstOrCreate(&manager, model.User{Email: manager.Email})
	}
}
