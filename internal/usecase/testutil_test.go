package usecase

import (
	"testing"

	"authentix-backend/internal/catalog"
	"authentix-backend/internal/model"
	"authentix-backend/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	products    repository.ProductRepository
	activations repository.ActivationRepository
	brands      repository.BrandRepository
	reference   *catalog.Reference
	verify      *VerifyUsecase
	catalogUC   *ProductUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.Brand{}, &model.Product{}, &model.Activation{}, &model.User{}))

	f := &fixture{
		db:          db,
		products:    repository.NewProductRepository(db),
		activations: repository.NewActivationRepository(db),
		brands:      repository.NewBrandRepository(db),
		reference:   catalog.Default(),
	}
	f.verify = NewVerifyUsecase(f.products, f.activations, f.brands, f.reference)
	f.catalogUC = NewProductUsecase(f.products, f.activations, f.brands, f.reference)
	return f
}

func (f *fixture) activationCount(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, f.db.Model(&model.Activation{}).Count(&count).Error)
	return count
}
