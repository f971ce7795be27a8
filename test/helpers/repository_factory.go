package helpers

import (
	"gorm.io/gorm"

	"github.com/andrescamacho/starlanes-go/internal/adapters/persistence"
)

// TestRepositories holds the real repositories backed by the shared test DB
type TestRepositories struct {
	DB       *gorm.DB
	GameRepo *persistence.GormGameRepository
}

// NewTestRepositories creates repositories using SharedTestDB
func NewTestRepositories() *TestRepositories {
	return &TestRepositories{
		DB:       SharedTestDB,
		GameRepo: persistence.NewGormGameRepository(SharedTestDB),
	}
}
