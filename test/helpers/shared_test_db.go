package helpers

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/starlanes-go/internal/adapters/persistence"
	"github.com/andrescamacho/starlanes-go/internal/infrastructure/database"
)

// SharedTestDB is the singleton database instance used across BDD scenarios
var SharedTestDB *gorm.DB

// InitializeSharedTestDB creates and migrates the shared test database.
// Called once before running any scenario.
func InitializeSharedTestDB() error {
	db, err := database.NewTestConnection()
	if err != nil {
		return fmt.Errorf("failed to open shared test database: %w", err)
	}
	SharedTestDB = db
	return nil
}

// TruncateAllTables empties the games and their snapshots between scenarios
func TruncateAllTables() error {
	if SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}
	wipe := SharedTestDB.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{&persistence.GameSnapshotModel{}, &persistence.GameModel{}} {
		if err := wipe.Delete(model).Error; err != nil {
			return fmt.Errorf("failed to truncate %T: %w", model, err)
		}
	}
	return nil
}

// CloseSharedTestDB closes the shared database connection
func CloseSharedTestDB() error {
	if SharedTestDB == nil {
		return nil
	}
	return database.Close(SharedTestDB)
}
