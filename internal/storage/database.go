package storage

import (
	"github.com/Thatonecodeguy/locksum-contractor-books/internal/billing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database at the given path and keeps the
// schema updated via AutoMigrate. The database file is created on first run.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&billing.User{},
		&billing.Company{},
		&billing.Membership{},
		&billing.Customer{},
		&billing.Item{},
		&billing.Invoice{},
		&billing.InvoiceLine{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
