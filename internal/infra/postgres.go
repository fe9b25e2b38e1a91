package infra

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"adsouq/internal/models/db_models"
	"adsouq/pkg/config"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.Postgres.URL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	return connectionPool
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

// AutoMigrate keeps the schema in sync with the model set. The seed binary
// runs it before inserting defaults; the server runs it on boot.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.MerchantStore{},
		&db_models.Category{},
		&db_models.Country{},
		&db_models.State{},
		&db_models.City{},
		&db_models.PaymentMethod{},
		&db_models.VIPPackage{},
		&db_models.VIPSubscription{},
		&db_models.Ad{},
		&db_models.AdSensePlacement{},
		&db_models.SiteSetting{},
	)
}
