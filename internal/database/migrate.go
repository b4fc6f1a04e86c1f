package database

import (
	"github.com/franciscosanchezn/gin-pizza-orders/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the tables for every persisted model
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	return db.AutoMigrate(
		&models.Size{},
		&models.Topping{},
		&models.Order{},
		&models.Pizza{},
		&models.ToppingAmount{},
		&models.Sale{},
		&models.Staff{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
}
