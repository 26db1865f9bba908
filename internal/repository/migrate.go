package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table this package maps. Row models
// stay private to the repository layer, so migration lives here too.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&itemModel{},
		&cartLineModel{},
		&orderModel{},
		&orderLineModel{},
		&bookingModel{},
		&petModel{},
	)
}
