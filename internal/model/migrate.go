package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей ядра записи на приём.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Doctor{},
		&RecurrenceRule{},
		&Slot{},
		&Booking{},
	)
}
