package model

import (
	"time"

	"github.com/google/uuid"
)

// bookings
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// Ровно одна бронь на слот — навсегда. Уникальный индекс это закрепляет.
	SlotID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`

	PatientID string `gorm:"type:varchar(255);not null;index"`
	Reason    string `gorm:"type:text"`

	BookingTime time.Time `gorm:"type:timestamp with time zone;not null;default:now()"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Slot *Slot `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
