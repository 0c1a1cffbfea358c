package model

import (
	"time"

	"github.com/google/uuid"
)

// Статус слота приёма.
type SlotStatus string

const (
	SlotStatusAvailable SlotStatus = "available"
	SlotStatusBooked    SlotStatus = "booked"
)

// slots
type Slot struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	DoctorID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	RecurrenceID *uuid.UUID `gorm:"type:uuid;index"`

	StartTime time.Time `gorm:"type:timestamp with time zone;not null;index"`
	EndTime   time.Time `gorm:"type:timestamp with time zone;not null"`

	// Единственный допустимый переход статуса — available → booked.
	Status SlotStatus `gorm:"type:varchar(32);not null;default:'available';index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля (опционально, но удобно для Preload).
	Doctor     *Doctor         `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Recurrence *RecurrenceRule `gorm:"foreignKey:RecurrenceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
