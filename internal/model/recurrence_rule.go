package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Тип повторения правила доступности.
type RecurrenceType string

const (
	RecurrenceTypeOneTime RecurrenceType = "one_time"
	RecurrenceTypeDaily   RecurrenceType = "daily"
	RecurrenceTypeWeekly  RecurrenceType = "weekly"
)

// recurrence_rules
type RecurrenceRule struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index"`

	Type RecurrenceType `gorm:"type:varchar(32);not null"`

	// Дневное окно: границы первого дня серии; на последующие дни
	// переносится только время суток.
	WindowStart time.Time `gorm:"type:timestamp with time zone;not null"`
	WindowEnd   time.Time `gorm:"type:timestamp with time zone;not null"`

	// Длительность одного слота в минутах (15 или 30).
	SlotDurationMin int `gorm:"not null"`

	// Дни недели для weekly (0 = воскресенье … 6 = суббота).
	DaysOfWeek datatypes.JSONSlice[int] `gorm:"type:jsonb"`

	// Включительная дата окончания серии.
	Until time.Time `gorm:"type:timestamp with time zone;not null"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Doctor *Doctor `gorm:"foreignKey:DoctorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Slots  []Slot  `gorm:"foreignKey:RecurrenceID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}
