package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/medbooking/doctor-booking/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Minimal schema for the repositories (sqlite-friendly).
	schema := []string{
		`CREATE TABLE doctors (
			id TEXT PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE recurrence_rules (
			id TEXT PRIMARY KEY,
			doctor_id TEXT NOT NULL,
			type TEXT NOT NULL,
			window_start DATETIME NOT NULL,
			window_end DATETIME NOT NULL,
			slot_duration_min INTEGER NOT NULL,
			days_of_week TEXT,
			until DATETIME NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE slots (
			id TEXT PRIMARY KEY,
			doctor_id TEXT NOT NULL,
			recurrence_id TEXT,
			start_time DATETIME NOT NULL,
			end_time DATETIME NOT NULL,
			status TEXT NOT NULL,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE bookings (
			id TEXT PRIMARY KEY,
			slot_id TEXT NOT NULL UNIQUE,
			patient_id TEXT NOT NULL,
			reason TEXT,
			booking_time DATETIME,
			created_at DATETIME,
			updated_at DATETIME
		);`,
	}
	for _, stmt := range schema {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("create schema: %v", err)
		}
	}

	return db
}

func seedDoctor(t *testing.T, db *gorm.DB) *model.Doctor {
	t.Helper()

	doctor := &model.Doctor{
		ID:        uuid.New(),
		Username:  "doc_" + uuid.NewString()[:8],
		Email:     uuid.NewString()[:8] + "@clinic.test",
		FirstName: "Anna",
		LastName:  "Reyes",
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return doctor
}

func seedSlot(t *testing.T, db *gorm.DB, doctorID uuid.UUID, start time.Time, status model.SlotStatus) *model.Slot {
	t.Helper()

	slot := &model.Slot{
		ID:        uuid.New(),
		DoctorID:  doctorID,
		StartTime: start,
		EndTime:   start.Add(30 * time.Minute),
		Status:    status,
	}
	if err := db.Create(slot).Error; err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return slot
}
