package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/medbooking/doctor-booking/internal/model"
	"github.com/medbooking/doctor-booking/internal/repository"
)

type testEnv struct {
	db       *gorm.DB
	doctors  *DoctorService
	slots    *SlotService
	bookings *BookingService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	// Minimal schema for the core entities (sqlite-friendly).
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

	doctorRepo := repository.NewGormDoctorRepository(db)
	ruleRepo := repository.NewGormRecurrenceRuleRepository(db)
	slotRepo := repository.NewGormSlotRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)

	log := zerolog.Nop()

	return &testEnv{
		db:       db,
		doctors:  NewDoctorService(doctorRepo),
		slots:    NewSlotService(log, doctorRepo, ruleRepo, slotRepo),
		bookings: NewBookingService(log, doctorRepo, bookingRepo),
	}
}

func (e *testEnv) seedDoctor(t *testing.T) *model.Doctor {
	t.Helper()

	doctor := &model.Doctor{
		ID:        uuid.New(),
		Username:  "doc_" + uuid.NewString()[:8],
		Email:     uuid.NewString()[:8] + "@clinic.test",
		FirstName: "Anna",
		LastName:  "Reyes",
	}
	if err := e.db.Create(doctor).Error; err != nil {
		t.Fatalf("seed doctor: %v", err)
	}
	return doctor
}
