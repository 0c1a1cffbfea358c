package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/medbooking/doctor-booking/internal/model"
)

func TestGormDoctorRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDoctorRepository(db)
	ctx := context.Background()

	doctor := &model.Doctor{
		ID:        uuid.New(),
		Username:  "dr_house",
		Email:     "house@clinic.test",
		FirstName: "Gregory",
		LastName:  "House",
	}
	if err := repo.Create(ctx, doctor); err != nil {
		t.Fatalf("Create: %v", err)
	}

	stored, err := repo.GetByID(ctx, doctor.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Username != "dr_house" {
		t.Fatalf("username = %q, want dr_house", stored.Username)
	}

	if _, err := repo.GetByID(ctx, uuid.New()); !errors.Is(err, ErrDoctorNotFound) {
		t.Fatalf("GetByID unknown = %v, want ErrDoctorNotFound", err)
	}
}

func TestGormDoctorRepository_Create_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDoctorRepository(db)
	ctx := context.Background()

	first := &model.Doctor{
		ID:        uuid.New(),
		Username:  "dr_wilson",
		Email:     "wilson@clinic.test",
		FirstName: "James",
		LastName:  "Wilson",
	}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dupUsername := &model.Doctor{
		ID:        uuid.New(),
		Username:  "dr_wilson",
		Email:     "other@clinic.test",
		FirstName: "Other",
		LastName:  "Wilson",
	}
	if err := repo.Create(ctx, dupUsername); !errors.Is(err, ErrDoctorExists) {
		t.Fatalf("duplicate username = %v, want ErrDoctorExists", err)
	}

	dupEmail := &model.Doctor{
		ID:        uuid.New(),
		Username:  "dr_other",
		Email:     "wilson@clinic.test",
		FirstName: "Other",
		LastName:  "Wilson",
	}
	if err := repo.Create(ctx, dupEmail); !errors.Is(err, ErrDoctorExists) {
		t.Fatalf("duplicate email = %v, want ErrDoctorExists", err)
	}
}

func TestGormDoctorRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormDoctorRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		seedDoctor(t, db)
	}

	doctors, total, err := repo.List(ctx, 3, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Fatalf("total = %d, want 5", total)
	}
	if len(doctors) != 3 {
		t.Fatalf("len = %d, want 3", len(doctors))
	}
}
