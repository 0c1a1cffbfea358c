package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medbooking/doctor-booking/internal/model"
	"github.com/medbooking/doctor-booking/internal/repository"
	"github.com/medbooking/doctor-booking/internal/schedule"
)

// DoctorService — регистрация и справочник врачей.
type DoctorService struct {
	doctors repository.DoctorRepository
}

func NewDoctorService(doctors repository.DoctorRepository) *DoctorService {
	return &DoctorService{doctors: doctors}
}

type CreateDoctorInput struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// DoctorView — представление врача в ответе API.
type DoctorView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

func doctorViewFrom(d model.Doctor) DoctorView {
	return DoctorView{
		ID:        d.ID,
		Username:  d.Username,
		Email:     d.Email,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		CreatedAt: d.CreatedAt,
	}
}

func (s *DoctorService) Create(ctx context.Context, in CreateDoctorInput) (*DoctorView, error) {
	doctor := &model.Doctor{
		ID:        uuid.New(),
		Username:  in.Username,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.doctors.Create(ctx, doctor); err != nil {
		return nil, err
	}

	view := doctorViewFrom(*doctor)
	return &view, nil
}

func (s *DoctorService) GetByID(ctx context.Context, doctorID string) (*DoctorView, error) {
	id, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, repository.ErrDoctorNotFound
	}

	doctor, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := doctorViewFrom(*doctor)
	return &view, nil
}

func (s *DoctorService) List(ctx context.Context, page schedule.PageParams) ([]DoctorView, schedule.PageMeta, error) {
	page = page.Normalize()

	doctors, total, err := s.doctors.List(ctx, page.Limit, page.Offset())
	if err != nil {
		return nil, schedule.PageMeta{}, err
	}

	views := make([]DoctorView, 0, len(doctors))
	for _, d := range doctors {
		views = append(views, doctorViewFrom(d))
	}

	return views, schedule.NewPageMeta(total, page), nil
}
