package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medbooking/doctor-booking/internal/model"
)

type DoctorRepository interface {
	// Создать врача. Дубликат username/email — ErrDoctorExists.
	Create(ctx context.Context, doctor *model.Doctor) error
	// Найти врача по ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error)
	// Список врачей с пагинацией.
	List(ctx context.Context, limit, offset int) ([]model.Doctor, int64, error)
}

// Реализация на GORM.
type GormDoctorRepository struct {
	db *gorm.DB
}

func NewGormDoctorRepository(db *gorm.DB) *GormDoctorRepository {
	return &GormDoctorRepository{db: db}
}

func (r *GormDoctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	// Предварительная проверка даёт понятную ошибку без раскрутки кода БД.
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Doctor{}).
		Where("username = ? OR email = ?", doctor.Username, doctor.Email).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDoctorExists
	}

	if err := r.db.WithContext(ctx).Create(doctor).Error; err != nil {
		// Гонка двух одинаковых регистраций упирается в уникальный индекс.
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return ErrDoctorExists
		}
		return err
	}
	return nil
}

func (r *GormDoctorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *GormDoctorRepository) List(ctx context.Context, limit, offset int) ([]model.Doctor, int64, error) {
	var doctors []model.Doctor

	q := r.db.WithContext(ctx).Model(&model.Doctor{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("created_at ASC").Find(&doctors).Error; err != nil {
		return nil, 0, err
	}

	return doctors, total, nil
}

// isUniqueViolation грубо распознаёт нарушение уникальности по тексту ошибки
// драйвера (postgres 23505 / sqlite UNIQUE constraint failed).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
