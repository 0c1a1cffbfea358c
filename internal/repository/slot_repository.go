package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medbooking/doctor-booking/internal/model"
)

type SlotRepository interface {
	// Найти слот по ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Slot, error)
	// Все слоты врача с пагинацией, по возрастанию start_time.
	ListByDoctor(ctx context.Context, doctorID uuid.UUID, limit, offset int) ([]model.Slot, int64, error)
	// Свободные слоты врача, целиком лежащие в пределах суток [dayStart, dayEnd].
	ListAvailableByDoctorDate(
		ctx context.Context,
		doctorID uuid.UUID,
		dayStart, dayEnd time.Time,
		limit, offset int,
	) ([]model.Slot, int64, error)
}

// Реализация на GORM.
type GormSlotRepository struct {
	db *gorm.DB
}

func NewGormSlotRepository(db *gorm.DB) *GormSlotRepository {
	return &GormSlotRepository{db: db}
}

func (r *GormSlotRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Slot, error) {
	var slot model.Slot
	if err := r.db.WithContext(ctx).First(&slot, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, err
	}
	return &slot, nil
}

func (r *GormSlotRepository) ListByDoctor(
	ctx context.Context,
	doctorID uuid.UUID,
	limit, offset int,
) ([]model.Slot, int64, error) {
	var slots []model.Slot

	q := r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("doctor_id = ?", doctorID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("start_time ASC").Find(&slots).Error; err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}

func (r *GormSlotRepository) ListAvailableByDoctorDate(
	ctx context.Context,
	doctorID uuid.UUID,
	dayStart, dayEnd time.Time,
	limit, offset int,
) ([]model.Slot, int64, error) {
	var slots []model.Slot

	q := r.db.WithContext(ctx).
		Model(&model.Slot{}).
		Where("doctor_id = ?", doctorID).
		Where("status = ?", model.SlotStatusAvailable).
		Where("start_time >= ? AND end_time <= ?", dayStart, dayEnd)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	if err := q.Order("start_time ASC").Find(&slots).Error; err != nil {
		return nil, 0, err
	}

	return slots, total, nil
}
