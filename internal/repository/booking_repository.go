package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medbooking/doctor-booking/internal/model"
)

type BookingRepository interface {
	// Book выполняет переход слота available → booked и создаёт бронь
	// одной транзакцией. При любом количестве конкурентных вызовов
	// на один слот успешен максимум один; остальные получают
	// ErrSlotAlreadyBooked, для несуществующего слота — ErrSlotNotFound.
	Book(ctx context.Context, slotID uuid.UUID, patientID, reason string) (*model.Booking, error)
	// Брони по врачу с фильтром по началу слота (границы включительно),
	// по возрастанию slots.start_time.
	ListByDoctorRange(
		ctx context.Context,
		doctorID uuid.UUID,
		from, to *time.Time,
		limit, offset int,
	) ([]model.Booking, int64, error)
}

// Реализация на GORM.
type GormBookingRepository struct {
	db *gorm.DB
}

func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

func (r *GormBookingRepository) Book(
	ctx context.Context,
	slotID uuid.UUID,
	patientID, reason string,
) (*model.Booking, error) {
	var booking *model.Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Условный переход одним UPDATE: исход гонки решает число
		// затронутых строк, а не предварительное чтение статуса.
		res := tx.Model(&model.Slot{}).
			Where("id = ? AND status = ?", slotID, model.SlotStatusAvailable).
			Update("status", model.SlotStatusBooked)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			// Ноль строк: слот либо уже занят, либо не существует.
			var count int64
			if err := tx.Model(&model.Slot{}).Where("id = ?", slotID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return ErrSlotNotFound
			}
			return ErrSlotAlreadyBooked
		}

		b := &model.Booking{
			ID:          uuid.New(),
			SlotID:      slotID,
			PatientID:   patientID,
			Reason:      reason,
			BookingTime: time.Now().UTC(),
		}
		// Ошибка вставки брони откатывает и смену статуса слота.
		if err := tx.Create(b).Error; err != nil {
			return err
		}

		var slot model.Slot
		if err := tx.First(&slot, "id = ?", slotID).Error; err != nil {
			return err
		}
		b.Slot = &slot

		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	return booking, nil
}

func (r *GormBookingRepository) ListByDoctorRange(
	ctx context.Context,
	doctorID uuid.UUID,
	from, to *time.Time,
	limit, offset int,
) ([]model.Booking, int64, error) {
	var bookings []model.Booking

	q := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Joins("JOIN slots ON slots.id = bookings.slot_id").
		Where("slots.doctor_id = ?", doctorID)

	if from != nil {
		q = q.Where("slots.start_time >= ?", *from)
	}
	if to != nil {
		q = q.Where("slots.start_time <= ?", *to)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if limit > 0 {
		q = q.Limit(limit).Offset(offset)
	}

	err := q.Select("bookings.*").
		Preload("Slot").
		Order("slots.start_time ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}

	return bookings, total, nil
}
