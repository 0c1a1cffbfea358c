package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medbooking/doctor-booking/internal/model"
)

// Размер пачки при вставке слотов. Пачки — оптимизация пропускной
// способности, все они живут внутри одной транзакции.
const slotInsertBatchSize = 100

type RecurrenceRuleRepository interface {
	// CreateWithSlots сохраняет правило и все его слоты одной транзакцией:
	// либо фиксируется всё, либо ничего.
	CreateWithSlots(ctx context.Context, rule *model.RecurrenceRule, slots []model.Slot) error
	// GetByID возвращает правило по ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.RecurrenceRule, error)
}

// Реализация на GORM.
type GormRecurrenceRuleRepository struct {
	db *gorm.DB
}

func NewGormRecurrenceRuleRepository(db *gorm.DB) *GormRecurrenceRuleRepository {
	return &GormRecurrenceRuleRepository{db: db}
}

func (r *GormRecurrenceRuleRepository) CreateWithSlots(
	ctx context.Context,
	rule *model.RecurrenceRule,
	slots []model.Slot,
) error {
	if rule == nil {
		return errors.New("recurrence rule is required")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rule).Error; err != nil {
			return err
		}
		if len(slots) == 0 {
			return nil
		}
		return tx.CreateInBatches(slots, slotInsertBatchSize).Error
	})
}

func (r *GormRecurrenceRuleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.RecurrenceRule, error) {
	var rule model.RecurrenceRule
	if err := r.db.WithContext(ctx).First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}
