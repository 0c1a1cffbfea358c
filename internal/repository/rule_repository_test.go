package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/medbooking/doctor-booking/internal/model"
)

func makeRuleWithSlots(doctorID uuid.UUID, slotCount int) (*model.RecurrenceRule, []model.Slot) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	rule := &model.RecurrenceRule{
		ID:              uuid.New(),
		DoctorID:        doctorID,
		Type:            model.RecurrenceTypeDaily,
		WindowStart:     start,
		WindowEnd:       start.Add(8 * time.Hour),
		SlotDurationMin: 30,
		DaysOfWeek:      datatypes.NewJSONSlice[int](nil),
		Until:           start.AddDate(0, 1, 0),
	}

	slots := make([]model.Slot, 0, slotCount)
	cur := start
	for i := 0; i < slotCount; i++ {
		end := cur.Add(30 * time.Minute)
		slots = append(slots, model.Slot{
			ID:           uuid.New(),
			DoctorID:     doctorID,
			RecurrenceID: &rule.ID,
			StartTime:    cur,
			EndTime:      end,
			Status:       model.SlotStatusAvailable,
		})
		cur = end
	}

	return rule, slots
}

func TestGormRecurrenceRuleRepository_CreateWithSlots(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecurrenceRuleRepository(db)
	ctx := context.Background()

	doctor := seedDoctor(t, db)

	// 250 slots span three insert batches inside one transaction.
	rule, slots := makeRuleWithSlots(doctor.ID, 250)
	if err := repo.CreateWithSlots(ctx, rule, slots); err != nil {
		t.Fatalf("CreateWithSlots: %v", err)
	}

	stored, err := repo.GetByID(ctx, rule.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.Type != model.RecurrenceTypeDaily {
		t.Fatalf("stored type = %s, want daily", stored.Type)
	}

	var count int64
	if err := db.Model(&model.Slot{}).Where("recurrence_id = ?", rule.ID).Count(&count).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if count != 250 {
		t.Fatalf("slots = %d, want 250", count)
	}
}

func TestGormRecurrenceRuleRepository_CreateWithSlots_AtomicAcrossBatches(t *testing.T) {
	db := newTestDB(t)
	repo := NewGormRecurrenceRuleRepository(db)
	ctx := context.Background()

	doctor := seedDoctor(t, db)

	// A duplicate primary key in the third batch fails the insert after
	// two batches already went in; nothing may survive the rollback.
	rule, slots := makeRuleWithSlots(doctor.ID, 250)
	slots[249].ID = slots[0].ID

	if err := repo.CreateWithSlots(ctx, rule, slots); err == nil {
		t.Fatalf("CreateWithSlots must fail on duplicate slot id")
	}

	var ruleCount int64
	if err := db.Model(&model.RecurrenceRule{}).Where("id = ?", rule.ID).Count(&ruleCount).Error; err != nil {
		t.Fatalf("count rules: %v", err)
	}
	if ruleCount != 0 {
		t.Fatalf("rule persisted despite rollback")
	}

	var slotCount int64
	if err := db.Model(&model.Slot{}).Where("recurrence_id = ?", rule.ID).Count(&slotCount).Error; err != nil {
		t.Fatalf("count slots: %v", err)
	}
	if slotCount != 0 {
		t.Fatalf("slots = %d persisted despite rollback, want 0", slotCount)
	}
}
