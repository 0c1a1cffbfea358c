package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/medbooking/doctor-booking/internal/model"
	"github.com/medbooking/doctor-booking/internal/repository"
	"github.com/medbooking/doctor-booking/internal/schedule"
)

const (
	dateLayout     = "2006-01-02"
	maxSampleSlots = 5
)

// SlotService — генерация слотов из правил повторения и их выборка.
type SlotService struct {
	log     zerolog.Logger
	doctors repository.DoctorRepository
	rules   repository.RecurrenceRuleRepository
	slots   repository.SlotRepository
}

func NewSlotService(
	log zerolog.Logger,
	doctors repository.DoctorRepository,
	rules repository.RecurrenceRuleRepository,
	slots repository.SlotRepository,
) *SlotService {
	return &SlotService{
		log:     log,
		doctors: doctors,
		rules:   rules,
		slots:   slots,
	}
}

type CreateSlotsInput struct {
	StartTime      time.Time
	EndTime        time.Time
	SlotDuration   int
	RecurrenceType string
	DaysOfWeek     []int
	Until          time.Time
}

// SlotSummary — краткое описание слота в ответе на создание серии.
type SlotSummary struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// SlotsCreated — результат создания серии слотов.
type SlotsCreated struct {
	RecurrenceID   uuid.UUID     `json:"recurrence_id"`
	RecurrenceType string        `json:"recurrence_type"`
	StartDate      string        `json:"start_date"`
	EndDate        string        `json:"end_date"`
	SlotDuration   int           `json:"slot_duration"`
	TotalSlots     int           `json:"total_slots"`
	SampleSlots    []SlotSummary `json:"sample_slots"`
}

// SlotView — представление слота в списочных ответах.
type SlotView struct {
	ID           uuid.UUID  `json:"id"`
	DoctorID     uuid.UUID  `json:"doctor_id"`
	RecurrenceID *uuid.UUID `json:"recurrence_id,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Status       string     `json:"status"`
}

func slotViewFrom(s model.Slot) SlotView {
	return SlotView{
		ID:           s.ID,
		DoctorID:     s.DoctorID,
		RecurrenceID: s.RecurrenceID,
		StartTime:    s.StartTime,
		EndTime:      s.EndTime,
		Status:       string(s.Status),
	}
}

// CreateSlots валидирует правило, разворачивает его в слоты и сохраняет
// правило вместе со слотами одной транзакцией.
func (s *SlotService) CreateSlots(ctx context.Context, doctorID string, in CreateSlotsInput) (*SlotsCreated, error) {
	// Существование врача проверяется до любой записи.
	docID, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, repository.ErrDoctorNotFound
	}
	doctor, err := s.doctors.GetByID(ctx, docID)
	if err != nil {
		return nil, err
	}

	freq, err := schedule.ParseFrequency(in.RecurrenceType)
	if err != nil {
		return nil, err
	}

	rule := schedule.Rule{
		Freq:            freq,
		WindowStart:     in.StartTime,
		WindowEnd:       in.EndTime,
		SlotDurationMin: in.SlotDuration,
		DaysOfWeek:      in.DaysOfWeek,
		Until:           in.Until,
	}

	ranges, err := rule.Expand()
	if err != nil {
		return nil, err
	}

	rec := &model.RecurrenceRule{
		ID:              uuid.New(),
		DoctorID:        doctor.ID,
		Type:            model.RecurrenceType(freq),
		WindowStart:     in.StartTime,
		WindowEnd:       in.EndTime,
		SlotDurationMin: in.SlotDuration,
		DaysOfWeek:      datatypes.NewJSONSlice(in.DaysOfWeek),
		Until:           in.Until,
	}

	slots := make([]model.Slot, 0, len(ranges))
	for _, tr := range ranges {
		slots = append(slots, model.Slot{
			ID:           uuid.New(),
			DoctorID:     doctor.ID,
			RecurrenceID: &rec.ID,
			StartTime:    tr.Start,
			EndTime:      tr.End,
			Status:       model.SlotStatusAvailable,
		})
	}

	if err := s.rules.CreateWithSlots(ctx, rec, slots); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("doctor_id", doctor.ID.String()).
		Str("recurrence_id", rec.ID.String()).
		Str("recurrence_type", string(freq)).
		Int("total_slots", len(slots)).
		Msg("slot series created")

	sample := make([]SlotSummary, 0, maxSampleSlots)
	for i := 0; i < len(ranges) && i < maxSampleSlots; i++ {
		sample = append(sample, SlotSummary{StartTime: ranges[i].Start, EndTime: ranges[i].End})
	}

	return &SlotsCreated{
		RecurrenceID:   rec.ID,
		RecurrenceType: string(freq),
		StartDate:      in.StartTime.Format(dateLayout),
		EndDate:        in.Until.Format(dateLayout),
		SlotDuration:   in.SlotDuration,
		TotalSlots:     len(slots),
		SampleSlots:    sample,
	}, nil
}

// ListByDoctor — все слоты врача по возрастанию времени начала.
func (s *SlotService) ListByDoctor(ctx context.Context, doctorID string, page schedule.PageParams) ([]SlotView, schedule.PageMeta, error) {
	docID, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, schedule.PageMeta{}, repository.ErrDoctorNotFound
	}
	if _, err := s.doctors.GetByID(ctx, docID); err != nil {
		return nil, schedule.PageMeta{}, err
	}

	page = page.Normalize()

	slots, total, err := s.slots.ListByDoctor(ctx, docID, page.Limit, page.Offset())
	if err != nil {
		return nil, schedule.PageMeta{}, err
	}

	return slotViews(slots), schedule.NewPageMeta(total, page), nil
}

// ListAvailableByDate — свободные слоты врача на календарную дату.
func (s *SlotService) ListAvailableByDate(
	ctx context.Context,
	doctorID, date string,
	page schedule.PageParams,
) ([]SlotView, schedule.PageMeta, error) {
	docID, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, schedule.PageMeta{}, repository.ErrDoctorNotFound
	}
	if _, err := s.doctors.GetByID(ctx, docID); err != nil {
		return nil, schedule.PageMeta{}, err
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, schedule.PageMeta{}, ErrInvalidDate
	}
	dayStart := day
	dayEnd := day.Add(24*time.Hour - time.Nanosecond)

	page = page.Normalize()

	slots, total, err := s.slots.ListAvailableByDoctorDate(ctx, docID, dayStart, dayEnd, page.Limit, page.Offset())
	if err != nil {
		return nil, schedule.PageMeta{}, err
	}

	return slotViews(slots), schedule.NewPageMeta(total, page), nil
}

func slotViews(slots []model.Slot) []SlotView {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, slotViewFrom(s))
	}
	return views
}
