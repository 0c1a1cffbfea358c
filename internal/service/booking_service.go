package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medbooking/doctor-booking/internal/model"
	"github.com/medbooking/doctor-booking/internal/repository"
	"github.com/medbooking/doctor-booking/internal/schedule"
)

// BookingService — бронирование слотов и выборка броней.
type BookingService struct {
	log      zerolog.Logger
	doctors  repository.DoctorRepository
	bookings repository.BookingRepository
}

func NewBookingService(
	log zerolog.Logger,
	doctors repository.DoctorRepository,
	bookings repository.BookingRepository,
) *BookingService {
	return &BookingService{
		log:      log,
		doctors:  doctors,
		bookings: bookings,
	}
}

// SlotDetail — слот внутри ответа о брони.
type SlotDetail struct {
	ID        uuid.UUID `json:"id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
}

// BookingDetail — бронь вместе с данными слота.
type BookingDetail struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   string     `json:"patient_id"`
	Reason      string     `json:"reason,omitempty"`
	BookingTime time.Time  `json:"booking_time"`
	Slot        SlotDetail `json:"slot"`
}

func bookingDetailFrom(b model.Booking) BookingDetail {
	detail := BookingDetail{
		ID:          b.ID,
		PatientID:   b.PatientID,
		Reason:      b.Reason,
		BookingTime: b.BookingTime,
	}
	if b.Slot != nil {
		detail.Slot = SlotDetail{
			ID:        b.Slot.ID,
			DoctorID:  b.Slot.DoctorID,
			StartTime: b.Slot.StartTime,
			EndTime:   b.Slot.EndTime,
			Status:    string(b.Slot.Status),
		}
	}
	return detail
}

// BookSlot бронирует слот для пациента. На один слот успешна максимум
// одна бронь; конкурентные попытки получают ErrSlotAlreadyBooked.
func (s *BookingService) BookSlot(ctx context.Context, slotID, patientID, reason string) (*BookingDetail, error) {
	id, err := uuid.Parse(slotID)
	if err != nil {
		return nil, repository.ErrSlotNotFound
	}

	booking, err := s.bookings.Book(ctx, id, patientID, reason)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", booking.ID.String()).
		Str("slot_id", id.String()).
		Str("patient_id", patientID).
		Msg("slot booked")

	detail := bookingDetailFrom(*booking)
	return &detail, nil
}

// ListByDoctor — брони врача, отфильтрованные по дате начала слота.
// startDate/endDate опциональны, формат YYYY-MM-DD, границы включительно.
func (s *BookingService) ListByDoctor(
	ctx context.Context,
	doctorID, startDate, endDate string,
	page schedule.PageParams,
) ([]BookingDetail, schedule.PageMeta, error) {
	docID, err := uuid.Parse(doctorID)
	if err != nil {
		return nil, schedule.PageMeta{}, repository.ErrDoctorNotFound
	}
	if _, err := s.doctors.GetByID(ctx, docID); err != nil {
		return nil, schedule.PageMeta{}, err
	}

	var from, to *time.Time
	if startDate != "" {
		day, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return nil, schedule.PageMeta{}, ErrInvalidDate
		}
		from = &day
	}
	if endDate != "" {
		day, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return nil, schedule.PageMeta{}, ErrInvalidDate
		}
		end := day.Add(24*time.Hour - time.Nanosecond)
		to = &end
	}
	if from != nil && to != nil && from.After(*to) {
		return nil, schedule.PageMeta{}, ErrInvalidDateRange
	}

	page = page.Normalize()

	bookings, total, err := s.bookings.ListByDoctorRange(ctx, docID, from, to, page.Limit, page.Offset())
	if err != nil {
		return nil, schedule.PageMeta{}, err
	}

	details := make([]BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, bookingDetailFrom(b))
	}

	return details, schedule.NewPageMeta(total, page), nil
}
