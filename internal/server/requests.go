package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/medbooking/doctor-booking/internal/schedule"
)

type createDoctorRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

type createSlotsRequest struct {
	StartTime      time.Time `json:"start_time" validate:"required"`
	EndTime        time.Time `json:"end_time" validate:"required"`
	SlotDuration   int       `json:"slot_duration" validate:"required,oneof=15 30"`
	RecurrenceType string    `json:"recurrence_type" validate:"required,oneof=one_time daily weekly"`
	DaysOfWeek     []int     `json:"days_of_week" validate:"omitempty,min=1,max=7,dive,min=0,max=6"`
	Until          time.Time `json:"until" validate:"required"`
}

type createBookingRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	Reason    string `json:"reason" validate:"omitempty,max=1000"`
}

// decodeBody разбирает JSON-тело и прогоняет его через validator.
func (s *Server) decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return s.validate.Struct(dst)
}

// parsePageParams читает page/limit из query. Отсутствующие значения
// получают дефолты, нечисловые — ошибку.
func parsePageParams(r *http.Request) (schedule.PageParams, error) {
	params := schedule.PageParams{}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return params, err
		}
		params.Page = page
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return params, err
		}
		params.Limit = limit
	}

	return params.Normalize(), nil
}
