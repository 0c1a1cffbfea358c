package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/medbooking/doctor-booking/internal/repository"
	"github.com/medbooking/doctor-booking/internal/schedule"
	"github.com/medbooking/doctor-booking/internal/service"
)

// Единый конверт ответа API.
type apiResponse struct {
	Success    bool               `json:"success"`
	Code       int                `json:"code"`
	Message    string             `json:"message"`
	Timestamp  string             `json:"timestamp"`
	Data       any                `json:"data,omitempty"`
	Pagination *schedule.PageMeta `json:"pagination,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp apiResponse) {
	resp.Code = code
	resp.Timestamp = time.Now().UTC().Format(time.RFC3339)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, apiResponse{Success: true, Message: message, Data: data})
}

func writePage(w http.ResponseWriter, message string, data any, meta schedule.PageMeta) {
	writeJSON(w, http.StatusOK, apiResponse{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: &meta,
	})
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, apiResponse{Success: false, Message: message})
}

// writeServiceError переводит типизированные ошибки ядра в HTTP-статусы.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrDoctorNotFound),
		errors.Is(err, repository.ErrSlotNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrSlotAlreadyBooked),
		errors.Is(err, repository.ErrDoctorExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, schedule.ErrInvalidRange),
		errors.Is(err, schedule.ErrInvalidDuration),
		errors.Is(err, schedule.ErrInvalidRecurrence),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidDateRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.log.Error().Err(err).Msg("internal error")
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
