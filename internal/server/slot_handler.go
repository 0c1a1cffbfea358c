package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medbooking/doctor-booking/internal/service"
)

func (s *Server) createSlots(w http.ResponseWriter, r *http.Request) {
	var req createSlotsRequest
	if err := s.decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	created, err := s.slots.CreateSlots(r.Context(), chi.URLParam(r, "doctorId"), service.CreateSlotsInput{
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		SlotDuration:   req.SlotDuration,
		RecurrenceType: req.RecurrenceType,
		DaysOfWeek:     req.DaysOfWeek,
		Until:          req.Until,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "slots created", created)
}

func (s *Server) listSlots(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination params")
		return
	}

	slots, meta, err := s.slots.ListByDoctor(r.Context(), chi.URLParam(r, "doctorId"), page)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writePage(w, "slots listed", slots, meta)
}

func (s *Server) listAvailableSlots(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination params")
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, http.StatusBadRequest, "date query param is required")
		return
	}

	slots, meta, err := s.slots.ListAvailableByDate(r.Context(), chi.URLParam(r, "doctorId"), date, page)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writePage(w, "available slots listed", slots, meta)
}
