package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) bookSlot(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := s.decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	booking, err := s.bookings.BookSlot(r.Context(), chi.URLParam(r, "slotId"), req.PatientID, req.Reason)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "slot booked", booking)
}

func (s *Server) listBookings(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination params")
		return
	}

	bookings, meta, err := s.bookings.ListByDoctor(
		r.Context(),
		chi.URLParam(r, "doctorId"),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
		page,
	)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writePage(w, "bookings listed", bookings, meta)
}
