package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/medbooking/doctor-booking/internal/service"
)

func (s *Server) createDoctor(w http.ResponseWriter, r *http.Request) {
	var req createDoctorRequest
	if err := s.decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	doctor, err := s.doctors.Create(r.Context(), service.CreateDoctorInput{
		Username:  req.Username,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusCreated, "doctor created", doctor)
}

func (s *Server) getDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := s.doctors.GetByID(r.Context(), chi.URLParam(r, "doctorId"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeData(w, http.StatusOK, "doctor found", doctor)
}

func (s *Server) listDoctors(w http.ResponseWriter, r *http.Request) {
	page, err := parsePageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid pagination params")
		return
	}

	doctors, meta, err := s.doctors.List(r.Context(), page)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writePage(w, "doctors listed", doctors, meta)
}
