package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/medbooking/doctor-booking/internal/config"
	"github.com/medbooking/doctor-booking/internal/service"
)

// Server собирает REST-обвязку над сервисами ядра.
type Server struct {
	log      zerolog.Logger
	cfg      *config.HTTPConfig
	validate *validator.Validate

	doctors  *service.DoctorService
	slots    *service.SlotService
	bookings *service.BookingService
}

func New(
	log zerolog.Logger,
	cfg *config.HTTPConfig,
	doctors *service.DoctorService,
	slots *service.SlotService,
	bookings *service.BookingService,
) *Server {
	return &Server{
		log:      log,
		cfg:      cfg,
		validate: validator.New(),
		doctors:  doctors,
		slots:    slots,
		bookings: bookings,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{s.cfg.CORSOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", s.health)

	r.Route("/doctors", func(r chi.Router) {
		r.Post("/", s.createDoctor)
		r.Get("/", s.listDoctors)

		r.Route("/{doctorId}", func(r chi.Router) {
			r.Get("/", s.getDoctor)
			r.Post("/slots", s.createSlots)
			r.Get("/slots", s.listSlots)
			r.Get("/available_slots", s.listAvailableSlots)
			r.Get("/bookings", s.listBookings)
		})
	})

	// Бронирование прикрыто лимитом на IP: это единственная
	// конкурентная точка записи.
	r.With(httprate.LimitByIP(s.cfg.BookRateLimit, time.Minute)).
		Post("/slots/{slotId}/book", s.bookSlot)

	return r
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeData(w, http.StatusOK, "ok", nil)
}
