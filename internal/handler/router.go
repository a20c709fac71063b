package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the chi router with the global middleware stack.
func NewRouter(h *BookingHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(Logger)                  // structured access log

	r.Get("/health", HealthCheck)

	r.Route("/customers", func(r chi.Router) {
		r.Post("/", h.CreateCustomer)
		r.Get("/", h.ListCustomers)
	})

	r.Route("/events", func(r chi.Router) {
		r.Post("/", h.CreateEvent)
		r.Get("/", h.ListEvents)
		r.Get("/{id}/seats", h.AvailableSeats)
		r.Post("/{id}/reservations", h.Reserve)
		r.Get("/{id}/reservations/{customer}", h.GetReservation)
	})

	r.Get("/reservations", h.ListReservations)

	r.Route("/snapshots", func(r chi.Router) {
		r.Post("/", h.SaveSnapshot)
		r.Post("/restore", h.RestoreSnapshot)
	})

	return r
}
