// Package handler contains chi HTTP handlers that translate HTTP
// requests/responses to and from the service layer.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/model"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/repository"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/service"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/snapshot"
)

// BookingHandler holds all HTTP handlers for the booking API.
type BookingHandler struct {
	svc *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

// ─── Helper utilities ─────────────────────────────────────────────────────────

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1 MB limit
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// writeServiceError maps domain errors to HTTP status codes.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repository.ErrDuplicateName):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrBlacklisted):
		writeError(w, http.StatusForbidden, "customer is not allowed to book")
	case errors.Is(err, service.ErrBlacklistUnavailable):
		slog.Error("blacklist unavailable", slog.String("error", err.Error()))
		writeError(w, http.StatusServiceUnavailable, "blacklist unavailable, try again later")
	case errors.Is(err, service.ErrCapacityExceeded):
		writeError(w, http.StatusConflict, "not enough seats left for this event")
	case errors.Is(err, snapshot.ErrPersistence):
		slog.Error("snapshot failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "snapshot failed")
	default:
		slog.Error("request failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// ─── Handlers ─────────────────────────────────────────────────────────────────

// CreateCustomer handles POST /customers
func (h *BookingHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req model.CreateCustomerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	c, err := h.svc.RegisterCustomer(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// ListCustomers handles GET /customers
func (h *BookingHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	customers := h.svc.ListCustomers(r.Context())
	// Return an empty array rather than null for better client compatibility.
	if customers == nil {
		customers = []model.Customer{}
	}
	writeJSON(w, http.StatusOK, customers)
}

// CreateEvent handles POST /events
func (h *BookingHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	event, err := h.svc.CreateEvent(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

// ListEvents handles GET /events
func (h *BookingHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	events := h.svc.ListEvents(r.Context())
	if events == nil {
		events = []model.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// AvailableSeats handles GET /events/{id}/seats
func (h *BookingHandler) AvailableSeats(w http.ResponseWriter, r *http.Request) {
	event, available, err := h.svc.AvailableSeats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AvailabilityResponse{
		EventID:        event.ID().String(),
		TotalSeats:     event.TotalSeats(),
		AvailableSeats: available,
	})
}

// Reserve handles POST /events/{id}/reservations
// Books seats for a registered customer; repeated bookings are merged.
func (h *BookingHandler) Reserve(w http.ResponseWriter, r *http.Request) {
	var req model.ReserveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	res, err := h.svc.Reserve(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// GetReservation handles GET /events/{id}/reservations/{customer}
func (h *BookingHandler) GetReservation(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetReservation(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "customer"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ListReservations handles GET /reservations
func (h *BookingHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	reservations := h.svc.ListReservations(r.Context())
	if reservations == nil {
		reservations = []model.Reservation{}
	}
	writeJSON(w, http.StatusOK, reservations)
}

// SaveSnapshot handles POST /snapshots
func (h *BookingHandler) SaveSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SaveSnapshot(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RestoreSnapshot handles POST /snapshots/restore
func (h *BookingHandler) RestoreSnapshot(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RestoreSnapshot(r.Context()); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ─── Health check ─────────────────────────────────────────────────────────────

// HealthCheck handles GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
