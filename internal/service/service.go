package service

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/model"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/repository"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/snapshot"
)

// BookingService orchestrates the registries, the ledger and snapshots for
// callers that address customers by name and events by id.
type BookingService struct {
	customers *repository.CustomerRepository
	events    *repository.EventRepository
	ledger    *ReservationService
	store     snapshot.Store
}

// NewBookingService constructs a BookingService with its dependencies.
func NewBookingService(
	customers *repository.CustomerRepository,
	events *repository.EventRepository,
	ledger *ReservationService,
	store snapshot.Store,
) *BookingService {
	return &BookingService{customers: customers, events: events, ledger: ledger, store: store}
}

// RegisterCustomer validates and stores a new customer.
func (s *BookingService) RegisterCustomer(_ context.Context, req model.CreateCustomerRequest) (model.Customer, error) {
	c, err := model.NewCustomer(req.Name, req.Address)
	if err != nil {
		return model.Customer{}, err
	}
	if err := s.customers.Add(c); err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// ListCustomers returns all customers.
func (s *BookingService) ListCustomers(_ context.Context) []model.Customer {
	return s.customers.List()
}

// CreateEvent validates the request and stores the event under a new id.
func (s *BookingService) CreateEvent(_ context.Context, req model.CreateEventRequest) (model.Event, error) {
	e, err := model.NewEvent(uuid.New(), strings.TrimSpace(req.Title), req.Date, req.Price, req.TotalSeats,
		strings.TrimSpace(req.OrganizerEmail))
	if err != nil {
		return model.Event{}, err
	}
	s.events.Add(e)
	return e, nil
}

// ListEvents returns all events.
func (s *BookingService) ListEvents(_ context.Context) []model.Event {
	return s.events.List()
}

// GetEvent returns a single event by id.
func (s *BookingService) GetEvent(_ context.Context, id string) (model.Event, error) {
	eventID, err := uuid.Parse(id)
	if err != nil {
		return model.Event{}, repository.ErrNotFound
	}
	return s.events.GetByID(eventID)
}

// Reserve books seats of an event for a registered customer.
func (s *BookingService) Reserve(ctx context.Context, eventID string, req model.ReserveRequest) (model.Reservation, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("event: %w", err)
	}
	customer, err := s.customers.GetByName(req.CustomerName)
	if err != nil {
		return model.Reservation{}, fmt.Errorf("customer: %w", err)
	}
	r, err := model.NewReservation(uuid.New(), event, customer, req.Seats)
	if err != nil {
		return model.Reservation{}, err
	}
	// The stored reservation may carry merged seats.
	stored, err := s.ledger.AddReservation(ctx, r)
	if err != nil {
		return model.Reservation{}, err
	}
	return stored, nil
}

// AvailableSeats returns the remaining seats of an event.
func (s *BookingService) AvailableSeats(ctx context.Context, eventID string) (model.Event, int, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return model.Event{}, 0, err
	}
	return event, s.ledger.GetAvailableSeats(event), nil
}

// GetReservation returns the reservation of a customer for an event.
func (s *BookingService) GetReservation(ctx context.Context, eventID, customerName string) (model.Reservation, error) {
	event, err := s.GetEvent(ctx, eventID)
	if err != nil {
		return model.Reservation{}, err
	}
	return s.ledger.FindReservation(event.ID(), customerName)
}

// ListReservations returns all stored reservations.
func (s *BookingService) ListReservations(_ context.Context) []model.Reservation {
	return s.ledger.GetReservations()
}

// SaveSnapshot dumps customers, events and reservations to the store.
func (s *BookingService) SaveSnapshot(ctx context.Context) error {
	if err := snapshot.Save(ctx, s.store, snapshot.KeyCustomers, s.customers.List()); err != nil {
		return err
	}
	if err := snapshot.Save(ctx, s.store, snapshot.KeyEvents, s.events.List()); err != nil {
		return err
	}
	if err := snapshot.Save(ctx, s.store, snapshot.KeyReservations, s.ledger.GetReservations()); err != nil {
		return err
	}
	slog.Info("snapshot saved")
	return nil
}

// RestoreSnapshot loads all three collections and swaps them in only when
// every one of them decoded.
func (s *BookingService) RestoreSnapshot(ctx context.Context) error {
	customers, custErr := snapshot.Load[model.Customer](ctx, s.store, snapshot.KeyCustomers)
	events, evErr := snapshot.Load[model.Event](ctx, s.store, snapshot.KeyEvents)
	reservations, resErr := snapshot.Load[model.Reservation](ctx, s.store, snapshot.KeyReservations)

	// Only a store holding none of the three keys counts as a fresh start.
	// A partial snapshot is reported like any other read failure.
	if missing(custErr) && missing(evErr) && missing(resErr) {
		return fmt.Errorf("%w: %w", snapshot.ErrPersistence, ErrNoSnapshot)
	}
	if err := errors.Join(custErr, evErr, resErr); err != nil {
		return err
	}

	if err := s.customers.Replace(customers); err != nil {
		return fmt.Errorf("%w: %w", snapshot.ErrPersistence, err)
	}
	s.events.Replace(events)
	s.ledger.Restore(reservations)

	slog.Info("snapshot restored",
		slog.Int("customers", len(customers)),
		slog.Int("events", len(events)),
		slog.Int("reservations", len(reservations)),
	)
	return nil
}

// IsMissingSnapshot reports whether err means no snapshot has been saved yet.
func IsMissingSnapshot(err error) bool {
	return errors.Is(err, ErrNoSnapshot)
}

func missing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
