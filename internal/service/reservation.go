// Package service implements the booking rules on top of the in-memory
// repositories.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/model"
	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/repository"
)

// Blacklist decides whether a customer may book. An error means the lookup
// itself failed, not that the customer is barred.
type Blacklist interface {
	IsBlacklisted(ctx context.Context, name string) (bool, error)
}

// Notifier delivers an email. Delivery is fire-and-forget.
type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string)
}

// ReservationService is the reservation ledger.
type ReservationService struct {
	// mu serialises AddReservation so its checks and the merge see one state.
	mu           sync.Mutex
	reservations *repository.ReservationRepository
	blacklist    Blacklist
	notifier     Notifier
}

// NewReservationService constructs a ReservationService with its collaborators.
func NewReservationService(
	reservations *repository.ReservationRepository,
	blacklist Blacklist,
	notifier Notifier,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		blacklist:    blacklist,
		notifier:     notifier,
	}
}

// AddReservation books the reservation. The steps run in a fixed order:
//
//  1. blacklist check on the customer name
//  2. capacity check: seats already reserved for the event plus the request
//  3. organizer notification when the request alone takes at least 10% of
//     the event's seats
//  4. merge with an existing reservation for the same event and customer,
//     or append
//
// Only step 4 changes state. A failure in steps 1 or 2 leaves the ledger
// untouched and sends nothing. The returned reservation is the one stored,
// with merged seats when a merge happened.
func (s *ReservationService) AddReservation(ctx context.Context, r model.Reservation) (model.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event := r.Event()
	customer := r.Customer()

	blacklisted, err := s.blacklist.IsBlacklisted(ctx, customer.Name())
	if err != nil {
		return model.Reservation{}, fmt.Errorf("%w: %w", ErrBlacklistUnavailable, err)
	}
	if blacklisted {
		return model.Reservation{}, fmt.Errorf("%w: %s", ErrBlacklisted, customer.Name())
	}

	// Stored seats never exceed the total, so the subtraction cannot overflow.
	reserved := s.reservations.SumSeats(event.ID())
	if r.ReservedSeats() > event.TotalSeats()-reserved {
		return model.Reservation{}, fmt.Errorf("%w: %d reserved, %d requested, %d total",
			ErrCapacityExceeded, reserved, r.ReservedSeats(), event.TotalSeats())
	}

	if reachesNotifyThreshold(r.ReservedSeats(), event.TotalSeats()) {
		s.notifier.SendEmail(ctx, event.OrganizerEmail(),
			fmt.Sprintf("Booking for %s confirmed", event.Title()),
			fmt.Sprintf("%d seats were reserved for the event %s.", r.ReservedSeats(), event.Title()),
		)
	}

	existing, err := s.reservations.Find(event.ID(), customer.Name())
	if errors.Is(err, repository.ErrNotFound) {
		s.reservations.Append(r)
		slog.Debug("reservation added",
			slog.String("reservation_id", r.ID().String()),
			slog.String("event_id", event.ID().String()),
			slog.String("customer", customer.Name()),
			slog.Int("seats", r.ReservedSeats()),
		)
		return r, nil
	}
	if err != nil {
		return model.Reservation{}, fmt.Errorf("find reservation: %w", err)
	}

	merged, err := model.NewReservation(r.ID(), event, customer, existing.ReservedSeats()+r.ReservedSeats())
	if err != nil {
		return model.Reservation{}, fmt.Errorf("merge reservation: %w", err)
	}
	if err := s.reservations.Swap(existing.ID(), merged); err != nil {
		return model.Reservation{}, fmt.Errorf("merge reservation: %w", err)
	}
	slog.Debug("reservation merged",
		slog.String("reservation_id", merged.ID().String()),
		slog.String("replaced_id", existing.ID().String()),
		slog.String("event_id", event.ID().String()),
		slog.String("customer", customer.Name()),
		slog.Int("seats", merged.ReservedSeats()),
	)
	return merged, nil
}

// GetAvailableSeats returns the event's total seats minus the seats reserved
// for it. The result is not floored at zero.
func (s *ReservationService) GetAvailableSeats(event model.Event) int {
	return event.TotalSeats() - s.reservations.SumSeats(event.ID())
}

// GetReservation returns the reservation of the customer for the event, or
// repository.ErrNotFound.
func (s *ReservationService) GetReservation(event model.Event, customer model.Customer) (model.Reservation, error) {
	return s.reservations.Find(event.ID(), customer.Name())
}

// FindReservation looks up a reservation by event id and customer name.
func (s *ReservationService) FindReservation(eventID uuid.UUID, customerName string) (model.Reservation, error) {
	return s.reservations.Find(eventID, customerName)
}

// GetReservations returns a copy of the stored reservations.
func (s *ReservationService) GetReservations() []model.Reservation {
	return s.reservations.List()
}

// Restore replaces every stored reservation.
func (s *ReservationService) Restore(reservations []model.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations.Replace(reservations)
}

// reachesNotifyThreshold reports seats >= 10% of total. It compares against
// the ceiling of total/10 so neither side can overflow.
func reachesNotifyThreshold(seats, total int) bool {
	threshold := total / 10
	if total%10 != 0 {
		threshold++
	}
	return seats >= threshold
}
