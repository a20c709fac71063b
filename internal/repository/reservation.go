package repository

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/model"
)

// ReservationRepository stores the reservations owned by the ledger.
type ReservationRepository struct {
	mu           sync.RWMutex
	reservations []model.Reservation
}

// NewReservationRepository constructs an empty ReservationRepository.
func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// Append stores r at the end of the collection.
func (r *ReservationRepository) Append(res model.Reservation) {
	r.mu.Lock()
	r.reservations = append(r.reservations, res)
	r.mu.Unlock()
}

// List returns a copy of all reservations in insertion order.
func (r *ReservationRepository) List() []model.Reservation {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.reservations)
}

// Len returns the number of stored reservations.
func (r *ReservationRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.reservations)
}

// SumSeats adds up the reserved seats of every reservation for the event.
func (r *ReservationRepository) SumSeats(eventID uuid.UUID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, res := range r.reservations {
		if res.Event().ID() == eventID {
			total += res.ReservedSeats()
		}
	}
	return total
}

// Find returns the first reservation for the event and customer name, or
// ErrNotFound.
func (r *ReservationRepository) Find(eventID uuid.UUID, customerName string) (model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.reservations {
		if res.Matches(eventID, customerName) {
			return res, nil
		}
	}
	return model.Reservation{}, ErrNotFound
}

// Swap removes the reservation with oldID and appends next in its place at
// the end of the collection. It returns ErrNotFound, leaving the collection
// untouched, when oldID is not stored.
func (r *ReservationRepository) Swap(oldID uuid.UUID, next model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.reservations, func(res model.Reservation) bool {
		return res.ID() == oldID
	})
	if i < 0 {
		return ErrNotFound
	}
	r.reservations = append(slices.Delete(r.reservations, i, i+1), next)
	return nil
}

// Replace swaps the whole collection.
func (r *ReservationRepository) Replace(reservations []model.Reservation) {
	r.mu.Lock()
	r.reservations = slices.Clone(reservations)
	r.mu.Unlock()
}
