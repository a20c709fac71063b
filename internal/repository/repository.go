// Package repository holds the in-memory collections of the booking system.
// Every repository guards its slice with its own mutex; callers that need a
// multi-step operation to be atomic must serialise it themselves.
package repository

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/model"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicateName is returned when a customer name is already registered.
var ErrDuplicateName = errors.New("duplicate customer name")

// CustomerRepository is the customer registry. Names are unique.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers []model.Customer
}

// NewCustomerRepository constructs an empty CustomerRepository.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

// Add appends the customer unless one with the same name exists.
// Names are compared exactly, case included.
func (r *CustomerRepository) Add(c model.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.customers {
		if existing.Name() == c.Name() {
			return fmt.Errorf("%w: %s", ErrDuplicateName, c.Name())
		}
	}
	r.customers = append(r.customers, c)
	return nil
}

// List returns a copy of all customers in insertion order.
func (r *CustomerRepository) List() []model.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.customers)
}

// GetByName returns the customer with the given name or ErrNotFound.
func (r *CustomerRepository) GetByName(name string) (model.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.customers {
		if c.Name() == name {
			return c, nil
		}
	}
	return model.Customer{}, ErrNotFound
}

// Replace swaps the whole collection. A batch that repeats a name is
// rejected and the current collection is kept.
func (r *CustomerRepository) Replace(customers []model.Customer) error {
	seen := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		if _, ok := seen[c.Name()]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, c.Name())
		}
		seen[c.Name()] = struct{}{}
	}

	r.mu.Lock()
	r.customers = slices.Clone(customers)
	r.mu.Unlock()
	return nil
}

// EventRepository is the event registry. It does not deduplicate.
type EventRepository struct {
	mu     sync.RWMutex
	events []model.Event
}

// NewEventRepository constructs an empty EventRepository.
func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

// Add appends the event unconditionally.
func (r *EventRepository) Add(e model.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

// List returns a copy of all events in insertion order.
func (r *EventRepository) List() []model.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.events)
}

// GetByID returns the first event with the given id or ErrNotFound.
func (r *EventRepository) GetByID(id uuid.UUID) (model.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.events {
		if e.ID() == id {
			return e, nil
		}
	}
	return model.Event{}, ErrNotFound
}

// Replace swaps the whole collection.
func (r *EventRepository) Replace(events []model.Event) {
	r.mu.Lock()
	r.events = slices.Clone(events)
	r.mu.Unlock()
}
