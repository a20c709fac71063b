// Package model defines the core domain types for the event booking system.
//
// Customer, Event and Reservation are immutable values: fields are only set
// by their validating constructors and read through accessor methods.
package model

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTextLength bounds every free-text field on a record.
const MaxTextLength = 255

// Customer is identified by its name.
type Customer struct {
	name    string
	address string
}

// NewCustomer validates name and address and returns the Customer.
func NewCustomer(name, address string) (Customer, error) {
	if err := checkText("name", name); err != nil {
		return Customer{}, err
	}
	if err := checkText("address", address); err != nil {
		return Customer{}, err
	}
	return Customer{name: name, address: address}, nil
}

func (c Customer) Name() string    { return c.name }
func (c Customer) Address() string { return c.address }

// Event represents a bookable event with a fixed seat capacity.
type Event struct {
	id             uuid.UUID
	title          string
	date           time.Time
	price          float64
	totalSeats     int
	organizerEmail string
}

// NewEvent validates the fields and returns the Event.
func NewEvent(id uuid.UUID, title string, date time.Time, price float64, totalSeats int, organizerEmail string) (Event, error) {
	if id == uuid.Nil {
		return Event{}, fmt.Errorf("%w: event id is required", ErrValidation)
	}
	if err := checkText("title", title); err != nil {
		return Event{}, err
	}
	// NaN fails this comparison too.
	if !(price >= 0) {
		return Event{}, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if totalSeats < 0 {
		return Event{}, fmt.Errorf("%w: total seats must not be negative", ErrValidation)
	}
	if err := checkText("organizer email", organizerEmail); err != nil {
		return Event{}, err
	}
	return Event{
		id:             id,
		title:          title,
		date:           date,
		price:          price,
		totalSeats:     totalSeats,
		organizerEmail: organizerEmail,
	}, nil
}

func (e Event) ID() uuid.UUID          { return e.id }
func (e Event) Title() string          { return e.title }
func (e Event) Date() time.Time        { return e.date }
func (e Event) Price() float64         { return e.price }
func (e Event) TotalSeats() int        { return e.totalSeats }
func (e Event) OrganizerEmail() string { return e.organizerEmail }

// Reservation links one customer to one event with a number of reserved seats.
type Reservation struct {
	id            uuid.UUID
	event         Event
	customer      Customer
	reservedSeats int
}

// NewReservation validates the reservation against the event's total
// capacity. It does not look at other reservations for the same event.
func NewReservation(id uuid.UUID, event Event, customer Customer, reservedSeats int) (Reservation, error) {
	if id == uuid.Nil {
		return Reservation{}, fmt.Errorf("%w: reservation id is required", ErrValidation)
	}
	if event.id == uuid.Nil {
		return Reservation{}, fmt.Errorf("%w: event is required", ErrValidation)
	}
	if customer.name == "" {
		return Reservation{}, fmt.Errorf("%w: customer is required", ErrValidation)
	}
	if reservedSeats <= 0 {
		return Reservation{}, fmt.Errorf("%w: reserved seats must be greater than zero", ErrValidation)
	}
	if reservedSeats > event.totalSeats {
		return Reservation{}, fmt.Errorf("%w: reserved seats (%d) exceed the event's total seats (%d)",
			ErrValidation, reservedSeats, event.totalSeats)
	}
	return Reservation{id: id, event: event, customer: customer, reservedSeats: reservedSeats}, nil
}

func (r Reservation) ID() uuid.UUID      { return r.id }
func (r Reservation) Event() Event       { return r.event }
func (r Reservation) Customer() Customer { return r.customer }
func (r Reservation) ReservedSeats() int { return r.reservedSeats }

// Matches reports whether r belongs to the given event and customer.
// Events match by id, customers by name.
func (r Reservation) Matches(eventID uuid.UUID, customerName string) bool {
	return r.event.id == eventID && r.customer.name == customerName
}

func checkText(field, v string) error {
	if v == "" {
		return fmt.Errorf("%w: %s must not be empty", ErrValidation, field)
	}
	if utf8.RuneCountInString(v) > MaxTextLength {
		return fmt.Errorf("%w: %s is too long, at most %d characters", ErrValidation, field, MaxTextLength)
	}
	return nil
}
