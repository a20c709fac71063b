package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type customerJSON struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type eventJSON struct {
	ID             uuid.UUID `json:"id"`
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"total_seats"`
	OrganizerEmail string    `json:"organizer_email"`
}

type reservationJSON struct {
	ID            uuid.UUID `json:"id"`
	Event         Event     `json:"event"`
	Customer      Customer  `json:"customer"`
	ReservedSeats int       `json:"reserved_seats"`
}

// MarshalJSON implements json.Marshaler.
func (c Customer) MarshalJSON() ([]byte, error) {
	return json.Marshal(customerJSON{Name: c.name, Address: c.address})
}

// UnmarshalJSON decodes and re-validates a Customer.
func (c *Customer) UnmarshalJSON(data []byte) error {
	var v customerJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	decoded, err := NewCustomer(v.Name, v.Address)
	if err != nil {
		return err
	}
	*c = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		ID:             e.id,
		Title:          e.title,
		Date:           e.date,
		Price:          e.price,
		TotalSeats:     e.totalSeats,
		OrganizerEmail: e.organizerEmail,
	})
}

// UnmarshalJSON decodes and re-validates an Event.
func (e *Event) UnmarshalJSON(data []byte) error {
	var v eventJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	decoded, err := NewEvent(v.ID, v.Title, v.Date, v.Price, v.TotalSeats, v.OrganizerEmail)
	if err != nil {
		return err
	}
	*e = decoded
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Reservation) MarshalJSON() ([]byte, error) {
	return json.Marshal(reservationJSON{
		ID:            r.id,
		Event:         r.event,
		Customer:      r.customer,
		ReservedSeats: r.reservedSeats,
	})
}

// UnmarshalJSON decodes and re-validates a Reservation.
func (r *Reservation) UnmarshalJSON(data []byte) error {
	var v reservationJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	decoded, err := NewReservation(v.ID, v.Event, v.Customer, v.ReservedSeats)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}
