package model

import "time"

// CreateCustomerRequest is the payload for registering a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CreateEventRequest is the payload for creating a new event.
type CreateEventRequest struct {
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	Price          float64   `json:"price"`
	TotalSeats     int       `json:"total_seats"`
	OrganizerEmail string    `json:"organizer_email"`
}

// ReserveRequest is the payload for reserving seats for an event.
type ReserveRequest struct {
	CustomerName string `json:"customer_name"`
	Seats        int    `json:"seats"`
}

// AvailabilityResponse reports the remaining seats for an event.
type AvailabilityResponse struct {
	EventID        string `json:"event_id"`
	TotalSeats     int    `json:"total_seats"`
	AvailableSeats int    `json:"available_seats"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
