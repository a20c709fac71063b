package service

import "errors"

// ErrBlacklisted is returned when the customer is on the blacklist.
var ErrBlacklisted = errors.New("customer is blacklisted")

// ErrCapacityExceeded is returned when a reservation would push the reserved
// seats of an event beyond its total seats.
var ErrCapacityExceeded = errors.New("total reserved seats exceed the event's capacity")

// ErrBlacklistUnavailable is returned when the blacklist could not be
// consulted. Nothing is booked.
var ErrBlacklistUnavailable = errors.New("blacklist lookup failed")

// ErrNoSnapshot is returned by RestoreSnapshot when the store holds no
// snapshot at all.
var ErrNoSnapshot = errors.New("no snapshot saved")
