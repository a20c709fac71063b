package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Shivanand-hulikatti/event-reservation-ledger/internal/model"
)

func newCustomer(t *testing.T, name string) model.Customer {
	t.Helper()
	c, err := model.NewCustomer(name, "Main Street 1")
	if err != nil {
		t.Fatalf("new customer: %v", err)
	}
	return c
}

func newEvent(t *testing.T, title string, totalSeats int) model.Event {
	t.Helper()
	e, err := model.NewEvent(uuid.New(), title, time.Now(), 50, totalSeats, "o@mail.com")
	if err != nil {
		t.Fatalf("new event: %v", err)
	}
	return e
}

func newReservation(t *testing.T, e model.Event, c model.Customer, seats int) model.Reservation {
	t.Helper()
	r, err := model.NewReservation(uuid.New(), e, c, seats)
	if err != nil {
		t.Fatalf("new reservation: %v", err)
	}
	return r
}

func TestCustomerRepository(t *testing.T) {
	t.Parallel()

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()
		repo := NewCustomerRepository()
		if err := repo.Add(newCustomer(t, "Max")); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if err := repo.Add(newCustomer(t, "Max")); !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
		if got := len(repo.List()); got != 1 {
			t.Fatalf("expected 1 customer, got %d", got)
		}
	})

	t.Run("names are case sensitive", func(t *testing.T) {
		t.Parallel()
		repo := NewCustomerRepository()
		if err := repo.Add(newCustomer(t, "Max")); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := repo.Add(newCustomer(t, "max")); err != nil {
			t.Fatalf("expected different case to be accepted, got %v", err)
		}
		if got := len(repo.List()); got != 2 {
			t.Fatalf("expected 2 customers, got %d", got)
		}
	})

	t.Run("list is a copy", func(t *testing.T) {
		t.Parallel()
		repo := NewCustomerRepository()
		_ = repo.Add(newCustomer(t, "Max"))
		list := repo.List()
		list[0] = newCustomer(t, "Anna")
		if c, err := repo.GetByName("Max"); err != nil || c.Name() != "Max" {
			t.Fatalf("expected stored customer untouched, got %v, %v", c, err)
		}
	})

	t.Run("get by name", func(t *testing.T) {
		t.Parallel()
		repo := NewCustomerRepository()
		_ = repo.Add(newCustomer(t, "Max"))
		if _, err := repo.GetByName("Anna"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("replace rejects duplicate batch", func(t *testing.T) {
		t.Parallel()
		repo := NewCustomerRepository()
		_ = repo.Add(newCustomer(t, "Max"))
		err := repo.Replace([]model.Customer{newCustomer(t, "Anna"), newCustomer(t, "Anna")})
		if !errors.Is(err, ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
		if list := repo.List(); len(list) != 1 || list[0].Name() != "Max" {
			t.Fatalf("expected collection unchanged, got %v", list)
		}
	})
}

func TestEventRepository(t *testing.T) {
	t.Parallel()

	repo := NewEventRepository()
	concert := newEvent(t, "Concert", 100)
	repo.Add(concert)
	repo.Add(concert)

	if got := len(repo.List()); got != 2 {
		t.Fatalf("expected duplicates to be kept, got %d events", got)
	}
	got, err := repo.GetByID(concert.ID())
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Title() != "Concert" {
		t.Fatalf("expected Concert, got %s", got.Title())
	}
	if _, err := repo.GetByID(uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	repo.Replace(nil)
	if got := len(repo.List()); got != 0 {
		t.Fatalf("expected empty registry after replace, got %d", got)
	}
}

func TestReservationRepository(t *testing.T) {
	t.Parallel()

	concert := newEvent(t, "Concert", 100)
	opera := newEvent(t, "Opera", 100)
	mx := newCustomer(t, "Max")
	anna := newCustomer(t, "Anna")

	repo := NewReservationRepository()
	first := newReservation(t, concert, mx, 30)
	repo.Append(first)
	repo.Append(newReservation(t, concert, anna, 21))
	repo.Append(newReservation(t, opera, mx, 5))

	if got := repo.SumSeats(concert.ID()); got != 51 {
		t.Fatalf("expected 51 seats for concert, got %d", got)
	}
	if got := repo.SumSeats(uuid.New()); got != 0 {
		t.Fatalf("expected 0 seats for unknown event, got %d", got)
	}

	found, err := repo.Find(concert.ID(), "Max")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found.ID() != first.ID() {
		t.Fatalf("expected %s, got %s", first.ID(), found.ID())
	}

	merged := newReservation(t, concert, mx, 40)
	if err := repo.Swap(first.ID(), merged); err != nil {
		t.Fatalf("swap: %v", err)
	}
	list := repo.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 reservations, got %d", len(list))
	}
	if list[2].ID() != merged.ID() {
		t.Fatalf("expected merged reservation at the end, got %s", list[2].ID())
	}
	if err := repo.Swap(first.ID(), merged); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for stale id, got %v", err)
	}
	if repo.Len() != 3 {
		t.Fatalf("expected failed swap to leave 3 reservations, got %d", repo.Len())
	}
}
