package services

import (
	"fmt"
	"sync"
	"testing"

	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
)

// seatCounter mimics the storage layer's atomic claim/release for
// orchestration tests: check-and-increment under one lock, seat number is
// the pre-increment count.
type seatCounter struct {
	mu       sync.Mutex
	capacity int
	claimed  int
}

func (s *seatCounter) claim(scheduleID int64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimed >= s.capacity {
		return 0, domain.SoldOutError{ScheduleID: scheduleID}
	}
	seat := s.claimed
	s.claimed++
	return seat, nil
}

func (s *seatCounter) release(scheduleID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimed == 0 {
		return domain.UnderflowError{ScheduleID: scheduleID}
	}
	s.claimed--
	return nil
}

func testBookingService(counter *seatCounter, saveErr error) BookingService {
	var (
		mu     sync.Mutex
		nextID int64
	)
	return BookingService{
		ResolveSchedule: func(tripID int64, tripDate string) (models.TripSchedule, error) {
			if tripID != 42 {
				return models.TripSchedule{}, domain.NotFoundError{Resource: "trip"}
			}
			return models.TripSchedule{ID: 1, TripID: 42, TripDate: "2024-06-01", Capacity: counter.capacity}, nil
		},
		Claim:   counter.claim,
		Release: counter.release,
		SaveTicket: func(t models.Ticket) (models.Ticket, error) {
			if saveErr != nil {
				return t, saveErr
			}
			mu.Lock()
			nextID++
			t.ID = nextID
			mu.Unlock()
			return t, nil
		},
	}
}

func TestBookTicketAssignsOrdinalSeats(t *testing.T) {
	counter := &seatCounter{capacity: 2}
	svc := testBookingService(counter, nil)

	first, err := svc.BookTicket(42, "2024-06-01", 7)
	if err != nil {
		t.Fatalf("first booking error: %v", err)
	}
	second, err := svc.BookTicket(42, "2024-06-01", 8)
	if err != nil {
		t.Fatalf("second booking error: %v", err)
	}
	if first.SeatNumber != 0 || second.SeatNumber != 1 {
		t.Fatalf("expected seats 0 and 1, got %d and %d", first.SeatNumber, second.SeatNumber)
	}
	if first.JourneyDate != "2024-06-01" {
		t.Fatalf("journey date not copied from schedule: %q", first.JourneyDate)
	}
	if first.Cancellable {
		t.Fatalf("tickets must not be cancellable")
	}

	if _, err := svc.BookTicket(42, "2024-06-01", 9); !domain.IsSoldOut(err) {
		t.Fatalf("expected SoldOutError on full schedule, got %v", err)
	}
	if counter.claimed != 2 {
		t.Fatalf("claimed count off after sold out: %d", counter.claimed)
	}
}

func TestBookTicketReleasesSeatWhenTicketSaveFails(t *testing.T) {
	counter := &seatCounter{capacity: 2}
	svc := testBookingService(counter, fmt.Errorf("write timeout"))

	_, err := svc.BookTicket(42, "2024-06-01", 7)
	if !domain.IsInternal(err) {
		t.Fatalf("expected InternalError, got %v", err)
	}
	if counter.claimed != 0 {
		t.Fatalf("claimed seat was not released after failed ticket write: %d", counter.claimed)
	}
}

func TestBookTicketUnknownTrip(t *testing.T) {
	counter := &seatCounter{capacity: 2}
	svc := testBookingService(counter, nil)
	svc.Claim = func(scheduleID int64) (int, error) {
		t.Fatalf("claim must not run for unknown trip")
		return 0, nil
	}

	if _, err := svc.BookTicket(99, "2024-06-01", 7); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestConcurrentBookingsNoOversellNoLostSeats(t *testing.T) {
	const capacity = 5
	const extra = 3

	counter := &seatCounter{capacity: capacity}
	svc := testBookingService(counter, nil)

	var wg sync.WaitGroup
	results := make(chan error, capacity+extra)
	seats := make(chan int, capacity+extra)

	for i := 0; i < capacity+extra; i++ {
		wg.Add(1)
		go func(passenger int64) {
			defer wg.Done()
			ticket, err := svc.BookTicket(42, "2024-06-01", passenger)
			results <- err
			if err == nil {
				seats <- ticket.SeatNumber
			}
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)
	close(seats)

	var ok, soldOut int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case domain.IsSoldOut(err):
			soldOut++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if ok != capacity || soldOut != extra {
		t.Fatalf("expected %d successes and %d sold-out, got %d and %d", capacity, extra, ok, soldOut)
	}

	seen := map[int]bool{}
	for seat := range seats {
		if seat < 0 || seat >= capacity {
			t.Fatalf("seat %d outside [0,%d)", seat, capacity)
		}
		if seen[seat] {
			t.Fatalf("seat %d assigned twice", seat)
		}
		seen[seat] = true
	}
}
