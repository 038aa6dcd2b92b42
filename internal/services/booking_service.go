package services

import (
	"database/sql"
	"fmt"
	"time"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
	"brs-backend/internal/repositories"
	"brs-backend/internal/utils"
)

const releaseRetries = 3

// BookingService runs a reservation end to end: resolve the dated schedule
// (creating it on first touch), claim one seat, record the ticket. The only
// compensation path is releasing the seat when the ticket write fails.
type BookingService struct {
	Schedules  ScheduleService
	Inventory  InventoryService
	Catalog    CatalogService
	TicketRepo repositories.TicketRepo
	DB         *sql.DB
	RequestID  string

	// Test seams; nil means use the wired collaborators.
	ResolveSchedule func(tripID int64, tripDate string) (models.TripSchedule, error)
	Claim           func(scheduleID int64) (int, error)
	Release         func(scheduleID int64) error
	SaveTicket      func(t models.Ticket) (models.Ticket, error)
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) tickets() repositories.TicketRepo {
	if s.TicketRepo.DB != nil {
		return s.TicketRepo
	}
	return repositories.TicketRepo{DB: s.db()}
}

func (s BookingService) resolveSchedule(tripID int64, tripDate string) (models.TripSchedule, error) {
	if s.ResolveSchedule != nil {
		return s.ResolveSchedule(tripID, tripDate)
	}
	return s.Schedules.GetOrCreate(tripID, tripDate)
}

func (s BookingService) claim(scheduleID int64) (int, error) {
	if s.Claim != nil {
		return s.Claim(scheduleID)
	}
	return s.Inventory.ClaimSeat(scheduleID)
}

func (s BookingService) release(scheduleID int64) error {
	if s.Release != nil {
		return s.Release(scheduleID)
	}
	return s.Inventory.ReleaseSeat(scheduleID)
}

func (s BookingService) saveTicket(t models.Ticket) (models.Ticket, error) {
	if s.SaveTicket != nil {
		return s.SaveTicket(t)
	}
	return s.tickets().Insert(t)
}

// BookTicket reserves one seat on (tripID, tripDate) for the passenger.
// Outcomes: the ticket, NotFound (bad trip), ValidationError (bad date),
// SoldOut, or InternalError after the claimed seat has been given back.
func (s BookingService) BookTicket(tripID int64, tripDate string, passengerID int64) (models.Ticket, error) {
	var ticket models.Ticket

	sched, err := s.resolveSchedule(tripID, tripDate)
	if err != nil {
		return ticket, err
	}

	seat, err := s.claim(sched.ID)
	if err != nil {
		return ticket, err
	}

	ticket = models.Ticket{
		ScheduleID:  sched.ID,
		SeatNumber:  seat,
		PassengerID: passengerID,
		JourneyDate: sched.TripDate,
		Cancellable: false,
	}
	saved, err := s.saveTicket(ticket)
	if err != nil {
		s.compensateRelease(sched.ID)
		return ticket, domain.InternalError{Msg: "gagal menyimpan ticket", Err: err}
	}

	utils.LogEvent(s.RequestID, "booking", "book_ticket",
		fmt.Sprintf("ticket_id=%d schedule_id=%d seat=%d passenger_id=%d", saved.ID, sched.ID, seat, passengerID))
	return saved, nil
}

// compensateRelease gives the claimed seat back after a failed ticket write.
// The release is retried, the booking never is; the caller re-books from
// scratch on failure.
func (s BookingService) compensateRelease(scheduleID int64) {
	var err error
	for attempt := 1; attempt <= releaseRetries; attempt++ {
		if err = s.release(scheduleID); err == nil {
			return
		}
		if domain.IsUnderflow(err) || domain.IsNotFound(err) {
			break
		}
		time.Sleep(time.Duration(attempt) * 50 * time.Millisecond)
	}
	utils.LogEvent(s.RequestID, "booking", "compensate_failed",
		fmt.Sprintf("schedule_id=%d err=%v", scheduleID, err))
}

// TripAvailability pairs a trip with its remaining seats on a date.
type TripAvailability struct {
	Trip           models.Trip `json:"trip"`
	AvailableSeats int         `json:"available_seats"`
}

// Availability reports remaining seats for every trip between two stops on
// a date. Read-only: trips without a schedule yet report the full cab
// capacity and no schedule row is created for them.
func (s BookingService) Availability(sourceStopCode, destStopCode, tripDate string) ([]TripAvailability, error) {
	date, err := utils.NormalizeDate(tripDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "trip_date", Msg: err.Error()}
	}

	trips, err := s.Catalog.RoutesBetween(sourceStopCode, destStopCode)
	if err != nil {
		return nil, err
	}

	out := make([]TripAvailability, 0, len(trips))
	for _, trip := range trips {
		sched, err := s.Schedules.schedules().GetByTripDate(trip.ID, date)
		switch {
		case err == nil:
			out = append(out, TripAvailability{Trip: trip, AvailableSeats: sched.AvailableSeats()})
		case domain.IsNotFound(err):
			cab, err := s.Schedules.agencies().GetCabByID(trip.CabID)
			if err != nil {
				return nil, err
			}
			out = append(out, TripAvailability{Trip: trip, AvailableSeats: cab.Capacity})
		default:
			return nil, err
		}
	}
	return out, nil
}
