package services

import (
	"database/sql"
	"fmt"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
	"brs-backend/internal/repositories"
	"brs-backend/internal/utils"
)

// ScheduleService owns the dated instances of trips. At most one schedule
// row exists per (trip, date); creation and discovery are a single upsert.
type ScheduleService struct {
	TripRepo     repositories.TripRepo
	AgencyRepo   repositories.AgencyRepo
	ScheduleRepo repositories.ScheduleRepo
	DB           *sql.DB
	RequestID    string
}

func (s ScheduleService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s ScheduleService) trips() repositories.TripRepo {
	if s.TripRepo.DB != nil {
		return s.TripRepo
	}
	return repositories.TripRepo{DB: s.db()}
}

func (s ScheduleService) agencies() repositories.AgencyRepo {
	if s.AgencyRepo.DB != nil {
		return s.AgencyRepo
	}
	return repositories.AgencyRepo{DB: s.db()}
}

func (s ScheduleService) schedules() repositories.ScheduleRepo {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepo{DB: s.db()}
}

// GetOrCreate resolves the schedule for (tripID, tripDate), creating it with
// the cab's current capacity when absent. Safe to call repeatedly and from
// concurrent requests: losers of a creation race receive the winner's row.
func (s ScheduleService) GetOrCreate(tripID int64, tripDate string) (models.TripSchedule, error) {
	var sched models.TripSchedule

	date, err := utils.NormalizeDate(tripDate)
	if err != nil {
		return sched, domain.ValidationError{Field: "trip_date", Msg: err.Error()}
	}

	trip, err := s.trips().GetByID(tripID)
	if err != nil {
		return sched, err
	}
	cab, err := s.agencies().GetCabByID(trip.CabID)
	if err != nil {
		return sched, err
	}

	id, err := s.schedules().Upsert(trip.ID, date, cab.Capacity)
	if err != nil {
		return sched, err
	}

	sched, err = s.schedules().GetByID(id)
	if err != nil {
		return sched, err
	}

	utils.LogEvent(s.RequestID, "schedule", "get_or_create",
		fmt.Sprintf("schedule_id=%d trip_id=%d date=%s", sched.ID, trip.ID, date))
	return sched, nil
}

// Get is the non-creating variant for pure availability reads.
func (s ScheduleService) Get(tripID int64, tripDate string) (models.TripSchedule, error) {
	var sched models.TripSchedule

	date, err := utils.NormalizeDate(tripDate)
	if err != nil {
		return sched, domain.ValidationError{Field: "trip_date", Msg: err.Error()}
	}
	if _, err := s.trips().GetByID(tripID); err != nil {
		return sched, err
	}
	return s.schedules().GetByTripDate(tripID, date)
}
