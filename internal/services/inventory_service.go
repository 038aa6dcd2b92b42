package services

import (
	"database/sql"
	"fmt"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/repositories"
	"brs-backend/internal/utils"
)

// InventoryService allocates and releases seats on one schedule. The real
// serialization lives in the conditional UPDATE statements of ScheduleRepo;
// this layer adds logging and the seat-numbering contract.
type InventoryService struct {
	ScheduleRepo repositories.ScheduleRepo
	DB           *sql.DB
	RequestID    string
}

func (s InventoryService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s InventoryService) schedules() repositories.ScheduleRepo {
	if s.ScheduleRepo.DB != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepo{DB: s.db()}
}

// ClaimSeat reserves one seat and returns its 0-indexed ordinal: the value
// of seats_claimed just before the increment. Ordinals are dense, monotonic
// per schedule, and never reused after a release.
func (s InventoryService) ClaimSeat(scheduleID int64) (int, error) {
	seat, err := s.schedules().Claim(scheduleID)
	if err != nil {
		if domain.IsSoldOut(err) {
			utils.LogEvent(s.RequestID, "inventory", "claim_sold_out",
				fmt.Sprintf("schedule_id=%d", scheduleID))
		}
		return 0, err
	}
	utils.LogEvent(s.RequestID, "inventory", "claim",
		fmt.Sprintf("schedule_id=%d seat=%d", scheduleID, seat))
	return seat, nil
}

// ReleaseSeat gives one seat back. An underflow means somebody released a
// seat twice; log it loudly and surface the error.
func (s InventoryService) ReleaseSeat(scheduleID int64) error {
	if err := s.schedules().Release(scheduleID); err != nil {
		if domain.IsUnderflow(err) {
			utils.LogEvent(s.RequestID, "inventory", "release_underflow",
				fmt.Sprintf("schedule_id=%d", scheduleID))
		}
		return err
	}
	utils.LogEvent(s.RequestID, "inventory", "release",
		fmt.Sprintf("schedule_id=%d", scheduleID))
	return nil
}

// AvailableSeats reads capacity minus claimed for the latest committed state.
func (s InventoryService) AvailableSeats(scheduleID int64) (int, error) {
	sched, err := s.schedules().GetByID(scheduleID)
	if err != nil {
		return 0, err
	}
	return sched.AvailableSeats(), nil
}
