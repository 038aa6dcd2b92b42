package repositories

import (
	"database/sql"
	"errors"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
)

type ScheduleRepo struct {
	DB *sql.DB
}

func (r ScheduleRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Upsert creates the (trip_id, trip_date) row with zero claimed seats, or
// returns the id of the existing one. The uniq_trip_date key plus
// LAST_INSERT_ID(id) make this a single atomic create-or-discover step:
// concurrent callers all receive the surviving row's id. Capacity is only
// written on insert, so the frozen value never tracks later cab edits.
func (r ScheduleRepo) Upsert(tripID int64, tripDate string, capacity int) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO trip_schedules (trip_id, trip_date, capacity, seats_claimed)
		VALUES (?, ?, ?, 0)
		ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id)
	`, tripID, tripDate, capacity)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal menyimpan trip schedule", Err: err}
	}
	return res.LastInsertId()
}

func (r ScheduleRepo) GetByID(id int64) (models.TripSchedule, error) {
	var s models.TripSchedule
	err := r.db().QueryRow(`
		SELECT id, trip_id, trip_date, capacity, seats_claimed
		FROM trip_schedules
		WHERE id = ?
	`, id).Scan(&s.ID, &s.TripID, &s.TripDate, &s.Capacity, &s.SeatsClaimed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.NotFoundError{Resource: "trip schedule", Err: err}
		}
		return s, err
	}
	return s, nil
}

func (r ScheduleRepo) GetByTripDate(tripID int64, tripDate string) (models.TripSchedule, error) {
	var s models.TripSchedule
	err := r.db().QueryRow(`
		SELECT id, trip_id, trip_date, capacity, seats_claimed
		FROM trip_schedules
		WHERE trip_id = ? AND trip_date = ?
	`, tripID, tripDate).Scan(&s.ID, &s.TripID, &s.TripDate, &s.Capacity, &s.SeatsClaimed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.NotFoundError{Resource: "trip schedule", Err: err}
		}
		return s, err
	}
	return s, nil
}

// Claim is the check-and-increment. The WHERE clause guards capacity and the
// LAST_INSERT_ID(seats_claimed) trick rides the pre-increment count back on
// the OK packet, so the assigned seat ordinal needs no second query and no
// read-modify-write window exists. Zero rows affected means either the row
// is gone or the schedule is full; one follow-up read tells which.
func (r ScheduleRepo) Claim(scheduleID int64) (int, error) {
	res, err := r.db().Exec(`
		UPDATE trip_schedules
		SET seats_claimed = LAST_INSERT_ID(seats_claimed) + 1
		WHERE id = ? AND seats_claimed < capacity
	`, scheduleID)
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal klaim seat", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal klaim seat", Err: err}
	}
	if affected == 0 {
		if _, err := r.GetByID(scheduleID); err != nil {
			return 0, err
		}
		return 0, domain.SoldOutError{ScheduleID: scheduleID}
	}
	seat, err := res.LastInsertId()
	if err != nil {
		return 0, domain.InternalError{Msg: "gagal membaca nomor seat", Err: err}
	}
	return int(seat), nil
}

// Release is the mirrored guarded decrement. A no-op on a zero-count row is
// an UnderflowError: a double release is a bug upstream, not a state to
// absorb silently.
func (r ScheduleRepo) Release(scheduleID int64) error {
	res, err := r.db().Exec(`
		UPDATE trip_schedules
		SET seats_claimed = seats_claimed - 1
		WHERE id = ? AND seats_claimed > 0
	`, scheduleID)
	if err != nil {
		return domain.InternalError{Msg: "gagal release seat", Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Msg: "gagal release seat", Err: err}
	}
	if affected == 0 {
		if _, err := r.GetByID(scheduleID); err != nil {
			return err
		}
		return domain.UnderflowError{ScheduleID: scheduleID}
	}
	return nil
}
