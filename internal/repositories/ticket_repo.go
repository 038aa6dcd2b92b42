package repositories

import (
	"database/sql"
	"errors"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
)

// TicketRepo is append-only: tickets get an id on insert and are never
// updated afterwards.
type TicketRepo struct {
	DB *sql.DB
}

func (r TicketRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r TicketRepo) Insert(t models.Ticket) (models.Ticket, error) {
	res, err := r.db().Exec(`
		INSERT INTO tickets (schedule_id, seat_number, passenger_id, journey_date, cancellable)
		VALUES (?, ?, ?, ?, ?)
	`, t.ScheduleID, t.SeatNumber, t.PassengerID, t.JourneyDate, t.Cancellable)
	if err != nil {
		return t, domain.InternalError{Msg: "gagal menyimpan ticket", Err: err}
	}
	t.ID, err = res.LastInsertId()
	return t, err
}

func (r TicketRepo) GetByID(id int64) (models.Ticket, error) {
	var t models.Ticket
	err := r.db().QueryRow(`
		SELECT id, schedule_id, seat_number, passenger_id, journey_date, cancellable
		FROM tickets WHERE id = ?
	`, id).Scan(&t.ID, &t.ScheduleID, &t.SeatNumber, &t.PassengerID, &t.JourneyDate, &t.Cancellable)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return t, err
	}
	return t, nil
}

func (r TicketRepo) ListByPassenger(passengerID int64) ([]models.Ticket, error) {
	rows, err := r.db().Query(`
		SELECT id, schedule_id, seat_number, passenger_id, journey_date, cancellable
		FROM tickets WHERE passenger_id = ? ORDER BY id ASC
	`, passengerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		if err := rows.Scan(&t.ID, &t.ScheduleID, &t.SeatNumber, &t.PassengerID, &t.JourneyDate, &t.Cancellable); err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
