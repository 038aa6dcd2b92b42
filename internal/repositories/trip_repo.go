package repositories

import (
	"database/sql"
	"errors"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
)

type TripRepo struct {
	DB *sql.DB
}

func (r TripRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const tripColumns = `id, fare, journey_time, source_stop_id, dest_stop_id, cab_id, agency_id`

func scanTrip(row interface{ Scan(...any) error }) (models.Trip, error) {
	var t models.Trip
	err := row.Scan(&t.ID, &t.Fare, &t.JourneyTime, &t.SourceStopID, &t.DestStopID, &t.CabID, &t.AgencyID)
	return t, err
}

func (r TripRepo) GetByID(id int64) (models.Trip, error) {
	t, err := scanTrip(r.db().QueryRow(`SELECT `+tripColumns+` FROM trips WHERE id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return t, domain.NotFoundError{Resource: "trip", Err: err}
		}
		return t, err
	}
	return t, nil
}

func (r TripRepo) ListBetween(sourceStopID, destStopID int64) ([]models.Trip, error) {
	rows, err := r.db().Query(`
		SELECT `+tripColumns+` FROM trips
		WHERE source_stop_id = ? AND dest_stop_id = ?
		ORDER BY id ASC
	`, sourceStopID, destStopID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TripRepo) ListByAgency(agencyID int64) ([]models.Trip, error) {
	rows, err := r.db().Query(`
		SELECT `+tripColumns+` FROM trips WHERE agency_id = ? ORDER BY id ASC
	`, agencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return out, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// InsertPair persists the to-trip and the fro-trip in one transaction.
// Neither direction is visible unless both inserts commit.
func (r TripRepo) InsertPair(to, fro models.Trip) (models.Trip, models.Trip, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return to, fro, domain.InternalError{Msg: "gagal mulai transaksi trip", Err: err}
	}

	insert := func(t models.Trip) (models.Trip, error) {
		res, err := tx.Exec(`
			INSERT INTO trips (fare, journey_time, source_stop_id, dest_stop_id, cab_id, agency_id)
			VALUES (?, ?, ?, ?, ?, ?)
		`, t.Fare, t.JourneyTime, t.SourceStopID, t.DestStopID, t.CabID, t.AgencyID)
		if err != nil {
			return t, err
		}
		t.ID, err = res.LastInsertId()
		return t, err
	}

	if to, err = insert(to); err != nil {
		_ = tx.Rollback()
		return to, fro, domain.InternalError{Msg: "gagal menyimpan trip", Err: err}
	}
	if fro, err = insert(fro); err != nil {
		_ = tx.Rollback()
		return to, fro, domain.InternalError{Msg: "gagal menyimpan trip balik", Err: err}
	}
	if err := tx.Commit(); err != nil {
		return to, fro, domain.InternalError{Msg: "gagal commit trip", Err: err}
	}
	return to, fro, nil
}
