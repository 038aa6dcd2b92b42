package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
)

type StopRepo struct {
	DB *sql.DB
}

func (r StopRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StopRepo) GetByCode(code string) (models.Stop, error) {
	var s models.Stop
	err := r.db().QueryRow(`
		SELECT id, code, name, detail FROM stops WHERE code = ?
	`, strings.TrimSpace(code)).Scan(&s.ID, &s.Code, &s.Name, &s.Detail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.NotFoundError{Resource: "stop", Err: err}
		}
		return s, err
	}
	return s, nil
}

func (r StopRepo) GetByID(id int64) (models.Stop, error) {
	var s models.Stop
	err := r.db().QueryRow(`
		SELECT id, code, name, detail FROM stops WHERE id = ?
	`, id).Scan(&s.ID, &s.Code, &s.Name, &s.Detail)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return s, domain.NotFoundError{Resource: "stop", Err: err}
		}
		return s, err
	}
	return s, nil
}

func (r StopRepo) List() ([]models.Stop, error) {
	rows, err := r.db().Query(`SELECT id, code, name, detail FROM stops ORDER BY code ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Stop{}
	for rows.Next() {
		var s models.Stop
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Detail); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r StopRepo) Insert(s models.Stop) (models.Stop, error) {
	res, err := r.db().Exec(`
		INSERT INTO stops (code, name, detail) VALUES (?, ?, ?)
	`, strings.TrimSpace(s.Code), strings.TrimSpace(s.Name), strings.TrimSpace(s.Detail))
	if err != nil {
		return s, err
	}
	s.ID, err = res.LastInsertId()
	return s, err
}
