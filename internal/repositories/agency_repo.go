package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
)

type AgencyRepo struct {
	DB *sql.DB
}

func (r AgencyRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AgencyRepo) GetByCode(code string) (models.Agency, error) {
	var a models.Agency
	err := r.db().QueryRow(`
		SELECT id, code, name, details, owner_id FROM agencies WHERE code = ?
	`, strings.TrimSpace(code)).Scan(&a.ID, &a.Code, &a.Name, &a.Details, &a.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.NotFoundError{Resource: "agency", Err: err}
		}
		return a, err
	}
	return a, nil
}

func (r AgencyRepo) GetByID(id int64) (models.Agency, error) {
	var a models.Agency
	err := r.db().QueryRow(`
		SELECT id, code, name, details, owner_id FROM agencies WHERE id = ?
	`, id).Scan(&a.ID, &a.Code, &a.Name, &a.Details, &a.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.NotFoundError{Resource: "agency", Err: err}
		}
		return a, err
	}
	return a, nil
}

func (r AgencyRepo) GetByName(name string) (models.Agency, error) {
	var a models.Agency
	err := r.db().QueryRow(`
		SELECT id, code, name, details, owner_id FROM agencies WHERE name = ?
	`, strings.TrimSpace(name)).Scan(&a.ID, &a.Code, &a.Name, &a.Details, &a.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.NotFoundError{Resource: "agency", Err: err}
		}
		return a, err
	}
	return a, nil
}

func (r AgencyRepo) Insert(a models.Agency) (models.Agency, error) {
	res, err := r.db().Exec(`
		INSERT INTO agencies (code, name, details, owner_id) VALUES (?, ?, ?, ?)
	`, a.Code, strings.TrimSpace(a.Name), strings.TrimSpace(a.Details), a.OwnerID)
	if err != nil {
		return a, err
	}
	a.ID, err = res.LastInsertId()
	return a, err
}

func (r AgencyRepo) GetCabByCode(code string) (models.Cab, error) {
	var c models.Cab
	err := r.db().QueryRow(`
		SELECT id, code, capacity, make, agency_id FROM cabs WHERE code = ?
	`, strings.TrimSpace(code)).Scan(&c.ID, &c.Code, &c.Capacity, &c.Make, &c.AgencyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "cab", Err: err}
		}
		return c, err
	}
	return c, nil
}

func (r AgencyRepo) GetCabByID(id int64) (models.Cab, error) {
	var c models.Cab
	err := r.db().QueryRow(`
		SELECT id, code, capacity, make, agency_id FROM cabs WHERE id = ?
	`, id).Scan(&c.ID, &c.Code, &c.Capacity, &c.Make, &c.AgencyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c, domain.NotFoundError{Resource: "cab", Err: err}
		}
		return c, err
	}
	return c, nil
}

func (r AgencyRepo) InsertCab(c models.Cab) (models.Cab, error) {
	res, err := r.db().Exec(`
		INSERT INTO cabs (code, capacity, make, agency_id) VALUES (?, ?, ?, ?)
	`, strings.TrimSpace(c.Code), c.Capacity, strings.TrimSpace(c.Make), c.AgencyID)
	if err != nil {
		return c, err
	}
	c.ID, err = res.LastInsertId()
	return c, err
}
