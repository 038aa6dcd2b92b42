package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "brs-backend/internal/config"
	"brs-backend/internal/domain"
	"brs-backend/internal/domain/models"
)

type UserRepo struct {
	DB *sql.DB
}

func (r UserRepo) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r UserRepo) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, role FROM users WHERE id = ?
	`, id).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, err
	}
	return u, nil
}

// GetByEmail also returns the stored bcrypt hash for login verification.
func (r UserRepo) GetByEmail(email string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, name, email, phone, role, password_hash FROM users WHERE email = ?
	`, strings.TrimSpace(email)).Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return u, "", domain.NotFoundError{Resource: "user", Err: err}
		}
		return u, "", err
	}
	return u, hash, nil
}

func (r UserRepo) Insert(u models.User, passwordHash string) (models.User, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, email, phone, password_hash, role)
		VALUES (?, ?, ?, ?, ?)
	`, strings.TrimSpace(u.Name), strings.TrimSpace(u.Email), strings.TrimSpace(u.Phone), passwordHash, u.Role)
	if err != nil {
		return u, err
	}
	u.ID, err = res.LastInsertId()
	return u, err
}
