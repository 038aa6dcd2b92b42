package db

import "database/sql"

// EnsureSchema creates all tables the engine relies on. The unique key
// uniq_trip_date on trip_schedules is what makes get-or-create race-free:
// concurrent creators collapse onto a single row at the storage layer.
func EnsureSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			phone VARCHAR(100) NOT NULL DEFAULT '',
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'user',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS stops (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			detail VARCHAR(500) NOT NULL DEFAULT '',
			UNIQUE KEY uniq_code (code)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS agencies (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(50) NOT NULL,
			name VARCHAR(255) NOT NULL,
			details VARCHAR(500) NOT NULL DEFAULT '',
			owner_id BIGINT NOT NULL,
			UNIQUE KEY uniq_code (code),
			UNIQUE KEY uniq_name (name)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS cabs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			code VARCHAR(50) NOT NULL,
			capacity INT NOT NULL,
			make VARCHAR(255) NOT NULL DEFAULT '',
			agency_id BIGINT NOT NULL,
			UNIQUE KEY uniq_code (code),
			KEY idx_agency (agency_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS trips (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			fare BIGINT NOT NULL,
			journey_time INT NOT NULL,
			source_stop_id BIGINT NOT NULL,
			dest_stop_id BIGINT NOT NULL,
			cab_id BIGINT NOT NULL,
			agency_id BIGINT NOT NULL,
			KEY idx_stops (source_stop_id, dest_stop_id),
			KEY idx_agency (agency_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS trip_schedules (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			trip_id BIGINT NOT NULL,
			trip_date VARCHAR(10) NOT NULL,
			capacity INT NOT NULL,
			seats_claimed INT NOT NULL DEFAULT 0,
			UNIQUE KEY uniq_trip_date (trip_id, trip_date)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,

		`CREATE TABLE IF NOT EXISTS tickets (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			schedule_id BIGINT NOT NULL,
			seat_number INT NOT NULL,
			passenger_id BIGINT NOT NULL,
			journey_date VARCHAR(10) NOT NULL,
			cancellable TINYINT(1) NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			KEY idx_passenger (passenger_id),
			KEY idx_schedule (schedule_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`,
	}

	for _, ddl := range stmts {
		if _, err := db.Exec(ddl); err != nil {
			return err
		}
	}
	return nil
}
