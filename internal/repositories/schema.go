package repositories

import (
	"database/sql"

	intdb "wargameshc/internal/db"
)

// EnsureSchema creates the tables the API needs when they are missing.
// Deployments normally run migrations out of band; this keeps a fresh local
// database usable without them.
func EnsureSchema(db *sql.DB) error {
	if !intdb.HasTable(db, "bookings") {
		if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS bookings (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	reference VARCHAR(32) NOT NULL,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL,
	country VARCHAR(100) NOT NULL DEFAULT '',
	selected_event VARCHAR(100) NOT NULL DEFAULT '',
	selected_event_name VARCHAR(255) NOT NULL DEFAULT '',
	package_type VARCHAR(100) NOT NULL DEFAULT '',
	package_type_name VARCHAR(255) NOT NULL DEFAULT '',
	accommodation VARCHAR(100) NOT NULL DEFAULT '',
	accommodation_name VARCHAR(255) NOT NULL DEFAULT '',
	check_in VARCHAR(20) NOT NULL,
	check_out VARCHAR(20) NOT NULL,
	nights INT NOT NULL DEFAULT 0,
	adults INT NOT NULL DEFAULT 0,
	children INT NOT NULL DEFAULT 0,
	player_count INT NOT NULL DEFAULT 0,
	extras TEXT,
	special_requests TEXT,
	hear_about VARCHAR(255) NOT NULL DEFAULT '',
	currency VARCHAR(10) NOT NULL DEFAULT 'THB',
	players_total DOUBLE NOT NULL DEFAULT 0,
	companions_total DOUBLE NOT NULL DEFAULT 0,
	total_price DOUBLE NOT NULL DEFAULT 0,
	language VARCHAR(10) NOT NULL DEFAULT 'en',
	status VARCHAR(30) NOT NULL DEFAULT 'pending',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_reference (reference),
	KEY idx_status (status),
	KEY idx_created (created_at)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`); err != nil {
			return err
		}
	} else if !intdb.HasColumn(db, "bookings", "hear_about") {
		// hear_about arrived after early deployments; backfill the column.
		if _, err := db.Exec(`ALTER TABLE bookings ADD COLUMN hear_about VARCHAR(255) NOT NULL DEFAULT ''`); err != nil {
			return err
		}
	}

	if !intdb.HasTable(db, "booking_players") {
		if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS booking_players (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	number INT NOT NULL,
	first_name VARCHAR(255) NOT NULL,
	last_name VARCHAR(255) NOT NULL,
	age INT NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	email VARCHAR(255) NOT NULL DEFAULT '',
	UNIQUE KEY uniq_booking_number (booking_id, number),
	KEY idx_booking (booking_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`); err != nil {
			return err
		}
	}

	if !intdb.HasTable(db, "users") {
		if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS users (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	username VARCHAR(100) NOT NULL,
	email VARCHAR(255) NOT NULL,
	phone VARCHAR(100) NOT NULL DEFAULT '',
	password_hash VARCHAR(255) NOT NULL,
	role VARCHAR(30) NOT NULL DEFAULT 'staff',
	status VARCHAR(30) NOT NULL DEFAULT 'active',
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_username (username),
	UNIQUE KEY uniq_email (email)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`); err != nil {
			return err
		}
	}

	return nil
}
