package database

import (
	"context"
	"database/sql"
	"fmt"
)

// EnsureSchema creates the catalog tables when they do not exist yet. The
// statements are idempotent and ordered parent-first so the join table can
// declare its foreign keys.
//
// The unique indexes on suites.name, amenities.name and users.email are the
// final authority for uniqueness: the application-level checks are only a
// fast path with a friendlier error, and a racing insert still fails here
// with a duplicate-key error. The join table cascades on both foreign keys
// so the store can never hold a link to a deleted parent, even though the
// repositories also remove links explicitly inside their delete
// transactions.
//
// Name and email comparisons are case-insensitive because the columns use
// the server default utf8mb4 *_ci collation.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS suites (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(50) NOT NULL,
			details TEXT NULL,
			rate DECIMAL(10,2) NOT NULL DEFAULT 0,
			sqft INT NOT NULL DEFAULT 0,
			occupancy INT NOT NULL DEFAULT 0,
			image_url VARCHAR(500) NULL,
			created_date DATETIME NOT NULL,
			updated_date DATETIME NULL,
			UNIQUE KEY uq_suites_name (name)
		)`,
		`CREATE TABLE IF NOT EXISTS amenities (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			description TEXT NULL,
			created_date DATETIME NOT NULL,
			updated_date DATETIME NULL,
			UNIQUE KEY uq_amenities_name (name)
		)`,
		`CREATE TABLE IF NOT EXISTS suite_amenities (
			suite_id INT NOT NULL,
			amenity_id INT NOT NULL,
			created_date DATETIME NOT NULL,
			PRIMARY KEY (suite_id, amenity_id),
			CONSTRAINT fk_sa_suite FOREIGN KEY (suite_id)
				REFERENCES suites (id) ON DELETE CASCADE,
			CONSTRAINT fk_sa_amenity FOREIGN KEY (amenity_id)
				REFERENCES amenities (id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			email VARCHAR(255) NOT NULL,
			name VARCHAR(100) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'Customer',
			created_date DATETIME NOT NULL,
			UNIQUE KEY uq_users_email (email)
		)`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
