// Package repository implements the PostgreSQL storage for clients,
// providers, services, notification addresses and dashboard users.
package repository

import (
	"context"
	"database/sql"
	"fmt"

	// Register the pgx driver for database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Storage encapsulates the database connection.
type Storage struct {
	DB *sql.DB
}

// New opens a connection to PostgreSQL and pings it.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// CheckDatabaseReady reports whether the schema has been migrated.
func CheckDatabaseReady(storage *Storage) error {
	var exists bool
	err := storage.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'services'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table services missing or query error: %w", err)
	}
	return nil
}
