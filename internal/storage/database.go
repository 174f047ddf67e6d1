package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Registers the sqlite driver
)

// DB represents a wrapper around the SQL database connection.
type DB struct {
	conn *sql.DB
}

// Open creates a new database connection and ensures the schema is up to date.
func Open(dsn string) (*DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Execute the schema to create tables if they don't exist.
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{conn: db}, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// SaveColumnKeys replaces the stored column selection for kind.
// Keys are stored verbatim, including ones this version does not know.
func (db *DB) SaveColumnKeys(ctx context.Context, kind string, keys []string) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for %s columns: %w", kind, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM active_columns WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("failed to clear %s columns: %w", kind, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO active_columns (kind, position, column_key)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert for %s columns: %w", kind, err)
	}
	defer stmt.Close()

	for i, key := range keys {
		if _, err := stmt.ExecContext(ctx, kind, i, key); err != nil {
			return fmt.Errorf("failed to insert %s column %q: %w", kind, key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s columns: %w", kind, err)
	}
	return nil
}

// LoadColumnKeys returns the stored selection for kind in display order, or
// nil when none was saved.
func (db *DB) LoadColumnKeys(ctx context.Context, kind string) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT column_key
		FROM active_columns
		WHERE kind = ?
		ORDER BY position
	`, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s columns: %w", kind, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("failed to scan %s column row: %w", kind, err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s columns: %w", kind, err)
	}
	return keys, nil
}

// ClearColumnKeys removes the stored selection for kind.
func (db *DB) ClearColumnKeys(ctx context.Context, kind string) error {
	if _, err := db.conn.ExecContext(ctx, `DELETE FROM active_columns WHERE kind = ?`, kind); err != nil {
		return fmt.Errorf("failed to clear %s columns: %w", kind, err)
	}
	return nil
}
