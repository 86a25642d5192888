package sqlite

import (
	"database/sql"
	"fmt"

	"vocabook/internal/domain"

	_ "modernc.org/sqlite"
)

// EntryRepo implements repository.EntryArchive
type EntryRepo struct {
	db *sql.DB
}

// Open opens (or creates) the archive database at path and ensures its schema
func Open(path string) (*EntryRepo, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	repo := NewEntryRepo(db)
	if err := repo.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to prepare archive: %w", err)
	}

	return repo, nil
}

// NewEntryRepo creates a new entry repository
func NewEntryRepo(db *sql.DB) *EntryRepo {
	return &EntryRepo{db: db}
}

// Migrate creates the entries table if it does not exist
func (r *EntryRepo) Migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS entries (
			position    INTEGER PRIMARY KEY,
			word        TEXT NOT NULL,
			translation TEXT NOT NULL
		)
	`
	_, err := r.db.Exec(query)
	return err
}

// SaveAll replaces the archived entries with the given ones
func (r *EntryRepo) SaveAll(entries []domain.Entry) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		tx.Rollback()
		return err
	}

	query := `
		INSERT INTO entries (position, word, translation)
		VALUES (?, ?, ?)
	`
	for i, e := range entries {
		if _, err := tx.Exec(query, i, e.Word, e.Translation); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to archive %q: %w", e.Word, err)
		}
	}

	return tx.Commit()
}

// LoadAll returns the archived entries in their original order
func (r *EntryRepo) LoadAll() ([]domain.Entry, error) {
	query := `
		SELECT word, translation
		FROM entries
		ORDER BY position
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		if err := rows.Scan(&e.Word, &e.Translation); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the underlying database
func (r *EntryRepo) Close() error {
	return r.db.Close()
}
