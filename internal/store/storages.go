package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-annotator/internal/config"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// History is the SQLite-backed repository of recently annotated
	// folders and their documents.
	History HistoryRepository

	db *DB
}

// NewStorages initialises the storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh
//     [HistoryRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		History: NewHistoryRepository(db, logger),
		db:      db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
