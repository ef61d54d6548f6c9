package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/models"
)

type historyRepository struct {
	*DB
	logger *logger.Logger
}

func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	return &historyRepository{
		DB:     db,
		logger: logger,
	}
}

func (h *historyRepository) SaveSession(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertSessionQuery(entry)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.SaveSession").Msg("failed to build upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = h.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "historyRepository.SaveSession").
			Str("folder", entry.Folder).
			Msg("failed to execute upsert for session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (h *historyRepository) UpdateDocument(ctx context.Context, folder, document string, at time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateDocumentQuery(folder, document, at)
	if err != nil {
		log.Err(err).Str("func", "historyRepository.UpdateDocument").Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := h.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "historyRepository.UpdateDocument").
			Str("folder", folder).
			Str("document", document).
			Msg("failed to execute document update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrNoHistory, folder)
	}

	return nil
}

func (h *historyRepository) GetLastSession(ctx context.Context) (models.HistoryEntry, error) {
	query, args, err := buildSelectLastSessionQuery()
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return h.getSession(ctx, "historyRepository.GetLastSession", query, args)
}

func (h *historyRepository) GetSessionByFolder(ctx context.Context, folder string) (models.HistoryEntry, error) {
	query, args, err := buildSelectSessionByFolderQuery(folder)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return h.getSession(ctx, "historyRepository.GetSessionByFolder", query, args)
}

func (h *historyRepository) getSession(ctx context.Context, funcName, query string, args []any) (models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	var entry models.HistoryEntry
	err := h.DB.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.Folder,
		&entry.Document,
		&entry.OpenedAt,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.HistoryEntry{}, ErrNoHistory
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to query session")
		return models.HistoryEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}
