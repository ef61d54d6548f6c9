package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/internal/store"
	"github.com/MKhiriev/go-photo-annotator/models"
)

type historyService struct {
	repo store.HistoryRepository
	ids  IDGenerator
	now  func() time.Time

	logger *logger.Logger
}

func NewHistoryService(repo store.HistoryRepository, ids IDGenerator, logger *logger.Logger) HistoryService {
	return &historyService{
		repo:   repo,
		ids:    ids,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (h *historyService) RecordFolder(ctx context.Context, folder string) error {
	if folder == "" {
		return ErrNoFolder
	}

	now := h.now()
	err := h.repo.SaveSession(ctx, models.HistoryEntry{
		ID:        h.ids.Generate(),
		Folder:    folder,
		OpenedAt:  now,
		UpdatedAt: now,
	})
	if err != nil {
		h.logger.Err(err).Str("func", "historyService.RecordFolder").Str("folder", folder).Msg("failed to record folder")
		return fmt.Errorf("record folder: %w", err)
	}

	return nil
}

func (h *historyService) RecordDocument(ctx context.Context, folder, document string) error {
	if folder == "" {
		return ErrNoFolder
	}
	if document == "" {
		return ErrNoDocumentPath
	}

	now := h.now()
	err := h.repo.UpdateDocument(ctx, folder, document, now)
	if errors.Is(err, store.ErrNoHistory) {
		err = h.repo.SaveSession(ctx, models.HistoryEntry{
			ID:        h.ids.Generate(),
			Folder:    folder,
			Document:  document,
			OpenedAt:  now,
			UpdatedAt: now,
		})
	}
	if err != nil {
		h.logger.Err(err).
			Str("func", "historyService.RecordDocument").
			Str("folder", folder).
			Str("document", document).
			Msg("failed to record document")
		return fmt.Errorf("record document: %w", err)
	}

	return nil
}

func (h *historyService) Last(ctx context.Context) (models.HistoryEntry, error) {
	entry, err := h.repo.GetLastSession(ctx)
	if err != nil {
		return models.HistoryEntry{}, fmt.Errorf("last session: %w", err)
	}

	return entry, nil
}

func (h *historyService) LastDocument(ctx context.Context, folder string) (string, error) {
	entry, err := h.repo.GetSessionByFolder(ctx, folder)
	if errors.Is(err, store.ErrNoHistory) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("folder session: %w", err)
	}

	return entry.Document, nil
}
