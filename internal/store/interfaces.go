// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-photo-annotator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HistoryRepository persists which folders were annotated and which
// document was last used with each of them.
type HistoryRepository interface {
	// SaveSession inserts entry or, if entry.Folder is already known,
	// refreshes its timestamps. An empty entry.Document keeps the stored
	// document path.
	SaveSession(ctx context.Context, entry models.HistoryEntry) error

	// UpdateDocument records document as the last document used with
	// folder. Returns [ErrNoHistory] if folder has no entry.
	UpdateDocument(ctx context.Context, folder, document string, at time.Time) error

	// GetLastSession returns the most recently updated entry. Returns
	// [ErrNoHistory] if there are none.
	GetLastSession(ctx context.Context) (models.HistoryEntry, error)

	// GetSessionByFolder returns the entry for folder. Returns
	// [ErrNoHistory] if there is none.
	GetSessionByFolder(ctx context.Context, folder string) (models.HistoryEntry, error)
}
