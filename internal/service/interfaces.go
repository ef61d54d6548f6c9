// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PictureService discovers the pictures of a folder.
type PictureService interface {
	// Open resolves a user-chosen path into a folder.
	Open(ctx context.Context, path string) (adapter.Folder, error)

	// Load lists the pictures of folder: entries whose name ends in the
	// configured extension (exact, case-sensitive), sorted ascending by
	// name using byte order. An empty folder yields an empty list. If any
	// entry's content cannot be obtained the whole load fails.
	Load(ctx context.Context, folder adapter.Folder) ([]models.Picture, error)
}

// DocumentService reads and writes metadata documents.
type DocumentService interface {
	// Load reads and parses the document at path. The returned store is
	// complete; on any error no store is returned.
	Load(ctx context.Context, path string) (models.Metadata, error)

	// Save serializes metadata and writes it to path with the JSON type filter.
	// Returns the final path, which gains a ".json" suffix if it had none.
	Save(ctx context.Context, path string, metadata models.Metadata) (string, error)

	// Backup writes metadata as a recovery snapshot for folder into the backup
	// directory and returns the snapshot path.
	Backup(ctx context.Context, folder string, metadata models.Metadata) (string, error)
}

// HistoryService remembers recently annotated folders and their documents.
type HistoryService interface {
	// RecordFolder marks folder as opened now.
	RecordFolder(ctx context.Context, folder string) error

	// RecordDocument marks document as the last document used with folder.
	RecordDocument(ctx context.Context, folder, document string) error

	// Last returns the most recently used folder entry. Returns
	// [store.ErrNoHistory] (wrapped) if there is none.
	Last(ctx context.Context) (models.HistoryEntry, error)

	// LastDocument returns the document last used with folder, or an
	// empty string if none is known.
	LastDocument(ctx context.Context, folder string) (string, error)
}

// AppInfoService reports the build the binary was produced from.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// IDGenerator produces unique identifiers for history entries.
type IDGenerator interface {
	Generate() string
}
