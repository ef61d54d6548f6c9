// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the filesystem collaborators the annotator talks
// to: a picture folder, a document opener and a document saver.
//
// The abstractions decouple the service layer from the operating system so
// that services can be tested with mocks. The package ships local
// filesystem implementations ([NewLocalFolder], [NewFileOpener],
// [NewAtomicSaver]).
//
// Error values defined in errors.go let callers use [errors.Is] regardless
// of the implementation (e.g. [ErrNotDirectory] for a folder path that is a
// regular file).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-photo-annotator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// FolderOpener resolves a path chosen by the user into a [Folder].
type FolderOpener interface {
	// OpenFolder returns the folder at path. Returns [ErrNotDirectory]
	// (wrapped) if path exists but is not a directory.
	OpenFolder(ctx context.Context, path string) (Folder, error)
}

// Folder is a picture folder selected by the user.
type Folder interface {
	// Path returns the folder location as chosen by the user.
	Path() string

	// Entries lists the regular files of the folder in no particular
	// order. Subdirectories are not included.
	Entries(ctx context.Context) ([]Entry, error)
}

// Entry is one file inside a [Folder].
type Entry interface {
	// Name returns the base filename.
	Name() string

	// Content returns the picture reference for the entry. The image bytes
	// are never read.
	Content(ctx context.Context) (models.Picture, error)
}

// DocumentOpener opens metadata documents chosen by the user.
type DocumentOpener interface {
	// Open returns a handle to the document at path. Returns
	// [ErrUnsupportedType] (wrapped) if the path does not pass the opener's
	// type filter.
	Open(ctx context.Context, path string) (DocumentFile, error)
}

// DocumentFile is an opened metadata document.
type DocumentFile interface {
	// Name returns the base filename of the document.
	Name() string

	// Path returns the full location of the document.
	Path() string

	// Text returns the full document content.
	Text(ctx context.Context) (string, error)
}

// DocumentSaver creates writable destinations for metadata documents.
type DocumentSaver interface {
	// Create returns a sink for path. The filter's first extension is
	// appended to path when path matches none of the filter's extensions.
	// Nothing is written to disk until the sink is closed.
	Create(ctx context.Context, path string, filter TypeFilter) (Sink, error)
}

// Sink receives the serialized document. Close must be called to finalize
// the write; a sink that is never closed leaves the destination untouched.
type Sink interface {
	io.Writer
	io.Closer

	// Path returns the final destination, including any appended
	// extension.
	Path() string
}
