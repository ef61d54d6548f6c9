// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-photo-annotator/models"
)

// LocalFolders opens folders on the local filesystem.
type LocalFolders struct{}

// NewLocalFolders returns a [FolderOpener] backed by the local filesystem.
func NewLocalFolders() *LocalFolders {
	return &LocalFolders{}
}

func (l *LocalFolders) OpenFolder(ctx context.Context, path string) (Folder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return NewLocalFolder(path)
}

// LocalFolder is a [Folder] on the local filesystem.
type LocalFolder struct {
	path string
}

// NewLocalFolder returns the folder at path. The path is made absolute.
func NewLocalFolder(path string) (*LocalFolder, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving folder path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("error opening folder: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, abs)
	}

	return &LocalFolder{path: abs}, nil
}

func (f *LocalFolder) Path() string {
	return f.path
}

func (f *LocalFolder) Entries(ctx context.Context) ([]Entry, error) {
	dirEntries, err := os.ReadDir(f.path)
	if err != nil {
		return nil, fmt.Errorf("error reading folder: %w", err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry := &localEntry{dir: f.path, entry: de}
		switch {
		case de.Type().IsRegular():
		case de.Type()&fs.ModeSymlink != 0:
			// Symlinks count when they resolve to a regular file.
			info, err := os.Stat(filepath.Join(f.path, de.Name()))
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			entry.target = info
		default:
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

type localEntry struct {
	dir   string
	entry fs.DirEntry

	// target is the resolved file of a symlink entry.
	target fs.FileInfo
}

func (e *localEntry) Name() string {
	return e.entry.Name()
}

func (e *localEntry) Content(ctx context.Context) (models.Picture, error) {
	if err := ctx.Err(); err != nil {
		return models.Picture{}, err
	}

	info := e.target
	if info == nil {
		var err error
		if info, err = e.entry.Info(); err != nil {
			return models.Picture{}, fmt.Errorf("error reading %s: %w", e.entry.Name(), err)
		}
	}

	return models.Picture{
		Name:    e.entry.Name(),
		Path:    filepath.Join(e.dir, e.entry.Name()),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// FileOpener opens documents from the local filesystem.
type FileOpener struct {
	filter TypeFilter
}

// NewFileOpener returns a [DocumentOpener] that only opens files accepted
// by filter.
func NewFileOpener(filter TypeFilter) *FileOpener {
	return &FileOpener{filter: filter}
}

func (o *FileOpener) Open(ctx context.Context, path string) (DocumentFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !o.filter.Accepts(path) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, filepath.Base(path))
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error opening document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrUnsupportedType, filepath.Base(path))
	}

	return &localFile{path: path}, nil
}

type localFile struct {
	path string
}

func (f *localFile) Name() string {
	return filepath.Base(f.path)
}

func (f *localFile) Path() string {
	return f.path
}

func (f *localFile) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return "", fmt.Errorf("error reading document: %w", err)
	}

	return string(data), nil
}
