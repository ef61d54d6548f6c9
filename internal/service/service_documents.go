package service

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/internal/document"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/models"
)

const backupSuffix = "-autosave" + document.Extension

type documentService struct {
	opener    adapter.DocumentOpener
	saver     adapter.DocumentSaver
	backupDir string

	logger *logger.Logger
}

func NewDocumentService(opener adapter.DocumentOpener, saver adapter.DocumentSaver, backupDir string, logger *logger.Logger) DocumentService {
	return &documentService{
		opener:    opener,
		saver:     saver,
		backupDir: backupDir,
		logger:    logger,
	}
}

func (d *documentService) Load(ctx context.Context, path string) (models.Metadata, error) {
	if path == "" {
		return nil, ErrNoDocumentPath
	}

	file, err := d.opener.Open(ctx, path)
	if err != nil {
		d.logger.Err(err).Str("func", "documentService.Load").Str("document", path).Msg("failed to open document")
		return nil, fmt.Errorf("open document: %w", err)
	}

	text, err := file.Text(ctx)
	if err != nil {
		d.logger.Err(err).Str("func", "documentService.Load").Str("document", path).Msg("failed to read document")
		return nil, fmt.Errorf("read document: %w", err)
	}

	metadata, err := document.Decode([]byte(text))
	if err != nil {
		d.logger.Err(err).Str("func", "documentService.Load").Str("document", path).Msg("failed to parse document")
		return nil, fmt.Errorf("parse %s: %w", file.Name(), err)
	}

	d.logger.Info().
		Str("func", "documentService.Load").
		Str("document", path).
		Int("records", len(metadata)).
		Msg("document loaded")

	return metadata, nil
}

func (d *documentService) Save(ctx context.Context, path string, m models.Metadata) (string, error) {
	if path == "" {
		return "", ErrNoDocumentPath
	}

	written, err := d.write(ctx, path, m)
	if err != nil {
		d.logger.Err(err).Str("func", "documentService.Save").Str("document", path).Msg("failed to save document")
		return "", err
	}

	d.logger.Info().
		Str("func", "documentService.Save").
		Str("document", written).
		Int("records", len(m)).
		Msg("document saved")

	return written, nil
}

func (d *documentService) Backup(ctx context.Context, folder string, m models.Metadata) (string, error) {
	if d.backupDir == "" {
		return "", ErrNoBackupDir
	}
	if folder == "" {
		return "", ErrNoFolder
	}

	path := filepath.Join(d.backupDir, filepath.Base(folder)+backupSuffix)
	written, err := d.write(ctx, path, m)
	if err != nil {
		d.logger.Err(err).Str("func", "documentService.Backup").Str("folder", folder).Msg("failed to write backup")
		return "", err
	}

	d.logger.Debug().
		Str("func", "documentService.Backup").
		Str("folder", folder).
		Str("document", written).
		Msg("backup written")

	return written, nil
}

// write encodes m and delivers it through a sink. A sink that failed to
// accept the data is not closed, so the destination stays untouched.
func (d *documentService) write(ctx context.Context, path string, m models.Metadata) (written string, err error) {
	data, err := document.Encode(m)
	if err != nil {
		return "", err
	}

	sink, err := d.saver.Create(ctx, path, adapter.JSONFilter)
	if err != nil {
		return "", fmt.Errorf("create document: %w", err)
	}

	if _, err = sink.Write(data); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	if err = sink.Close(); err != nil {
		return "", fmt.Errorf("finalize document: %w", err)
	}

	return sink.Path(), nil
}
