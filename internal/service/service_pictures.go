package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/models"
)

type pictureService struct {
	folders   adapter.FolderOpener
	extension string

	logger *logger.Logger
}

func NewPictureService(folders adapter.FolderOpener, extension string, logger *logger.Logger) PictureService {
	return &pictureService{
		folders:   folders,
		extension: extension,
		logger:    logger,
	}
}

func (p *pictureService) Open(ctx context.Context, path string) (adapter.Folder, error) {
	if path == "" {
		return nil, ErrNoFolder
	}

	folder, err := p.folders.OpenFolder(ctx, path)
	if err != nil {
		p.logger.Err(err).Str("func", "pictureService.Open").Str("folder", path).Msg("failed to open folder")
		return nil, fmt.Errorf("open folder: %w", err)
	}

	return folder, nil
}

func (p *pictureService) Load(ctx context.Context, folder adapter.Folder) ([]models.Picture, error) {
	if folder == nil {
		return nil, ErrNoFolder
	}

	entries, err := folder.Entries(ctx)
	if err != nil {
		p.logger.Err(err).Str("func", "pictureService.Load").Str("folder", folder.Path()).Msg("failed to list folder")
		return nil, fmt.Errorf("list folder: %w", err)
	}

	pictures := make([]models.Picture, 0, len(entries))
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), p.extension) {
			continue
		}

		pic, err := entry.Content(ctx)
		if err != nil {
			p.logger.Err(err).
				Str("func", "pictureService.Load").
				Str("folder", folder.Path()).
				Str("picture", entry.Name()).
				Msg("failed to get picture content")
			return nil, fmt.Errorf("get content of %s: %w", entry.Name(), err)
		}
		pic.Name = entry.Name()
		pictures = append(pictures, pic)
	}

	slices.SortFunc(pictures, func(a, b models.Picture) int {
		return strings.Compare(a.Name, b.Name)
	})

	p.logger.Info().
		Str("func", "pictureService.Load").
		Str("folder", folder.Path()).
		Int("pictures", len(pictures)).
		Int("entries", len(entries)).
		Msg("folder loaded")

	return pictures, nil
}
