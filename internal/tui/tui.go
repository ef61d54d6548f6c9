// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal user interface of the photo
// annotator on top of bubbletea.
//
// A single controller model owns the editing session. Folder and document
// I/O runs in commands and reports back through messages, so the session
// is only ever touched from the bubbletea update loop.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-photo-annotator/internal/config"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/internal/service"
	"github.com/MKhiriev/go-photo-annotator/models"
)

var ErrNilServices = errors.New("tui: services are nil")

type TUI struct {
	services  *service.Services
	opts      options
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, cfg *config.StructuredConfig, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNilServices
	}

	return &TUI{
		services: services,
		opts: options{
			startDir:            cfg.Pictures.StartDir,
			defaultDocumentName: cfg.Document.DefaultName,
			backupInterval:      cfg.Workers.BackupInterval,
			backupEnabled:       !cfg.Workers.BackupDisabled && cfg.Workers.BackupInterval > 0,
		},
		buildInfo: services.AppInfoService.GetBuildInfo(context.Background()),
		logger:    log,
	}, nil
}

// Run shows the annotator and blocks until the user quits or ctx is
// canceled.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services, t.opts, t.buildInfo, t.logger)

	_, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
