package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-photo-annotator/internal/logger"
)

var ErrNilUI = errors.New("client: ui is nil")

type App struct {
	ui      UI
	closers []io.Closer
	logger  *logger.Logger
}

// NewApp returns an [App] running ui. Every closer is closed after the UI
// exits, in order.
func NewApp(ui UI, log *logger.Logger, closers ...io.Closer) (*App, error) {
	if ui == nil {
		return nil, ErrNilUI
	}
	return &App{ui: ui, closers: closers, logger: log}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Run").Msg("annotator started")

	runErr := a.ui.Run(ctx)
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	var closeErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil {
			closeErr = errors.Join(closeErr, err)
		}
	}
	if closeErr != nil {
		a.logger.Err(closeErr).Str("func", "App.Run").Msg("failed to release resources")
	}

	if runErr != nil {
		a.logger.Err(runErr).Str("func", "App.Run").Msg("annotator stopped with error")
		return fmt.Errorf("run ui: %w", runErr)
	}

	a.logger.Info().Str("func", "App.Run").Msg("annotator stopped")
	return closeErr
}
