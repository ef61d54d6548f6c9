package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-photo-annotator/internal/client"
	"github.com/MKhiriev/go-photo-annotator/internal/config"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/internal/service"
	"github.com/MKhiriev/go-photo-annotator/internal/store"
	"github.com/MKhiriev/go-photo-annotator/internal/tui"
	"github.com/MKhiriev/go-photo-annotator/models"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "photo-annotator",
		Short: "Attach headlines and descriptions to the pictures in a folder",
		Long: `photo-annotator shows every picture of a folder with two text fields,
a headline and a description, and keeps them in a JSON metadata document
next to the pictures.

Settings come from defaults, environment variables (PICTURES_EXTENSION,
STORAGE_DB_DSN, ...), flags and an optional JSON config file, each source
overriding the previous one.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional
			_ = godotenv.Load()
		},
	}

	flags := config.BindFlags(cmd.Flags())
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, flags)
	}

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func run(cmd *cobra.Command, flags *config.Flags) error {
	cfg, err := config.GetStructuredConfig(flags)
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("photo-annotator", cfg.App.LogPath)
	ctx := cmd.Context()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("create storage")
		return fmt.Errorf("create storage: %w", err)
	}

	services := service.NewServices(cfg, storages, buildInfo(), log)

	ui, err := tui.New(services, cfg, log)
	if err != nil {
		_ = storages.Close()
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(ui, log, storages)
	if err != nil {
		_ = storages.Close()
		return fmt.Errorf("init app: %w", err)
	}

	return app.Run(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo())
		},
	}
}

func buildInfo() models.AppBuildInfo {
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
