package service

import (
	"github.com/MKhiriev/go-photo-annotator/internal/adapter"
	"github.com/MKhiriev/go-photo-annotator/internal/config"
	"github.com/MKhiriev/go-photo-annotator/internal/logger"
	"github.com/MKhiriev/go-photo-annotator/internal/store"
	"github.com/MKhiriev/go-photo-annotator/internal/utils"
	"github.com/MKhiriev/go-photo-annotator/models"
)

type Services struct {
	PictureService  PictureService
	DocumentService DocumentService
	HistoryService  HistoryService
	AppInfoService  AppInfoService
}

// NewServices wires every service to the local filesystem adapters and the
// given storages.
func NewServices(cfg *config.StructuredConfig, storages *store.Storages, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		PictureService: NewPictureService(
			adapter.NewLocalFolders(),
			cfg.Pictures.Extension,
			logger,
		),
		DocumentService: NewDocumentService(
			adapter.NewFileOpener(adapter.JSONFilter),
			adapter.NewAtomicSaver(),
			cfg.Storage.Backup.Dir,
			logger,
		),
		HistoryService: NewHistoryService(storages.History, utils.NewUUIDGenerator(), logger),
		AppInfoService: NewAppInfoService(buildInfo, logger),
	}
}
