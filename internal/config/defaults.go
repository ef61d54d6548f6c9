package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	appDirName = "photo-annotator"

	defaultExtension      = ".jpg"
	defaultDocumentName   = "metadata.json"
	defaultBackupInterval = time.Minute
)

// defaultConfig returns the lowest-priority configuration layer. Paths are
// placed under the user's config and cache directories, falling back to the
// temp directory when those are unknown.
func defaultConfig() *StructuredConfig {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		cacheDir = os.TempDir()
	}
	startDir, err := os.Getwd()
	if err != nil {
		startDir = "."
	}

	return &StructuredConfig{
		App: App{
			LogPath: filepath.Join(cacheDir, appDirName, "annotator.log"),
		},
		Pictures: Pictures{
			Extension: defaultExtension,
			StartDir:  startDir,
		},
		Document: Document{
			DefaultName: defaultDocumentName,
		},
		Storage: Storage{
			DB:     DB{DSN: filepath.Join(configDir, appDirName, "history.db")},
			Backup: Backup{Dir: filepath.Join(cacheDir, appDirName, "backups")},
		},
		Workers: Workers{
			BackupInterval: defaultBackupInterval,
		},
	}
}
