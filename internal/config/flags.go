package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Flags holds the values of the command-line flags registered by
// [BindFlags]. Values are read after the flag set has been parsed.
type Flags struct {
	logPath        string
	extension      string
	startDir       string
	documentName   string
	databaseDSN    string
	backupDir      string
	backupInterval time.Duration
	noBackup       bool
	jsonConfigPath string
}

// BindFlags registers all configuration flags on fs.
//
// Flags:
//
//	--log                 log file path
//	-e, --extension       picture filename suffix (e.g. ".jpg")
//	-d, --dir             folder the folder picker starts in
//	--document-name       default metadata document name
//	--db                  history database path
//	--backup-dir          recovery backup directory
//	--backup-interval     recovery backup interval (e.g. "30s", "1m")
//	--no-backup           disable recovery backups
//	-c, --config          json file path with configs
func BindFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.logPath, "log", "", "Log file path")
	fs.StringVarP(&f.extension, "extension", "e", "", "Picture filename suffix, case-sensitive (default \".jpg\")")
	fs.StringVarP(&f.startDir, "dir", "d", "", "Folder the folder picker starts in")
	fs.StringVar(&f.documentName, "document-name", "", "Default metadata document name (default \"metadata.json\")")
	fs.StringVar(&f.databaseDSN, "db", "", "History database path")
	fs.StringVar(&f.backupDir, "backup-dir", "", "Recovery backup directory")
	fs.DurationVar(&f.backupInterval, "backup-interval", 0, "Recovery backup interval (e.g. 30s, 1m)")
	fs.BoolVar(&f.noBackup, "no-backup", false, "Disable recovery backups")
	fs.StringVarP(&f.jsonConfigPath, "config", "c", "", "JSON config file path")

	return f
}

// Config returns the flag layer as a [StructuredConfig]. Unset flags stay
// zero so they do not override lower-priority sources.
func (f *Flags) Config() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogPath: f.logPath,
		},
		Pictures: Pictures{
			Extension: f.extension,
			StartDir:  f.startDir,
		},
		Document: Document{
			DefaultName: f.documentName,
		},
		Storage: Storage{
			DB:     DB{DSN: f.databaseDSN},
			Backup: Backup{Dir: f.backupDir},
		},
		Workers: Workers{
			BackupInterval: f.backupInterval,
			BackupDisabled: f.noBackup,
		},
		JSONFilePath: f.jsonConfigPath,
	}
}
