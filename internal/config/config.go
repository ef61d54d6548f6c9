// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the photo
// annotator. It aggregates all sub-configurations and is populated by
// merging built-in defaults, environment variables, command-line flags and
// an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as the log destination.
	App App `envPrefix:"APP_"`

	// Pictures controls which folder entries count as pictures and where
	// the folder picker starts.
	Pictures Pictures `envPrefix:"PICTURES_"`

	// Document holds settings for metadata documents.
	Document Document `envPrefix:"DOCUMENT_"`

	// Storage holds the local history database and the backup directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds settings for periodic background work.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON (or JSONC) config file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogPath is the file the JSON log is appended to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Pictures controls picture discovery.
type Pictures struct {
	// Extension is the case-sensitive filename suffix of pictures
	// (e.g. ".jpg"). Entries with any other suffix are skipped.
	// Env: PICTURES_EXTENSION
	Extension string `env:"EXTENSION"`

	// StartDir is where the folder picker opens when there is no history.
	// Env: PICTURES_START_DIR
	StartDir string `env:"START_DIR"`
}

// Document holds settings for metadata documents.
type Document struct {
	// DefaultName is the file name proposed when saving a document for a
	// folder that has none yet (e.g. "metadata.json").
	// Env: DOCUMENT_DEFAULT_NAME
	DefaultName string `env:"DEFAULT_NAME"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the history database settings.
	DB DB `envPrefix:"DB_"`

	// Backup holds the recovery backup settings.
	Backup Backup `envPrefix:"BACKUP_"`
}

// DB holds connection settings for the SQLite history database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Backup holds settings for recovery backups of unsaved edits.
type Backup struct {
	// Dir is the directory autosave snapshots are written to.
	// Env: STORAGE_BACKUP_DIR
	Dir string `env:"DIR"`
}

// Workers holds settings for periodic background work.
type Workers struct {
	// BackupInterval is how often unsaved edits are snapshotted to
	// Storage.Backup.Dir (e.g. "1m").
	// Env: WORKERS_BACKUP_INTERVAL
	BackupInterval time.Duration `env:"BACKUP_INTERVAL"`

	// BackupDisabled turns recovery backups off.
	// Env: WORKERS_BACKUP_DISABLED
	BackupDisabled bool `env:"BACKUP_DISABLED"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags bound with [BindFlags]
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flags).
		withJSON().
		build()
}
