// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the sentinel errors
// from errors.go otherwise.
func (cfg *StructuredConfig) validate() error {
	if ext := cfg.Pictures.Extension; len(ext) < 2 || !strings.HasPrefix(ext, ".") {
		return ErrInvalidPicturesConfigs
	}

	if name := cfg.Document.DefaultName; filepath.Base(name) != name || !strings.HasSuffix(name, ".json") {
		return ErrInvalidDocumentConfigs
	}

	if cfg.Storage.DB.DSN == "" || isInMemoryDSN(cfg.Storage.DB.DSN) {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.BackupInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	if !cfg.Workers.BackupDisabled && (cfg.Storage.Backup.Dir == "" || cfg.Workers.BackupInterval == 0) {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// isInMemoryDSN reports whether dsn names an SQLite in-memory database,
// either ":memory:" itself, a "file::memory:" URI or a URI with the
// mode=memory query parameter.
func isInMemoryDSN(dsn string) bool {
	path, query, _ := strings.Cut(dsn, "?")
	if path == ":memory:" || path == "file::memory:" {
		return true
	}
	for _, param := range strings.Split(query, "&") {
		if param == "mode=memory" {
			return true
		}
	}
	return false
}
