package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFlags(t *testing.T, args ...string) *Flags {
	t.Helper()
	fs := pflag.NewFlagSet("annotator", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse(args))
	return flags
}

// TestBindFlags tests that every flag lands in its config field
func TestBindFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected *StructuredConfig
	}{
		{
			name:     "no flags",
			args:     nil,
			expected: &StructuredConfig{},
		},
		{
			name: "all long flags",
			args: []string{
				"--log", "/tmp/a.log",
				"--extension", ".png",
				"--dir", "/photos",
				"--document-name", "captions.json",
				"--db", "/tmp/h.db",
				"--backup-dir", "/tmp/backups",
				"--backup-interval", "2m",
				"--no-backup",
				"--config", "/etc/annotator.json",
			},
			expected: &StructuredConfig{
				App:      App{LogPath: "/tmp/a.log"},
				Pictures: Pictures{Extension: ".png", StartDir: "/photos"},
				Document: Document{DefaultName: "captions.json"},
				Storage: Storage{
					DB:     DB{DSN: "/tmp/h.db"},
					Backup: Backup{Dir: "/tmp/backups"},
				},
				Workers:      Workers{BackupInterval: 2 * time.Minute, BackupDisabled: true},
				JSONFilePath: "/etc/annotator.json",
			},
		},
		{
			name: "short flags",
			args: []string{"-e", ".tif", "-d", "/mnt/card", "-c", "cfg.json"},
			expected: &StructuredConfig{
				Pictures:     Pictures{Extension: ".tif", StartDir: "/mnt/card"},
				JSONFilePath: "cfg.json",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newTestFlags(t, tt.args...)
			assert.Equal(t, tt.expected, flags.Config())
		})
	}
}

// TestBindFlags_InvalidDuration tests that a malformed interval is rejected by the flag set
func TestBindFlags_InvalidDuration(t *testing.T) {
	fs := pflag.NewFlagSet("annotator", pflag.ContinueOnError)
	BindFlags(fs)

	err := fs.Parse([]string{"--backup-interval", "often"})
	assert.Error(t, err)
}
