package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Pictures: Pictures{Extension: ".jpg"},
		Document: Document{DefaultName: "metadata.json"},
		Storage: Storage{
			DB:     DB{DSN: "/tmp/history.db"},
			Backup: Backup{Dir: "/tmp/backups"},
		},
		Workers: Workers{BackupInterval: time.Minute},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a zero config does not pass validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidPicturesConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigOverrides verifies that non-zero fields of later
// layers win while zero fields keep earlier values.
func TestBuild_LaterConfigOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Pictures: Pictures{Extension: ".png"}},
		&StructuredConfig{App: App{LogPath: "/tmp/a.log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, ".png", cfg.Pictures.Extension)
	assert.Equal(t, "/tmp/a.log", cfg.App.LogPath)
	assert.Equal(t, "metadata.json", cfg.Document.DefaultName)
	assert.Equal(t, time.Minute, cfg.Workers.BackupInterval)
}

// TestBuild_Defaults verifies that the defaults layer alone is valid.
func TestBuild_Defaults(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, ".jpg", cfg.Pictures.Extension)
	assert.Equal(t, "metadata.json", cfg.Document.DefaultName)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
	assert.NotEmpty(t, cfg.Storage.Backup.Dir)
	assert.NotEmpty(t, cfg.App.LogPath)
	assert.Equal(t, time.Minute, cfg.Workers.BackupInterval)
	assert.False(t, cfg.Workers.BackupDisabled)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_AppendsOneConfig verifies that withEnv appends exactly one entry.
func TestWithEnv_AppendsOneConfig(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv()
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("PICTURES_EXTENSION", ".png")
	t.Setenv("APP_LOG_PATH", "/tmp/env.log")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, ".png", b.configs[0].Pictures.Extension)
	assert.Equal(t, "/tmp/env.log", b.configs[0].App.LogPath)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unparsable value is
// recorded on the builder.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("WORKERS_BACKUP_INTERVAL", "soon")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_NilIsNoOp verifies that a nil flag set adds no layer.
func TestWithFlags_NilIsNoOp(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags(nil)
	assert.Empty(t, b.configs)
}

// TestWithFlags_AppendsParsedValues verifies that parsed flags become a layer.
func TestWithFlags_AppendsParsedValues(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"-e", ".png"}))

	b := newConfigBuilder()
	b.withFlags(flags)

	require.Len(t, b.configs, 1)
	assert.Equal(t, ".png", b.configs[0].Pictures.Extension)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_ReturnsBuilder verifies the fluent interface.
func TestWithJSON_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withJSON())
}

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.Pictures.Extension = ".tif"
	payload.Document.DefaultName = "captions.json"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, ".tif", b.configs[1].Pictures.Extension)
	assert.Equal(t, "captions.json", b.configs[1].Document.DefaultName)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_SetsError_WhenMalformedJSON verifies that invalid JSON content
// sets b.err.
func TestWithJSON_SetsError_WhenMalformedJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "bad-*.json")
	require.NoError(t, err)
	_, err = f.WriteString("{not valid json")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: f.Name()})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	first := StructuredJSONConfig{}
	first.Pictures.Extension = ".first"
	second := StructuredJSONConfig{}
	second.Pictures.Extension = ".last"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: ""},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 4)
	assert.Equal(t, ".last", b.configs[3].Pictures.Extension)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_SourcePriority verifies defaults < env < flags < JSON.
func TestGetStructuredConfig_SourcePriority(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.Document.DefaultName = "from-json.json"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("PICTURES_EXTENSION", ".env")
	t.Setenv("DOCUMENT_DEFAULT_NAME", "from-env.json")
	t.Setenv("STORAGE_DB_DSN", "/tmp/env.db")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags := BindFlags(fs)
	require.NoError(t, fs.Parse([]string{
		"--extension", ".flag",
		"--document-name", "from-flag.json",
		"--config", path,
	}))

	cfg, err := GetStructuredConfig(flags)
	require.NoError(t, err)

	assert.Equal(t, ".flag", cfg.Pictures.Extension)
	assert.Equal(t, "from-json.json", cfg.Document.DefaultName)
	assert.Equal(t, "/tmp/env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, time.Minute, cfg.Workers.BackupInterval)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestGetStructuredConfig_InvalidResult verifies that validation runs on the
// merged result.
func TestGetStructuredConfig_InvalidResult(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("PICTURES_EXTENSION", "jpg")

	cfg, err := GetStructuredConfig(nil)
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidPicturesConfigs)
}
