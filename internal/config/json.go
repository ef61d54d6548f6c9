package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tailscale/hujson"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags. Comments
// and trailing commas are allowed in the file (JSONC).
type StructuredJSONConfig struct {
	App struct {
		LogPath string `json:"log_path"`
	} `json:"app,omitempty"`

	Pictures struct {
		Extension string `json:"extension"`
		StartDir  string `json:"start_dir"`
	} `json:"pictures,omitempty"`

	Document struct {
		DefaultName string `json:"default_name"`
	} `json:"document,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Backup struct {
			Dir string `json:"dir"`
		} `json:"backup,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		BackupInterval Duration `json:"backup_interval"`
		BackupDisabled bool     `json:"backup_disabled"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	raw, err := os.ReadFile(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}

	standard, err := hujson.Standardize(raw)
	if err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(standard, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogPath: jsonCfg.App.LogPath,
		},
		Pictures: Pictures{
			Extension: jsonCfg.Pictures.Extension,
			StartDir:  jsonCfg.Pictures.StartDir,
		},
		Document: Document{
			DefaultName: jsonCfg.Document.DefaultName,
		},
		Storage: Storage{
			DB:     DB{DSN: jsonCfg.Storage.DB.DSN},
			Backup: Backup{Dir: jsonCfg.Storage.Backup.Dir},
		},
		Workers: Workers{
			BackupInterval: time.Duration(jsonCfg.Workers.BackupInterval),
			BackupDisabled: jsonCfg.Workers.BackupDisabled,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
