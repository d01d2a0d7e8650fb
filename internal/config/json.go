package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration is a time.Duration that unmarshals from JSON strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

// StructuredJSONConfig mirrors StructuredConfig for JSON file parsing, with
// durations accepted in "5m" string form.
type StructuredJSONConfig struct {
	App struct {
		AppID      int    `json:"id"`
		DeviceName string `json:"device_name"`
	} `json:"app,omitempty"`

	API struct {
		BaseURL        string   `json:"base_url"`
		WebsocketURL   string   `json:"websocket_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			BlobDir string `json:"blob_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		TableIDs            []int    `json:"table_ids"`
		ParallelTableIDs    []int    `json:"parallel_table_ids"`
		Interval            Duration `json:"interval"`
		DownloadConcurrency int      `json:"download_concurrency"`
	} `json:"sync,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AppID:      jsonCfg.App.AppID,
			DeviceName: jsonCfg.App.DeviceName,
		},
		API: API{
			BaseURL:        jsonCfg.API.BaseURL,
			WebsocketURL:   jsonCfg.API.WebsocketURL,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{BlobDir: jsonCfg.Storage.Files.BlobDir},
		},
		Sync: Sync{
			TableIDs:            jsonCfg.Sync.TableIDs,
			ParallelTableIDs:    jsonCfg.Sync.ParallelTableIDs,
			Interval:            time.Duration(jsonCfg.Sync.Interval),
			DownloadConcurrency: jsonCfg.Sync.DownloadConcurrency,
		},
	}

	return cfg, nil
}
