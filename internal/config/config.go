package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the tablesync
// client. It is populated by merging command-line flags, environment
// variables, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity settings.
	App App `envPrefix:"APP_"`

	// API holds the backend endpoint addresses and timeouts used by the
	// adapter layer.
	API API `envPrefix:"API_"`

	// Storage holds local persistence settings: the SQLite database and the
	// blob directory for file-backed records.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the table set and scheduling settings of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file, merged
	// under values already loaded from flags and environment.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// App holds application identity settings.
type App struct {
	// AppID is the backend-side application identifier records are scoped to.
	// Env: APP_ID
	AppID int `env:"ID"`

	// DeviceName labels this device in logs.
	// Env: APP_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`
}

// API holds network settings for the outbound transport layer.
type API struct {
	// BaseURL is the backend REST endpoint (e.g. "https://api.example.com").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// WebsocketURL is the live update channel endpoint. When empty it is
	// derived from BaseURL by swapping the scheme to ws/wss.
	// Env: API_WEBSOCKET_URL
	WebsocketURL string `env:"WEBSOCKET_URL"`

	// RequestTimeout bounds every outbound request (e.g. "30s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the blob directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds local database settings.
type DB struct {
	// DSN is the SQLite file path (":memory:" for an in-memory store).
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Files holds blob storage settings.
type Files struct {
	// BlobDir is the directory where file-backed record contents are kept,
	// one file per record uuid.
	// Env: STORAGE_FILES_BLOB_DIR
	BlobDir string `env:"BLOB_DIR"`
}

// Sync holds sync engine settings.
type Sync struct {
	// TableIDs is the ordered list of tables this client synchronises.
	// Env: SYNC_TABLE_IDS (comma-separated)
	TableIDs []int `env:"TABLE_IDS"`

	// ParallelTableIDs is the subset of TableIDs whose pages are fetched in
	// round-robin rotation instead of being drained one table at a time.
	// Env: SYNC_PARALLEL_TABLE_IDS (comma-separated)
	ParallelTableIDs []int `env:"PARALLEL_TABLE_IDS"`

	// Interval is the period of the background full-sync job.
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// DownloadConcurrency is the number of blob downloads processed at once
	// by the file transfer manager.
	// Env: SYNC_DOWNLOAD_CONCURRENCY
	DownloadConcurrency int `env:"DOWNLOAD_CONCURRENCY"`
}

// GetConfig builds the merged client configuration: flags, then environment,
// then the optional JSON file, then built-in defaults, validated at the end.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		withDefaults().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			BaseURL:        "http://localhost:3111",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB:    DB{DSN: "tablesync.db"},
			Files: Files{BlobDir: "blobs"},
		},
		Sync: Sync{
			Interval:            5 * time.Minute,
			DownloadConcurrency: 1,
		},
	}
}
