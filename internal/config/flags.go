package config

import (
	"flag"
	"strconv"
	"strings"
	"time"
)

// intList is a comma-separated list of integers implementing flag.Value.
type intList []int

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a backend base URL
//	-ws websocket endpoint URL
//	-d local database path
//	-f blob storage directory
//	-c/-config json file path with configs
//	-tables comma-separated table ids to synchronise
//	-parallel-tables comma-separated table ids fetched in rotation
//	-sync-interval background sync period (e.g., "5m")
//	-request-timeout request timeout (e.g., "30s")
//	-download-concurrency parallel blob downloads
func ParseFlags() *StructuredConfig {
	var baseURL string
	var websocketURL string
	var databaseDSN string
	var blobDir string
	var jsonConfigPath string
	var tableIDs, parallelTableIDs intList
	var syncInterval time.Duration
	var requestTimeout time.Duration
	var downloadConcurrency int

	flag.StringVar(&baseURL, "a", "", "Backend base URL")
	flag.StringVar(&websocketURL, "ws", "", "Websocket endpoint URL")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&blobDir, "f", "", "Blob storage directory")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.Var(&tableIDs, "tables", "Comma-separated table ids")
	flag.Var(&parallelTableIDs, "parallel-tables", "Comma-separated parallel table ids")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background sync period (e.g., 5m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	flag.IntVar(&downloadConcurrency, "download-concurrency", 0, "Parallel blob downloads")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			WebsocketURL:   websocketURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{BlobDir: blobDir},
		},
		Sync: Sync{
			TableIDs:            tableIDs,
			ParallelTableIDs:    parallelTableIDs,
			Interval:            syncInterval,
			DownloadConcurrency: downloadConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns the canonical comma-separated form of the list.
func (l *intList) String() string {
	if l == nil || len(*l) == 0 {
		return ""
	}

	parts := make([]string, 0, len(*l))
	for _, v := range *l {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, ",")
}

// Set parses a comma-separated list of integers, replacing the current value.
func (l *intList) Set(s string) error {
	var out intList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return err
		}
		out = append(out, v)
	}

	*l = out
	return nil
}
