package config

import "errors"

var (
	ErrNoBaseURL                  = errors.New("backend base URL is required")
	ErrInvalidBaseURL             = errors.New("backend base URL is not a valid URL")
	ErrInvalidRequestTimeout      = errors.New("request timeout must be positive")
	ErrInvalidDownloadConcurrency = errors.New("download concurrency must be at least 1")
	ErrInvalidSyncInterval        = errors.New("sync interval must be positive")
	ErrDuplicateTableID           = errors.New("duplicate table id")
	ErrUnknownParallelTableID     = errors.New("parallel table id is not in the table list")
)
