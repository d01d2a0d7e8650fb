package config

import (
	"errors"
	"fmt"
	"net/url"
)

func (c *StructuredConfig) validate() error {
	var errs error

	if c.API.BaseURL == "" {
		errs = errors.Join(errs, ErrNoBaseURL)
	} else if _, err := url.Parse(c.API.BaseURL); err != nil {
		errs = errors.Join(errs, fmt.Errorf("%w: %v", ErrInvalidBaseURL, err))
	}

	if c.API.RequestTimeout <= 0 {
		errs = errors.Join(errs, ErrInvalidRequestTimeout)
	}

	if c.Sync.DownloadConcurrency < 1 {
		errs = errors.Join(errs, ErrInvalidDownloadConcurrency)
	}

	if c.Sync.Interval <= 0 {
		errs = errors.Join(errs, ErrInvalidSyncInterval)
	}

	seen := make(map[int]bool, len(c.Sync.TableIDs))
	for _, id := range c.Sync.TableIDs {
		if seen[id] {
			errs = errors.Join(errs, fmt.Errorf("%w: table %d", ErrDuplicateTableID, id))
		}
		seen[id] = true
	}
	for _, id := range c.Sync.ParallelTableIDs {
		if !seen[id] {
			errs = errors.Join(errs, fmt.Errorf("%w: table %d", ErrUnknownParallelTableID, id))
		}
	}

	if errs != nil {
		return fmt.Errorf("config validation: %w", errs)
	}
	return nil
}
