package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkozyrev/tablesync/internal/logger"
)

// Well-known settings keys.
const (
	SettingAccessToken = "access_token"
	SettingSessionUUID = "session_uuid"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository builds the SQLite-backed [SettingsRepository].
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{DB: db, logger: logger}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.DB.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSettingNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to load setting")
		return "", fmt.Errorf("failed to load setting %s: %w", key, err)
	}
	return value, nil
}

func (r *settingsRepository) Set(ctx context.Context, key, value string) error {
	if _, err := r.DB.ExecContext(ctx, upsertSetting, key, value); err != nil {
		r.logger.Err(err).
			Str("func", "settingsRepository.Set").
			Str("key", key).
			Msg("failed to store setting")
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepository) Remove(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		return fmt.Errorf("failed to remove setting %s: %w", key, err)
	}
	return nil
}
