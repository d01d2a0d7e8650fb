package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozyrev/tablesync/internal/logger"
)

func newTestSettingsRepo(t *testing.T) (SettingsRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSettingsRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

func TestSettingsRepository_GetMissing(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getSetting)).
		WithArgs(SettingAccessToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	_, err := repo.Get(context.Background(), SettingAccessToken)
	require.ErrorIs(t, err, ErrSettingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_SetAndGet(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertSetting)).
		WithArgs(SettingAccessToken, "token-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Set(context.Background(), SettingAccessToken, "token-1"))

	mock.ExpectQuery(regexp.QuoteMeta(getSetting)).
		WithArgs(SettingAccessToken).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("token-1"))

	v, err := repo.Get(context.Background(), SettingAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "token-1", v)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepository_Remove(t *testing.T) {
	repo, mock := newTestSettingsRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(deleteSetting)).
		WithArgs(SettingSessionUUID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Remove(context.Background(), SettingSessionUUID))
	require.NoError(t, mock.ExpectationsWereMet())
}
