package store

import (
	"database/sql"

	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
