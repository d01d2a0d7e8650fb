package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	getTableObjectByUUID = `
		SELECT id, uuid, table_id, visibility, is_file, etag, upload_status
		FROM table_objects
		WHERE uuid = ?;`

	countTableObjectByUUID = `
		SELECT COUNT(1)
		FROM table_objects
		WHERE uuid = ?;`

	insertTableObject = `
		INSERT INTO table_objects (uuid, table_id, visibility, is_file, etag, upload_status)
		VALUES (?, ?, ?, ?, ?, ?);`

	updateTableObjectByID = `
		UPDATE table_objects
		SET table_id = ?, visibility = ?, is_file = ?, etag = ?, upload_status = ?
		WHERE id = ?;`

	deleteTableObjectByUUID = `
		DELETE FROM table_objects
		WHERE uuid = ?;`

	getPropertiesByObjectID = `
		SELECT id, table_object_id, name, value
		FROM properties
		WHERE table_object_id = ?
		ORDER BY id;`

	upsertProperty = `
		INSERT INTO properties (table_object_id, name, value)
		VALUES (?, ?, ?)
		ON CONFLICT (table_object_id, name) DO UPDATE SET value = excluded.value;`

	getSetting = `
		SELECT value
		FROM settings
		WHERE key = ?;`

	upsertSetting = `
		INSERT INTO settings (key, value)
		VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	deleteSetting = `
		DELETE FROM settings
		WHERE key = ?;`
)

// buildSelectTableObjects builds the listing query: optional table filter,
// soft-deleted records excluded unless asked for, insertion order preserved
// via the autoincrement id.
func buildSelectTableObjects(tableID int, includeDeleted bool) (string, []any, error) {
	b := sq.Select("id", "uuid", "table_id", "visibility", "is_file", "etag", "upload_status").
		From("table_objects").
		OrderBy("id")

	if tableID != 0 {
		b = b.Where(sq.Eq{"table_id": tableID})
	}
	if !includeDeleted {
		b = b.Where(sq.NotEq{"upload_status": int(deletedStatus)})
	}

	return b.ToSql()
}

// buildDeleteProperties builds the cleanup of property rows that are no
// longer part of a record's property set.
func buildDeleteProperties(tableObjectID int64, names []string) (string, []any, error) {
	b := sq.Delete("properties").
		Where(sq.Eq{"table_object_id": tableObjectID})

	if len(names) > 0 {
		b = b.Where(sq.Eq{"name": names})
	}

	return b.ToSql()
}
