package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/models"
)

// deletedStatus is referenced by the query builder; soft-deleted records are
// filtered out of listings unless explicitly requested.
const deletedStatus = models.UploadStatusDeleted

const tableEtagKeyPrefix = "table_etag:"

type tableObjectRepository struct {
	*DB
	logger *logger.Logger

	// mu makes the uuid-exists check and the following insert-or-update one
	// atomic unit. Four components write through this repository
	// concurrently (pull, push, live updates, file downloads).
	mu sync.Mutex
}

// NewTableObjectRepository builds the SQLite-backed [LocalStorage].
func NewTableObjectRepository(db *DB, logger *logger.Logger) LocalStorage {
	return &tableObjectRepository{DB: db, logger: logger}
}

func (r *tableObjectRepository) GetAllTableObjects(ctx context.Context, tableID int, includeDeleted bool) ([]models.TableObject, error) {
	query, args, err := buildSelectTableObjects(tableID, includeDeleted)
	if err != nil {
		return nil, fmt.Errorf("failed to build table object listing query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "tableObjectRepository.GetAllTableObjects").
			Int("table_id", tableID).
			Msg("failed to query table objects")
		return nil, fmt.Errorf("failed to query table objects: %w", err)
	}
	defer rows.Close()

	var objects []models.TableObject
	for rows.Next() {
		var obj models.TableObject
		if err := rows.Scan(&obj.ID, &obj.UUID, &obj.TableID, &obj.Visibility, &obj.IsFile, &obj.Etag, &obj.UploadStatus); err != nil {
			return nil, fmt.Errorf("failed to scan table object row: %w", err)
		}
		objects = append(objects, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating table object rows: %w", err)
	}

	for i := range objects {
		props, err := r.loadProperties(ctx, objects[i].ID)
		if err != nil {
			return nil, err
		}
		objects[i].Properties = props
	}

	return objects, nil
}

func (r *tableObjectRepository) GetTableObject(ctx context.Context, uuid string) (models.TableObject, error) {
	var obj models.TableObject

	row := r.DB.QueryRowContext(ctx, getTableObjectByUUID, uuid)
	err := row.Scan(&obj.ID, &obj.UUID, &obj.TableID, &obj.Visibility, &obj.IsFile, &obj.Etag, &obj.UploadStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TableObject{}, ErrTableObjectNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "tableObjectRepository.GetTableObject").
			Str("uuid", uuid).
			Msg("failed to scan table object row")
		return models.TableObject{}, fmt.Errorf("failed to scan table object row: %w", err)
	}

	props, err := r.loadProperties(ctx, obj.ID)
	if err != nil {
		return models.TableObject{}, err
	}
	obj.Properties = props

	return obj, nil
}

func (r *tableObjectRepository) TableObjectExists(ctx context.Context, uuid string) (bool, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, countTableObjectByUUID, uuid).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to count table objects for uuid %s: %w", uuid, err)
	}
	return count > 0, nil
}

func (r *tableObjectRepository) SaveTableObject(ctx context.Context, obj models.TableObject) (models.TableObject, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return models.TableObject{}, fmt.Errorf("failed to begin save transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	row := tx.QueryRowContext(ctx, getTableObjectByUUID, obj.UUID)
	var existing models.TableObject
	err = row.Scan(&existing.ID, &existing.UUID, &existing.TableID, &existing.Visibility, &existing.IsFile, &existing.Etag, &existing.UploadStatus)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.ExecContext(ctx, insertTableObject,
			obj.UUID, obj.TableID, obj.Visibility, obj.IsFile, obj.Etag, obj.UploadStatus)
		if err != nil {
			r.logger.Err(err).
				Str("func", "tableObjectRepository.SaveTableObject").
				Str("uuid", obj.UUID).
				Msg("failed to insert table object")
			return models.TableObject{}, fmt.Errorf("failed to insert table object (uuid=%s): %w", obj.UUID, err)
		}
		existingID, err = res.LastInsertId()
		if err != nil {
			return models.TableObject{}, fmt.Errorf("failed to read inserted table object id: %w", err)
		}

	case err != nil:
		return models.TableObject{}, fmt.Errorf("failed to load table object for save (uuid=%s): %w", obj.UUID, err)

	default:
		existingID = existing.ID
		_, err = tx.ExecContext(ctx, updateTableObjectByID,
			obj.TableID, obj.Visibility, obj.IsFile, obj.Etag, obj.UploadStatus, existingID)
		if err != nil {
			r.logger.Err(err).
				Str("func", "tableObjectRepository.SaveTableObject").
				Str("uuid", obj.UUID).
				Msg("failed to update table object")
			return models.TableObject{}, fmt.Errorf("failed to update table object (uuid=%s): %w", obj.UUID, err)
		}
	}

	if err := r.saveProperties(ctx, tx, existingID, &obj.Properties); err != nil {
		return models.TableObject{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.TableObject{}, fmt.Errorf("failed to commit table object save: %w", err)
	}

	obj.ID = existingID
	return obj, nil
}

func (r *tableObjectRepository) DeleteTableObject(ctx context.Context, uuid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Property rows follow via ON DELETE CASCADE.
	if _, err := r.DB.ExecContext(ctx, deleteTableObjectByUUID, uuid); err != nil {
		r.logger.Err(err).
			Str("func", "tableObjectRepository.DeleteTableObject").
			Str("uuid", uuid).
			Msg("failed to delete table object")
		return fmt.Errorf("failed to delete table object (uuid=%s): %w", uuid, err)
	}

	return nil
}

func (r *tableObjectRepository) TableEtag(ctx context.Context, tableID int) (string, error) {
	var etag string
	err := r.DB.QueryRowContext(ctx, getSetting, tableEtagKeyPrefix+strconv.Itoa(tableID)).Scan(&etag)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to load etag for table %d: %w", tableID, err)
	}
	return etag, nil
}

func (r *tableObjectRepository) SetTableEtag(ctx context.Context, tableID int, etag string) error {
	if _, err := r.DB.ExecContext(ctx, upsertSetting, tableEtagKeyPrefix+strconv.Itoa(tableID), etag); err != nil {
		return fmt.Errorf("failed to store etag for table %d: %w", tableID, err)
	}
	return nil
}

func (r *tableObjectRepository) loadProperties(ctx context.Context, tableObjectID int64) (models.Properties, error) {
	rows, err := r.DB.QueryContext(ctx, getPropertiesByObjectID, tableObjectID)
	if err != nil {
		return models.Properties{}, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var props models.Properties
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.TableObjectID, &p.Name, &p.Value); err != nil {
			return models.Properties{}, fmt.Errorf("failed to scan property row: %w", err)
		}
		props.SetProperty(p)
	}
	if err := rows.Err(); err != nil {
		return models.Properties{}, fmt.Errorf("failed iterating property rows: %w", err)
	}

	return props, nil
}

// saveProperties replaces the property set of a record: every property in
// props is upserted and rows whose name left the set are removed.
func (r *tableObjectRepository) saveProperties(ctx context.Context, tx *sql.Tx, tableObjectID int64, props *models.Properties) error {
	rows, err := tx.QueryContext(ctx, getPropertiesByObjectID, tableObjectID)
	if err != nil {
		return fmt.Errorf("failed to query existing properties: %w", err)
	}

	var existingNames []string
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ID, &p.TableObjectID, &p.Name, &p.Value); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan property row: %w", err)
		}
		existingNames = append(existingNames, p.Name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return fmt.Errorf("failed iterating property rows: %w", err)
	}
	rows.Close()

	kept := make(map[string]bool, props.Len())
	for _, p := range props.List() {
		kept[p.Name] = true
		if _, err := tx.ExecContext(ctx, upsertProperty, tableObjectID, p.Name, p.Value); err != nil {
			return fmt.Errorf("failed to upsert property %s: %w", p.Name, err)
		}
	}

	var stale []string
	for _, name := range existingNames {
		if !kept[name] {
			stale = append(stale, name)
		}
	}
	if len(stale) > 0 {
		query, args, err := buildDeleteProperties(tableObjectID, stale)
		if err != nil {
			return fmt.Errorf("failed to build stale property delete: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete stale properties: %w", err)
		}
	}

	return nil
}
