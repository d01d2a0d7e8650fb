package store

import (
	"context"
	"io"

	"github.com/dkozyrev/tablesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStorage is the local persistent record store shared by the pull
// engine, the push engine, the file transfer manager, and the live update
// listener. Every record-level write is atomic with respect to its own
// existence check (check uuid -> insert-or-update); no cross-record ordering
// is guaranteed or needed.
type LocalStorage interface {
	// GetAllTableObjects returns every record of tableID (0 = all tables) in
	// insertion order. Records with upload status Deleted are only included
	// when includeDeleted is set.
	GetAllTableObjects(ctx context.Context, tableID int, includeDeleted bool) ([]models.TableObject, error)

	// GetTableObject loads the record identified by uuid with its properties.
	// Returns ErrTableObjectNotFound if no such record exists.
	GetTableObject(ctx context.Context, uuid string) (models.TableObject, error)

	// TableObjectExists reports whether a record with the given uuid exists.
	TableObjectExists(ctx context.Context, uuid string) (bool, error)

	// SaveTableObject inserts or updates the record by uuid, replacing its
	// property set, and returns the stored record with local IDs assigned.
	SaveTableObject(ctx context.Context, obj models.TableObject) (models.TableObject, error)

	// DeleteTableObject hard-purges the record and its properties.
	DeleteTableObject(ctx context.Context, uuid string) error

	// TableEtag returns the stored table-level etag cursor of tableID, or ""
	// if none has been stored yet.
	TableEtag(ctx context.Context, tableID int) (string, error)

	// SetTableEtag stores the table-level etag cursor of tableID.
	SetTableEtag(ctx context.Context, tableID int, etag string) error
}

// SettingsRepository is a plain key/value store for session state: access
// token, session flags, and similar client-side settings.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// BlobStorage persists the binary contents of file-backed records, one blob
// per record uuid.
type BlobStorage interface {
	// Save streams the blob produced by fill into storage. The write is
	// atomic: the blob becomes visible under uuid only after fill returned
	// without error, and a failed write leaves any previous blob untouched.
	Save(uuid string, fill func(w io.Writer) error) error

	// Open returns a reader over the stored blob.
	Open(uuid string) (io.ReadCloser, error)

	// Path returns the filesystem path of the stored blob.
	Path(uuid string) string

	// Exists reports whether a blob is stored under uuid.
	Exists(uuid string) bool

	// Size returns the stored blob's size in bytes.
	Size(uuid string) (int64, error)

	// Remove deletes the stored blob. Removing a missing blob is not an
	// error.
	Remove(uuid string) error
}
