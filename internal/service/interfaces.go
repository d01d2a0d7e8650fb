package service

import (
	"context"
	"io"

	"github.com/dkozyrev/tablesync/models"
)

// SyncService reconciles the local store with the backend. Sync runs a full
// pull followed by a push; Push uploads pending local changes only. Both
// collapse concurrent callers: while a run is in flight a second caller marks
// the run for a single rerun instead of starting another one.
type SyncService interface {
	// Sync returns true when every table settled without transport or
	// storage failures. It returns (false, nil) when another run was
	// already in flight and this call was collapsed into it.
	Sync(ctx context.Context) (bool, error)
	// Push uploads all records whose status is not UpToDate or NoUpload.
	Push(ctx context.Context) error
	// TriggerPush schedules a push in the background.
	TriggerPush()
}

// TableObjectService is the user-facing mutation surface. Every local write
// goes through it so that upload statuses stay consistent with the push
// engine's expectations.
type TableObjectService interface {
	Create(ctx context.Context, params CreateParams) (models.TableObject, error)
	Get(ctx context.Context, uuid string) (models.TableObject, error)
	List(ctx context.Context, tableID int) ([]models.TableObject, error)
	SetProperty(ctx context.Context, uuid string, name string, value string) (models.TableObject, error)
	SetFile(ctx context.Context, uuid string, ext string, content io.Reader) (models.TableObject, error)
	Delete(ctx context.Context, uuid string) error
	MarkNoUpload(ctx context.Context, uuid string) (models.TableObject, error)
}

// CreateParams describes a record to create locally. UUID is generated when
// empty.
type CreateParams struct {
	TableID    int
	UUID       string
	IsFile     bool
	Visibility models.Visibility
	Properties map[string]string
}

// FileTransferManager downloads file blobs in the background. Enqueue is
// non-blocking and restarts the drain loop when it is idle; tasks for the
// same uuid are processed in FIFO order.
type FileTransferManager interface {
	Enqueue(task models.FileDownloadTask)
	AddProgressListener(uuid string, fn func(percent int))
	RemoveProgressListeners(uuid string)
}

// LiveUpdateListener consumes server-pushed change notifications and applies
// them to the local store. Run blocks until the stream closes or ctx is done.
type LiveUpdateListener interface {
	Run(ctx context.Context) error
}

// Callbacks is implemented by the host application to observe sync progress.
// All methods may be called from background goroutines.
type Callbacks interface {
	// OnRecordUpdated fires after a record was created or updated locally
	// from remote data. fromFileDownload is true when the trigger was a
	// finished blob download rather than a metadata change.
	OnRecordUpdated(object models.TableObject, fromFileDownload bool)
	// OnRecordDeleted fires after a record was purged because the backend
	// no longer has it.
	OnRecordDeleted(uuid string, tableID int)
	// OnTableSettled fires after each processed page of a table. complete
	// is true on the last page.
	OnTableSettled(tableID int, changed bool, complete bool)
	// OnDownloadProgress reports blob download progress in percent.
	OnDownloadProgress(uuid string, percent int)
	OnUserSyncFinished(user models.User)
	OnSyncFinished(ok bool)
}

// NopCallbacks ignores every notification. Embed it to implement a subset of
// Callbacks.
type NopCallbacks struct{}

func (NopCallbacks) OnRecordUpdated(models.TableObject, bool) {}
func (NopCallbacks) OnRecordDeleted(string, int)              {}
func (NopCallbacks) OnTableSettled(int, bool, bool)           {}
func (NopCallbacks) OnDownloadProgress(string, int)           {}
func (NopCallbacks) OnUserSyncFinished(models.User)           {}
func (NopCallbacks) OnSyncFinished(bool)                      {}
