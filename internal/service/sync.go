package service

import (
	"context"
	"errors"
	"sync"

	"github.com/dkozyrev/tablesync/internal/adapter"
	"github.com/dkozyrev/tablesync/internal/config"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/models"
)

type syncService struct {
	storage   store.LocalStorage
	blobs     store.BlobStorage
	server    adapter.ServerAdapter
	files     FileTransferManager
	callbacks Callbacks
	log       *logger.Logger

	tableIDs []int
	parallel []int

	guard runGuard

	userMu sync.Mutex
	user   models.User
}

// NewSyncService builds the sync engine over the given storages and server
// adapter. cfg supplies the table list and the parallel fetch group.
func NewSyncService(
	storages *store.ClientStorages,
	server adapter.ServerAdapter,
	files FileTransferManager,
	cfg config.Sync,
	callbacks Callbacks,
	log *logger.Logger,
) SyncService {
	if callbacks == nil {
		callbacks = NopCallbacks{}
	}
	return &syncService{
		storage:   storages.TableObjects,
		blobs:     storages.Blobs,
		server:    server,
		files:     files,
		callbacks: callbacks,
		log:       log,
		tableIDs:  cfg.TableIDs,
		parallel:  cfg.ParallelTableIDs,
	}
}

func (s *syncService) Sync(ctx context.Context) (bool, error) {
	if !s.guard.tryAcquire() {
		s.log.Debug().Str("func", "syncService.Sync").Msg("sync already in flight, collapsed")
		return false, nil
	}
	defer s.drainReruns(ctx)

	s.syncUser(ctx)

	ok := s.pull(ctx)
	if err := s.pushPending(ctx); err != nil {
		s.log.Error().Err(err).Str("func", "syncService.Sync").Msg("push after pull failed")
		ok = false
	}

	s.callbacks.OnSyncFinished(ok)
	return ok, nil
}

func (s *syncService) Push(ctx context.Context) error {
	if !s.guard.tryAcquire() {
		// the in-flight run picks this up as a rerun
		return nil
	}
	defer s.drainReruns(ctx)
	return s.pushPending(ctx)
}

func (s *syncService) TriggerPush() {
	go func() {
		if err := s.Push(context.Background()); err != nil {
			s.log.Error().Err(err).Str("func", "syncService.TriggerPush").Msg("background push failed")
		}
	}()
}

// drainReruns releases the guard, re-running the push for every collapsed
// request that arrived while the caller held it.
func (s *syncService) drainReruns(ctx context.Context) {
	for s.guard.release() {
		if err := s.pushPending(ctx); err != nil {
			s.log.Error().Err(err).Str("func", "syncService.drainReruns").Msg("rerun push failed")
		}
	}
}

// syncUser refreshes the cached account so the push engine can check the
// storage quota. A fetch failure is logged and tolerated: quota checks then
// fall back to the last known value.
func (s *syncService) syncUser(ctx context.Context) {
	user, err := s.server.GetUser(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("func", "syncService.syncUser").Msg("user fetch failed")
		return
	}
	s.userMu.Lock()
	s.user = user
	s.userMu.Unlock()
	s.callbacks.OnUserSyncFinished(user)
}

func (s *syncService) cachedUser() models.User {
	s.userMu.Lock()
	defer s.userMu.Unlock()
	return s.user
}

// pull fetches every configured table and applies the remote state to the
// local store. It returns true when all tables settled without a transport or
// storage failure.
func (s *syncService) pull(ctx context.Context) bool {
	fetches := make(map[int]*models.TableFetch, len(s.tableIDs))
	firstPages := make(map[int]models.TableResponse, len(s.tableIDs))
	pages := make(map[int]int, len(s.tableIDs))

	for _, tableID := range s.tableIDs {
		fetch := &models.TableFetch{TableID: tableID, Succeeded: true}
		fetches[tableID] = fetch

		resp, err := s.server.GetTable(ctx, tableID, 1)
		if err != nil {
			s.log.Error().Err(err).Int("table_id", tableID).
				Str("func", "syncService.pull").Msg("table page fetch failed")
			fetch.Succeeded = false
			continue
		}

		fetch.Etag = resp.Etag
		fetch.Pages = resp.Pages
		if fetch.Pages < 1 {
			fetch.Pages = 1
		}

		stored, err := s.storage.TableEtag(ctx, tableID)
		if err == nil && stored != "" && stored == resp.Etag {
			fetch.Skipped = true
			s.callbacks.OnTableSettled(tableID, false, true)
			continue
		}

		firstPages[tableID] = resp
		pages[tableID] = fetch.Pages
	}

	for _, tableID := range BuildFetchOrder(s.tableIDs, s.parallel, pages) {
		fetch := fetches[tableID]
		if !fetch.Succeeded {
			continue
		}
		fetch.CurrentPage++

		var page models.TableResponse
		if fetch.CurrentPage == 1 {
			page = firstPages[tableID]
		} else {
			var err error
			page, err = s.server.GetTable(ctx, tableID, fetch.CurrentPage)
			if err != nil {
				s.log.Error().Err(err).Int("table_id", tableID).Int("page", fetch.CurrentPage).
					Str("func", "syncService.pull").Msg("table page fetch failed")
				fetch.Succeeded = false
				continue
			}
		}

		fetch.Objects = append(fetch.Objects, page.TableObjects...)
		changed := s.applyPage(ctx, fetch, page)
		if changed {
			fetch.Changed = true
		}

		complete := fetch.CurrentPage >= fetch.Pages
		if complete && fetch.Succeeded {
			if s.reconcileDeletions(ctx, fetch) {
				changed = true
				fetch.Changed = true
			}
		}
		s.callbacks.OnTableSettled(tableID, changed, complete)

		// The etag cursor is only advanced once the whole table settled, so
		// an interrupted run repeats the table instead of skipping it.
		if complete && fetch.Succeeded {
			if err := s.storage.SetTableEtag(ctx, tableID, fetch.Etag); err != nil {
				s.log.Error().Err(err).Int("table_id", tableID).
					Str("func", "syncService.pull").Msg("storing table etag failed")
				fetch.Succeeded = false
			}
		}
	}

	ok := true
	for _, fetch := range fetches {
		if !fetch.Succeeded {
			ok = false
		}
	}
	return ok
}

// applyPage reconciles one listing page against the local store and reports
// whether anything changed locally.
func (s *syncService) applyPage(ctx context.Context, fetch *models.TableFetch, page models.TableResponse) bool {
	changed := false
	for _, head := range page.TableObjects {
		local, err := s.storage.GetTableObject(ctx, head.UUID)
		switch {
		case errors.Is(err, store.ErrTableObjectNotFound):
			if s.applyNewRecord(ctx, fetch, head) {
				changed = true
			}
		case err != nil:
			s.log.Error().Err(err).Str("uuid", head.UUID).
				Str("func", "syncService.applyPage").Msg("local record lookup failed")
			fetch.Succeeded = false
		case local.Etag == head.Etag:
			// up to date; re-queue the blob if it went missing locally
			if local.IsFile && !s.blobs.Exists(local.UUID) {
				s.files.Enqueue(models.FileDownloadTask{UUID: local.UUID})
			}
		default:
			if s.applyChangedRecord(ctx, fetch, head, local) {
				changed = true
			}
		}
	}
	return changed
}

func (s *syncService) applyNewRecord(ctx context.Context, fetch *models.TableFetch, head models.TableObjectHead) bool {
	resp, err := s.server.GetTableObject(ctx, head.UUID)
	if err != nil {
		s.log.Error().Err(err).Str("uuid", head.UUID).
			Str("func", "syncService.applyNewRecord").Msg("record fetch failed")
		fetch.Succeeded = false
		return false
	}

	obj := resp.TableObject()
	if obj.IsFile {
		// Only the file metadata survives until the blob has been fetched.
		// The etag stays empty so the record keeps reading as stale: the
		// download task commits head.Etag once the blob landed.
		obj.Properties.Keep(models.PropertyNameExtension)
		obj.Etag = ""
		if _, err := s.storage.SaveTableObject(ctx, obj); err != nil {
			s.log.Error().Err(err).Str("uuid", head.UUID).
				Str("func", "syncService.applyNewRecord").Msg("saving record failed")
			fetch.Succeeded = false
			return false
		}
		s.files.Enqueue(models.FileDownloadTask{UUID: obj.UUID, PendingEtag: head.Etag})
		return true
	}

	saved, err := s.storage.SaveTableObject(ctx, obj)
	if err != nil {
		s.log.Error().Err(err).Str("uuid", head.UUID).
			Str("func", "syncService.applyNewRecord").Msg("saving record failed")
		fetch.Succeeded = false
		return false
	}
	s.callbacks.OnRecordUpdated(saved, false)
	return true
}

func (s *syncService) applyChangedRecord(ctx context.Context, fetch *models.TableFetch, head models.TableObjectHead, local models.TableObject) bool {
	resp, err := s.server.GetTableObject(ctx, head.UUID)
	if err != nil {
		s.log.Error().Err(err).Str("uuid", head.UUID).
			Str("func", "syncService.applyChangedRecord").Msg("record fetch failed")
		fetch.Succeeded = false
		return false
	}

	obj := resp.TableObject()
	obj.ID = local.ID
	if obj.IsFile {
		// Metadata is refreshed now, but the old etag stays in place until
		// the new blob has been downloaded.
		obj.Etag = local.Etag
		if _, err := s.storage.SaveTableObject(ctx, obj); err != nil {
			s.log.Error().Err(err).Str("uuid", head.UUID).
				Str("func", "syncService.applyChangedRecord").Msg("saving record failed")
			fetch.Succeeded = false
			return false
		}
		s.files.Enqueue(models.FileDownloadTask{UUID: obj.UUID, PendingEtag: head.Etag})
		return true
	}

	saved, err := s.storage.SaveTableObject(ctx, obj)
	if err != nil {
		s.log.Error().Err(err).Str("uuid", head.UUID).
			Str("func", "syncService.applyChangedRecord").Msg("saving record failed")
		fetch.Succeeded = false
		return false
	}
	s.callbacks.OnRecordUpdated(saved, false)
	return true
}

// reconcileDeletions purges every local record of the table that did not
// appear on any listing page. Records never uploaded (New) and records
// invisible to sync (NoUpload) are left alone. Only called when every page of
// the table was fetched successfully.
func (s *syncService) reconcileDeletions(ctx context.Context, fetch *models.TableFetch) bool {
	locals, err := s.storage.GetAllTableObjects(ctx, fetch.TableID, true)
	if err != nil {
		s.log.Error().Err(err).Int("table_id", fetch.TableID).
			Str("func", "syncService.reconcileDeletions").Msg("local listing failed")
		fetch.Succeeded = false
		return false
	}

	changed := false
	for _, local := range locals {
		if local.UploadStatus == models.UploadStatusNew || local.UploadStatus == models.UploadStatusNoUpload {
			continue
		}
		if fetch.Seen(local.UUID) {
			continue
		}
		if err := s.purge(ctx, local); err != nil {
			s.log.Error().Err(err).Str("uuid", local.UUID).
				Str("func", "syncService.reconcileDeletions").Msg("purging record failed")
			fetch.Succeeded = false
			continue
		}
		s.callbacks.OnRecordDeleted(local.UUID, local.TableID)
		changed = true
	}
	return changed
}

// purge hard-deletes a record and its blob.
func (s *syncService) purge(ctx context.Context, obj models.TableObject) error {
	if err := s.storage.DeleteTableObject(ctx, obj.UUID); err != nil {
		return err
	}
	if obj.IsFile {
		if err := s.blobs.Remove(obj.UUID); err != nil {
			s.log.Warn().Err(err).Str("uuid", obj.UUID).
				Str("func", "syncService.purge").Msg("removing blob failed")
		}
	}
	return nil
}
