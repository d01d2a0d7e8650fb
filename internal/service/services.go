package service

import (
	"github.com/dkozyrev/tablesync/internal/adapter"
	"github.com/dkozyrev/tablesync/internal/config"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/store"
)

type Services struct {
	SyncService  SyncService
	TableObjects TableObjectService
	FileTransfer FileTransferManager
	LiveListener LiveUpdateListener
	SyncJob      SyncJob
}

func NewServices(
	storages *store.ClientStorages,
	serverAdapter adapter.ServerAdapter,
	channel adapter.LiveChannel,
	cfg config.Sync,
	callbacks Callbacks,
	log *logger.Logger,
) *Services {
	if callbacks == nil {
		callbacks = NopCallbacks{}
	}

	files := NewFileTransferManager(
		storages.TableObjects, storages.Blobs, serverAdapter,
		cfg.DownloadConcurrency, callbacks, log,
	)
	syncSvc := NewSyncService(storages, serverAdapter, files, cfg, callbacks, log)

	return &Services{
		SyncService:  syncSvc,
		TableObjects: NewTableObjectService(storages, syncSvc, log),
		FileTransfer: files,
		LiveListener: NewLiveUpdateListener(channel, serverAdapter, storages, files, callbacks, log),
		SyncJob:      NewSyncJob(syncSvc),
	}
}
