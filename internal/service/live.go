package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/dkozyrev/tablesync/internal/adapter"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/models"
)

// UpdateChannelName is the server-side channel carrying record change
// notifications.
const UpdateChannelName = "TableObjectUpdateChannel"

type liveUpdateListener struct {
	channel   adapter.LiveChannel
	server    adapter.ServerAdapter
	storage   store.LocalStorage
	blobs     store.BlobStorage
	files     FileTransferManager
	callbacks Callbacks
	log       *logger.Logger
}

// NewLiveUpdateListener builds the consumer of the live update channel.
func NewLiveUpdateListener(
	channel adapter.LiveChannel,
	server adapter.ServerAdapter,
	storages *store.ClientStorages,
	files FileTransferManager,
	callbacks Callbacks,
	log *logger.Logger,
) LiveUpdateListener {
	if callbacks == nil {
		callbacks = NopCallbacks{}
	}
	return &liveUpdateListener{
		channel:   channel,
		server:    server,
		storage:   storages.TableObjects,
		blobs:     storages.Blobs,
		files:     files,
		callbacks: callbacks,
		log:       log,
	}
}

func (l *liveUpdateListener) Run(ctx context.Context) error {
	stream, err := l.channel.Subscribe(ctx, UpdateChannelName)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-stream:
			if !ok {
				return nil
			}
			l.handle(ctx, msg)
		}
	}
}

func (l *liveUpdateListener) handle(ctx context.Context, msg models.ChannelMessage) {
	if msg.IsHeartbeat() {
		return
	}
	update := *msg.Message
	if update.UUID == "" {
		return
	}
	if update.AccessTokenHash == HashAccessToken(l.server.Token()) {
		// our own write echoed back
		return
	}

	switch update.Change {
	case models.ChannelUpdateCreate, models.ChannelUpdateUpdate:
		l.applyUpsert(ctx, update.UUID)
	case models.ChannelUpdateDelete:
		l.applyDelete(ctx, update.UUID)
	}
}

func (l *liveUpdateListener) applyUpsert(ctx context.Context, uuid string) {
	resp, err := l.server.GetTableObject(ctx, uuid)
	if err != nil {
		l.log.Error().Err(err).Str("uuid", uuid).
			Str("func", "liveUpdateListener.applyUpsert").Msg("record fetch failed")
		return
	}

	obj := resp.TableObject()
	if local, err := l.storage.GetTableObject(ctx, uuid); err == nil {
		obj.ID = local.ID
		if obj.IsFile {
			obj.Etag = local.Etag
		}
	} else if obj.IsFile {
		obj.Properties.Keep(models.PropertyNameExtension)
		obj.Etag = ""
	}

	saved, err := l.storage.SaveTableObject(ctx, obj)
	if err != nil {
		l.log.Error().Err(err).Str("uuid", uuid).
			Str("func", "liveUpdateListener.applyUpsert").Msg("saving record failed")
		return
	}
	if obj.IsFile {
		l.files.Enqueue(models.FileDownloadTask{UUID: uuid, PendingEtag: resp.Etag})
	}
	l.callbacks.OnRecordUpdated(saved, false)
}

func (l *liveUpdateListener) applyDelete(ctx context.Context, uuid string) {
	local, err := l.storage.GetTableObject(ctx, uuid)
	if errors.Is(err, store.ErrTableObjectNotFound) {
		return
	}
	if err != nil {
		l.log.Error().Err(err).Str("uuid", uuid).
			Str("func", "liveUpdateListener.applyDelete").Msg("record lookup failed")
		return
	}
	if local.UploadStatus == models.UploadStatusNoUpload {
		return
	}

	if err := l.storage.DeleteTableObject(ctx, uuid); err != nil {
		l.log.Error().Err(err).Str("uuid", uuid).
			Str("func", "liveUpdateListener.applyDelete").Msg("purging record failed")
		return
	}
	if local.IsFile {
		if err := l.blobs.Remove(uuid); err != nil {
			l.log.Warn().Err(err).Str("uuid", uuid).
				Str("func", "liveUpdateListener.applyDelete").Msg("removing blob failed")
		}
	}
	l.callbacks.OnRecordDeleted(uuid, local.TableID)
}

// HashAccessToken computes the channel's session identifier for a token: the
// hex-encoded SHA-256 digest of the raw token string.
func HashAccessToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
