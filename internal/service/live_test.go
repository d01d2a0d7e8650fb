package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/mock"
	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/models"
)

func newTestLiveListener(
	t *testing.T,
	ctrl *gomock.Controller,
	frames []models.ChannelMessage,
) (*liveUpdateListener, *fakeStorage, *fakeBlobs, *mock.MockServerAdapter, *stubFiles, *recordingCallbacks) {
	t.Helper()

	storage := newFakeStorage()
	blobs := newFakeBlobs()
	server := mock.NewMockServerAdapter(ctrl)
	channel := mock.NewMockLiveChannel(ctrl)
	files := &stubFiles{}
	callbacks := newRecordingCallbacks()

	stream := make(chan models.ChannelMessage, len(frames))
	for _, frame := range frames {
		stream <- frame
	}
	close(stream)
	channel.EXPECT().Subscribe(gomock.Any(), UpdateChannelName).
		Return((<-chan models.ChannelMessage)(stream), nil)

	storages := &store.ClientStorages{TableObjects: storage, Blobs: blobs}
	l := NewLiveUpdateListener(channel, server, storages, files, callbacks, logger.Nop()).(*liveUpdateListener)
	return l, storage, blobs, server, files, callbacks
}

func runListener(t *testing.T, l *liveUpdateListener) {
	t.Helper()

	var wg sync.WaitGroup
	wg.Add(1)
	var err error
	go func() {
		defer wg.Done()
		err = l.Run(context.Background())
	}()

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not finish")
	}
	require.NoError(t, err)
}

func update(uuid string, change models.ChannelUpdateChange, tokenHash string) models.ChannelMessage {
	return models.ChannelMessage{
		Type: "message",
		Message: &models.ChannelUpdate{
			UUID:            uuid,
			Change:          change,
			AccessTokenHash: tokenHash,
		},
	}
}

func TestLiveUpdateListener_AppliesRemoteCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	frames := []models.ChannelMessage{
		{Type: "ping"},
		update("a", models.ChannelUpdateCreate, "other-session"),
	}
	l, storage, _, server, _, callbacks := newTestLiveListener(t, ctrl, frames)

	server.EXPECT().Token().Return("my-token").AnyTimes()
	server.EXPECT().GetTableObject(gomock.Any(), "a").Return(models.TableObjectResponse{
		UUID: "a", TableID: 1, Etag: "etag-a",
		Properties: map[string]string{"title": "from another device"},
	}, nil)

	runListener(t, l)

	a, found := storage.get("a")
	require.True(t, found)
	assert.Equal(t, "etag-a", a.Etag)
	assert.Equal(t, models.UploadStatusUpToDate, a.UploadStatus)

	events := callbacks.updatedEvents()
	require.Len(t, events, 1)
	assert.False(t, events[0].fromDownload)
}

func TestLiveUpdateListener_IgnoresOwnEcho(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownHash := HashAccessToken("my-token")
	frames := []models.ChannelMessage{
		update("a", models.ChannelUpdateCreate, ownHash),
		update("a", models.ChannelUpdateDelete, ownHash),
	}
	l, storage, _, server, _, callbacks := newTestLiveListener(t, ctrl, frames)

	// no GetTableObject, no storage writes
	server.EXPECT().Token().Return("my-token").AnyTimes()

	runListener(t, l)

	assert.Zero(t, storage.count())
	assert.Empty(t, callbacks.updatedEvents())
	assert.Empty(t, callbacks.deletedUUIDs())
}

func TestLiveUpdateListener_AppliesRemoteDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	frames := []models.ChannelMessage{
		update("f", models.ChannelUpdateDelete, "other-session"),
	}
	l, storage, blobs, server, _, callbacks := newTestLiveListener(t, ctrl, frames)

	ctx := context.Background()
	blobs.put("f", []byte("content"))
	_, err := storage.SaveTableObject(ctx, models.TableObject{
		UUID: "f", TableID: 2, IsFile: true, Etag: "e",
	})
	require.NoError(t, err)

	server.EXPECT().Token().Return("my-token").AnyTimes()

	runListener(t, l)

	_, found := storage.get("f")
	assert.False(t, found)
	assert.False(t, blobs.Exists("f"))
	assert.Equal(t, []string{"f"}, callbacks.deletedUUIDs())
}

func TestLiveUpdateListener_DeleteOfUnknownRecordIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	frames := []models.ChannelMessage{
		update("ghost", models.ChannelUpdateDelete, "other-session"),
	}
	l, _, _, server, _, callbacks := newTestLiveListener(t, ctrl, frames)

	server.EXPECT().Token().Return("my-token").AnyTimes()

	runListener(t, l)

	assert.Empty(t, callbacks.deletedUUIDs())
}

func TestLiveUpdateListener_FileUpdateGoesThroughDownloadQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	frames := []models.ChannelMessage{
		update("f", models.ChannelUpdateUpdate, "other-session"),
	}
	l, storage, _, server, files, _ := newTestLiveListener(t, ctrl, frames)

	ctx := context.Background()
	_, err := storage.SaveTableObject(ctx, models.TableObject{
		UUID: "f", TableID: 1, IsFile: true, Etag: "etag-old",
		Properties: models.NewProperties(models.Property{Name: "ext", Value: "png"}),
	})
	require.NoError(t, err)

	server.EXPECT().Token().Return("my-token").AnyTimes()
	server.EXPECT().GetTableObject(gomock.Any(), "f").Return(models.TableObjectResponse{
		UUID: "f", TableID: 1, IsFile: true, Etag: "etag-new",
		Properties: map[string]string{"ext": "png"},
	}, nil)

	runListener(t, l)

	f, _ := storage.get("f")
	assert.Equal(t, "etag-old", f.Etag, "old etag stays until the blob is downloaded")
	assert.Equal(t, []models.FileDownloadTask{{UUID: "f", PendingEtag: "etag-new"}}, files.enqueued())
}

func TestHashAccessToken(t *testing.T) {
	// sha256("token") as hex
	assert.Equal(t,
		"3c469e9d6c5875d37a43f353d4f88e61fcf812c66eee3457465a40b0da4153e0",
		HashAccessToken("token"))
	assert.NotEqual(t, HashAccessToken("a"), HashAccessToken("b"))
}
