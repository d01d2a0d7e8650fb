package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/mock"
	"github.com/dkozyrev/tablesync/models"
)

func newTestFileManager(
	t *testing.T,
	ctrl *gomock.Controller,
	limit int,
) (*fileTransferManager, *fakeStorage, *fakeBlobs, *mock.MockServerAdapter, *recordingCallbacks) {
	t.Helper()

	storage := newFakeStorage()
	blobs := newFakeBlobs()
	server := mock.NewMockServerAdapter(ctrl)
	callbacks := newRecordingCallbacks()

	m := NewFileTransferManager(storage, blobs, server, limit, callbacks, logger.Nop()).(*fileTransferManager)
	return m, storage, blobs, server, callbacks
}

func waitIdle(t *testing.T, m *fileTransferManager) {
	t.Helper()
	require.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return !m.running && len(m.queue) == 0 && m.inFlight == 0
	}, 2*time.Second, 5*time.Millisecond)
}

func TestFileTransferManager_CommitsEtagAfterDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, storage, blobs, server, callbacks := newTestFileManager(t, ctrl, 1)
	ctx := context.Background()

	_, err := storage.SaveTableObject(ctx, models.TableObject{
		UUID: "f", TableID: 1, IsFile: true, Etag: "",
	})
	require.NoError(t, err)

	server.EXPECT().DownloadTableObjectFile(gomock.Any(), "f", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer, progress func(written, total int64)) error {
			content := []byte("file content")
			if progress != nil {
				progress(int64(len(content)/2), int64(len(content)))
			}
			_, writeErr := w.Write(content)
			if progress != nil {
				progress(int64(len(content)), int64(len(content)))
			}
			return writeErr
		})

	m.Enqueue(models.FileDownloadTask{UUID: "f", PendingEtag: "etag-f"})
	waitIdle(t, m)

	f, _ := storage.get("f")
	assert.Equal(t, "etag-f", f.Etag, "etag committed only after the blob landed")
	assert.True(t, blobs.Exists("f"))

	events := callbacks.updatedEvents()
	require.Len(t, events, 1)
	assert.True(t, events[0].fromDownload)
	assert.Equal(t, []int{50, 100}, callbacks.progressFor("f"))
}

func TestFileTransferManager_FailedDownloadLeavesEtagAndBlob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, storage, blobs, server, callbacks := newTestFileManager(t, ctrl, 1)
	ctx := context.Background()

	blobs.put("f", []byte("previous version"))
	_, err := storage.SaveTableObject(ctx, models.TableObject{
		UUID: "f", TableID: 1, IsFile: true, Etag: "etag-old",
	})
	require.NoError(t, err)

	server.EXPECT().DownloadTableObjectFile(gomock.Any(), "f", gomock.Any(), gomock.Any()).
		Return(errors.New("connection reset"))

	m.Enqueue(models.FileDownloadTask{UUID: "f", PendingEtag: "etag-new"})
	waitIdle(t, m)

	f, _ := storage.get("f")
	assert.Equal(t, "etag-old", f.Etag, "failed download must not advance the etag")

	content, err := io.ReadAll(mustOpen(t, blobs, "f"))
	require.NoError(t, err)
	assert.Equal(t, "previous version", string(content))
	assert.Empty(t, callbacks.updatedEvents())
}

func TestFileTransferManager_PurgedRecordIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _, _, _, callbacks := newTestFileManager(t, ctrl, 1)

	// no record in storage, no download expected
	m.Enqueue(models.FileDownloadTask{UUID: "ghost", PendingEtag: "e"})
	waitIdle(t, m)

	assert.Empty(t, callbacks.updatedEvents())
}

func TestFileTransferManager_LimitOneDownloadsSequentially(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, storage, _, server, _ := newTestFileManager(t, ctrl, 1)
	ctx := context.Background()

	for _, uuid := range []string{"first", "second", "third"} {
		_, err := storage.SaveTableObject(ctx, models.TableObject{
			UUID: uuid, TableID: 1, IsFile: true,
		})
		require.NoError(t, err)
	}

	var mu sync.Mutex
	var order []string
	active := 0
	server.EXPECT().DownloadTableObjectFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, uuid string, w io.Writer, _ func(written, total int64)) error {
			mu.Lock()
			active++
			assert.Equal(t, 1, active, "no concurrent downloads with limit 1")
			order = append(order, uuid)
			mu.Unlock()

			time.Sleep(10 * time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
			_, err := w.Write([]byte(uuid))
			return err
		}).Times(3)

	m.Enqueue(models.FileDownloadTask{UUID: "first"})
	m.Enqueue(models.FileDownloadTask{UUID: "second"})
	m.Enqueue(models.FileDownloadTask{UUID: "third"})
	waitIdle(t, m)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestFileTransferManager_DuplicateEnqueueIsCollapsed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, storage, _, server, _ := newTestFileManager(t, ctrl, 1)
	ctx := context.Background()

	_, err := storage.SaveTableObject(ctx, models.TableObject{
		UUID: "f", TableID: 1, IsFile: true,
	})
	require.NoError(t, err)

	release := make(chan struct{})
	server.EXPECT().DownloadTableObjectFile(gomock.Any(), "f", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer, _ func(written, total int64)) error {
			<-release
			_, err := w.Write([]byte("x"))
			return err
		})

	m.Enqueue(models.FileDownloadTask{UUID: "f", PendingEtag: "e1"})

	// the worker stays running while the download is in flight even though
	// the queue itself is already empty
	require.Eventually(t, func() bool {
		m.mu.Lock()
		defer m.mu.Unlock()
		return len(m.queue) == 0 && m.running
	}, 2*time.Second, time.Millisecond)

	m.Enqueue(models.FileDownloadTask{UUID: "f", PendingEtag: "e2"})
	m.Enqueue(models.FileDownloadTask{UUID: "f", PendingEtag: "e3"})

	m.mu.Lock()
	queued := len(m.queue)
	pending := m.queue[0].PendingEtag
	m.mu.Unlock()
	assert.Equal(t, 1, queued, "same uuid is queued once")
	assert.Equal(t, "e3", pending, "waiting task takes over the newer etag")

	server.EXPECT().DownloadTableObjectFile(gomock.Any(), "f", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer, _ func(written, total int64)) error {
			_, err := w.Write([]byte("y"))
			return err
		})
	close(release)
	waitIdle(t, m)

	f, _ := storage.get("f")
	assert.Equal(t, "e3", f.Etag, "newest pending etag committed")
}

func TestFileTransferManager_ProgressListeners(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, storage, _, server, _ := newTestFileManager(t, ctrl, 1)
	ctx := context.Background()

	_, err := storage.SaveTableObject(ctx, models.TableObject{
		UUID: "f", TableID: 1, IsFile: true,
	})
	require.NoError(t, err)

	var mu sync.Mutex
	var seen []int
	m.AddProgressListener("f", func(percent int) {
		mu.Lock()
		seen = append(seen, percent)
		mu.Unlock()
	})

	server.EXPECT().DownloadTableObjectFile(gomock.Any(), "f", gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer, progress func(written, total int64)) error {
			progress(25, 100)
			progress(100, 100)
			_, err := w.Write([]byte("x"))
			return err
		})

	m.Enqueue(models.FileDownloadTask{UUID: "f"})
	waitIdle(t, m)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []int{25, 100}, seen)
}

func mustOpen(t *testing.T, blobs *fakeBlobs, uuid string) io.ReadCloser {
	t.Helper()
	r, err := blobs.Open(uuid)
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}
