package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/dkozyrev/tablesync/internal/adapter"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/models"
)

type fileTransferManager struct {
	storage   store.LocalStorage
	blobs     store.BlobStorage
	server    adapter.ServerAdapter
	callbacks Callbacks
	log       *logger.Logger
	sem       chan struct{}

	mu        sync.Mutex
	queue     []models.FileDownloadTask
	queued    map[string]bool
	running   bool
	inFlight  int
	listeners map[string][]func(percent int)
}

// NewFileTransferManager builds the background blob downloader. limit bounds
// how many downloads run at once; values below 1 mean one at a time.
func NewFileTransferManager(
	storage store.LocalStorage,
	blobs store.BlobStorage,
	server adapter.ServerAdapter,
	limit int,
	callbacks Callbacks,
	log *logger.Logger,
) FileTransferManager {
	if callbacks == nil {
		callbacks = NopCallbacks{}
	}
	if limit < 1 {
		limit = 1
	}
	return &fileTransferManager{
		storage:   storage,
		blobs:     blobs,
		server:    server,
		callbacks: callbacks,
		log:       log,
		sem:       make(chan struct{}, limit),
		queued:    make(map[string]bool),
		listeners: make(map[string][]func(percent int)),
	}
}

// Enqueue appends the task and wakes the drain loop when it is idle. A uuid
// already waiting in the queue is not queued twice; the waiting task takes
// over the newer pending etag so the latest known version gets committed.
func (m *fileTransferManager) Enqueue(task models.FileDownloadTask) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.queued[task.UUID] {
		for i := range m.queue {
			if m.queue[i].UUID == task.UUID {
				m.queue[i].PendingEtag = task.PendingEtag
				break
			}
		}
		return
	}
	m.queued[task.UUID] = true
	m.queue = append(m.queue, task)
	if !m.running {
		m.running = true
		go m.drain()
	}
}

func (m *fileTransferManager) AddProgressListener(uuid string, fn func(percent int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners[uuid] = append(m.listeners[uuid], fn)
}

func (m *fileTransferManager) RemoveProgressListeners(uuid string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.listeners, uuid)
}

// drain processes the queue in FIFO order, running at most limit downloads
// concurrently, and parks itself only once the queue is empty and no download
// is in flight, so running always reflects active work. The next Enqueue
// restarts it. The semaphore is shared across drain generations so the limit
// holds even when a new drain starts while old downloads are still finishing.
func (m *fileTransferManager) drain() {
	var wg sync.WaitGroup
	for {
		m.mu.Lock()
		if len(m.queue) == 0 {
			if m.inFlight == 0 {
				m.running = false
				m.mu.Unlock()
				return
			}
			// downloads still in flight; wait for them, then re-check the
			// queue for tasks enqueued meanwhile
			m.mu.Unlock()
			wg.Wait()
			continue
		}
		task := m.queue[0]
		m.queue = m.queue[1:]
		delete(m.queued, task.UUID)
		m.inFlight++
		m.mu.Unlock()

		m.sem <- struct{}{}
		wg.Add(1)
		go func(task models.FileDownloadTask) {
			defer wg.Done()
			defer func() {
				<-m.sem
				m.mu.Lock()
				m.inFlight--
				m.mu.Unlock()
			}()
			m.process(context.Background(), task)
		}(task)
	}
}

// process downloads one blob. The pending etag is committed only after the
// blob is fully on disk; any failure drops the task and leaves the record
// stale so the next pull re-queues it.
func (m *fileTransferManager) process(ctx context.Context, task models.FileDownloadTask) {
	obj, err := m.storage.GetTableObject(ctx, task.UUID)
	if errors.Is(err, store.ErrTableObjectNotFound) {
		// purged while waiting in the queue
		return
	}
	if err != nil {
		m.log.Error().Err(err).Str("uuid", task.UUID).
			Str("func", "fileTransferManager.process").Msg("record lookup failed")
		return
	}
	if !obj.IsFile {
		return
	}

	err = m.blobs.Save(task.UUID, func(w io.Writer) error {
		return m.server.DownloadTableObjectFile(ctx, task.UUID, w, func(written, total int64) {
			m.reportProgress(task.UUID, written, total)
		})
	})
	if err != nil {
		m.log.Error().Err(err).Str("uuid", task.UUID).
			Str("func", "fileTransferManager.process").Msg("blob download failed")
		return
	}

	if task.PendingEtag != "" {
		obj.Etag = task.PendingEtag
		obj, err = m.storage.SaveTableObject(ctx, obj)
		if err != nil {
			m.log.Error().Err(err).Str("uuid", task.UUID).
				Str("func", "fileTransferManager.process").Msg("committing etag failed")
			return
		}
	}
	m.callbacks.OnRecordUpdated(obj, true)
}

func (m *fileTransferManager) reportProgress(uuid string, written, total int64) {
	if total <= 0 {
		return
	}
	percent := int(written * 100 / total)
	if percent > 100 {
		percent = 100
	}
	m.callbacks.OnDownloadProgress(uuid, percent)

	m.mu.Lock()
	fns := append([]func(percent int){}, m.listeners[uuid]...)
	m.mu.Unlock()
	for _, fn := range fns {
		fn(percent)
	}
}
