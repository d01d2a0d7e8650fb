package service

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/models"
)

// fakeStorage is an in-memory LocalStorage. Simpler than a mockgen mock for
// scenario tests that walk through many records.
type fakeStorage struct {
	mu      sync.Mutex
	nextID  int64
	objects map[string]models.TableObject
	order   []string
	etags   map[int]string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{
		objects: make(map[string]models.TableObject),
		etags:   make(map[int]string),
	}
}

func (f *fakeStorage) GetAllTableObjects(_ context.Context, tableID int, includeDeleted bool) ([]models.TableObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.TableObject, 0, len(f.order))
	for _, uuid := range f.order {
		obj := f.objects[uuid]
		if tableID != 0 && obj.TableID != tableID {
			continue
		}
		if !includeDeleted && obj.UploadStatus == models.UploadStatusDeleted {
			continue
		}
		out = append(out, obj)
	}
	return out, nil
}

func (f *fakeStorage) GetTableObject(_ context.Context, uuid string) (models.TableObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[uuid]
	if !ok {
		return models.TableObject{}, store.ErrTableObjectNotFound
	}
	return obj, nil
}

func (f *fakeStorage) TableObjectExists(_ context.Context, uuid string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[uuid]
	return ok, nil
}

func (f *fakeStorage) SaveTableObject(_ context.Context, obj models.TableObject) (models.TableObject, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.objects[obj.UUID]
	if ok {
		obj.ID = existing.ID
	} else {
		f.nextID++
		obj.ID = f.nextID
		f.order = append(f.order, obj.UUID)
	}
	f.objects[obj.UUID] = obj
	return obj, nil
}

func (f *fakeStorage) DeleteTableObject(_ context.Context, uuid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.objects[uuid]; !ok {
		return nil
	}
	delete(f.objects, uuid)
	for i, u := range f.order {
		if u == uuid {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeStorage) TableEtag(_ context.Context, tableID int) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.etags[tableID], nil
}

func (f *fakeStorage) SetTableEtag(_ context.Context, tableID int, etag string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.etags[tableID] = etag
	return nil
}

// get is a test convenience, bypassing the error return.
func (f *fakeStorage) get(uuid string) (models.TableObject, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	obj, ok := f.objects[uuid]
	return obj, ok
}

func (f *fakeStorage) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

// fakeBlobs is an in-memory BlobStorage with the same atomic-save contract as
// the real one.
type fakeBlobs struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{data: make(map[string][]byte)}
}

func (f *fakeBlobs) Save(uuid string, fill func(w io.Writer) error) error {
	var buf bytes.Buffer
	if err := fill(&buf); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[uuid] = buf.Bytes()
	return nil
}

func (f *fakeBlobs) Open(uuid string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.data[uuid]
	if !ok {
		return nil, store.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(content)), nil
}

func (f *fakeBlobs) Path(uuid string) string {
	return "/blobs/" + uuid
}

func (f *fakeBlobs) Exists(uuid string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.data[uuid]
	return ok
}

func (f *fakeBlobs) Size(uuid string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	content, ok := f.data[uuid]
	if !ok {
		return 0, store.ErrBlobNotFound
	}
	return int64(len(content)), nil
}

func (f *fakeBlobs) Remove(uuid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, uuid)
	return nil
}

func (f *fakeBlobs) put(uuid string, content []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[uuid] = content
}

type settledEvent struct {
	tableID  int
	changed  bool
	complete bool
}

type updatedEvent struct {
	obj          models.TableObject
	fromDownload bool
}

// recordingCallbacks captures every notification for assertions.
type recordingCallbacks struct {
	mu       sync.Mutex
	updated  []updatedEvent
	deleted  []string
	settled  []settledEvent
	progress map[string][]int
	finished []bool
	users    []models.User
}

func newRecordingCallbacks() *recordingCallbacks {
	return &recordingCallbacks{progress: make(map[string][]int)}
}

func (c *recordingCallbacks) OnRecordUpdated(obj models.TableObject, fromFileDownload bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updated = append(c.updated, updatedEvent{obj: obj, fromDownload: fromFileDownload})
}

func (c *recordingCallbacks) OnRecordDeleted(uuid string, _ int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleted = append(c.deleted, uuid)
}

func (c *recordingCallbacks) OnTableSettled(tableID int, changed, complete bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settled = append(c.settled, settledEvent{tableID: tableID, changed: changed, complete: complete})
}

func (c *recordingCallbacks) OnDownloadProgress(uuid string, percent int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.progress[uuid] = append(c.progress[uuid], percent)
}

func (c *recordingCallbacks) OnUserSyncFinished(user models.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.users = append(c.users, user)
}

func (c *recordingCallbacks) OnSyncFinished(ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.finished = append(c.finished, ok)
}

func (c *recordingCallbacks) updatedEvents() []updatedEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]updatedEvent(nil), c.updated...)
}

func (c *recordingCallbacks) deletedUUIDs() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.deleted...)
}

func (c *recordingCallbacks) settledEvents() []settledEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]settledEvent(nil), c.settled...)
}

func (c *recordingCallbacks) progressFor(uuid string) []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]int(nil), c.progress[uuid]...)
}

// stubFiles records download tasks without running any.
type stubFiles struct {
	mu    sync.Mutex
	tasks []models.FileDownloadTask
}

func (s *stubFiles) Enqueue(task models.FileDownloadTask) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, task)
}

func (s *stubFiles) AddProgressListener(string, func(percent int)) {}
func (s *stubFiles) RemoveProgressListeners(string)                {}

func (s *stubFiles) enqueued() []models.FileDownloadTask {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.FileDownloadTask(nil), s.tasks...)
}
