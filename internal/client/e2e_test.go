package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkozyrev/tablesync/internal/adapter"
	"github.com/dkozyrev/tablesync/internal/config"
	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/service"
	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/models"
)

// fakeBackend is an in-memory rendition of the server API, enough to drive a
// real adapter and real SQLite storage through full sync rounds.
type fakeBackend struct {
	mu        sync.Mutex
	tableEtag string
	records   map[string]models.TableObjectResponse
	order     []string

	objectFetches int
	creates       int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		tableEtag: "table-v1",
		records:   make(map[string]models.TableObjectResponse),
	}
}

func (b *fakeBackend) put(rec models.TableObjectResponse) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.records[rec.UUID]; !ok {
		b.order = append(b.order, rec.UUID)
	}
	b.records[rec.UUID] = rec
}

func (b *fakeBackend) bumpTableEtag(etag string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tableEtag = etag
}

func (b *fakeBackend) router() http.Handler {
	r := chi.NewRouter()

	r.Get("/v1/table/{tableID}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		heads := make([]models.TableObjectHead, 0, len(b.order))
		for _, uuid := range b.order {
			rec := b.records[uuid]
			heads = append(heads, models.TableObjectHead{UUID: rec.UUID, Etag: rec.Etag})
		}
		_ = json.NewEncoder(w).Encode(models.TableResponse{
			TableID:      1,
			Etag:         b.tableEtag,
			Pages:        1,
			TableObjects: heads,
		})
	})

	r.Get("/v1/table_object/{uuid}", func(w http.ResponseWriter, req *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.objectFetches++
		rec, ok := b.records[chi.URLParam(req, "uuid")]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(rec)
	})

	r.Post("/v1/table_object", func(w http.ResponseWriter, req *http.Request) {
		var create models.CreateTableObjectRequest
		if err := json.NewDecoder(req.Body).Decode(&create); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b.mu.Lock()
		defer b.mu.Unlock()
		b.creates++
		rec := models.TableObjectResponse{
			UUID:       create.UUID,
			TableID:    create.TableID,
			Visibility: create.Visibility,
			IsFile:     create.IsFile,
			Etag:       "etag-" + create.UUID,
			Properties: create.Properties,
		}
		b.records[create.UUID] = rec
		b.order = append(b.order, create.UUID)
		b.tableEtag = "table-after-" + create.UUID
		_ = json.NewEncoder(w).Encode(rec)
	})

	r.Get("/v1/user", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(models.User{ID: 1, Email: "dev@example.com"})
	})

	return r
}

func newE2EServices(t *testing.T, baseURL string) (*service.Services, *store.ClientStorages) {
	t.Helper()
	log := logger.Nop()

	dir := t.TempDir()
	storages, err := store.NewClientStorages(config.Storage{
		DB:    config.DB{DSN: filepath.Join(dir, "client.db")},
		Files: config.Files{BlobDir: filepath.Join(dir, "blobs")},
	}, log)
	require.NoError(t, err)

	server, err := adapter.NewHTTPServerAdapter(config.API{BaseURL: baseURL}, log)
	require.NoError(t, err)
	server.SetToken("test-token")

	cfg := config.Sync{TableIDs: []int{1}, DownloadConcurrency: 1}
	files := service.NewFileTransferManager(
		storages.TableObjects, storages.Blobs, server, 1, nil, log)
	syncSvc := service.NewSyncService(storages, server, files, cfg, nil, log)

	return &service.Services{
		SyncService:  syncSvc,
		TableObjects: service.NewTableObjectService(storages, nil, log),
		FileTransfer: files,
	}, storages
}

func TestClient_FullSyncAgainstFakeBackend(t *testing.T) {
	backend := newFakeBackend()
	backend.put(models.TableObjectResponse{
		UUID: "remote-a", TableID: 1, Etag: "etag-a1",
		Properties: map[string]string{"title": "first"},
	})
	backend.put(models.TableObjectResponse{
		UUID: "remote-b", TableID: 1, Etag: "etag-b1",
		Properties: map[string]string{"title": "second"},
	})

	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	services, storages := newE2EServices(t, srv.URL)
	ctx := context.Background()

	ok, err := services.SyncService.Sync(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	local, err := storages.TableObjects.GetAllTableObjects(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, local, 2)
	assert.Equal(t, "first", local[0].GetPropertyValue("title"))
	fetchesAfterFirst := backend.objectFetches

	// remote edit of one record: only that record is refetched
	backend.put(models.TableObjectResponse{
		UUID: "remote-b", TableID: 1, Etag: "etag-b2",
		Properties: map[string]string{"title": "second edited"},
	})
	backend.bumpTableEtag("table-v2")

	ok, err = services.SyncService.Sync(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fetchesAfterFirst+1, backend.objectFetches)

	b, err := storages.TableObjects.GetTableObject(ctx, "remote-b")
	require.NoError(t, err)
	assert.Equal(t, "etag-b2", b.Etag)
	assert.Equal(t, "second edited", b.GetPropertyValue("title"))

	// an unchanged backend short-circuits the whole table
	ok, err = services.SyncService.Sync(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, fetchesAfterFirst+1, backend.objectFetches)
}

func TestClient_LocalCreateIsPushed(t *testing.T) {
	backend := newFakeBackend()
	srv := httptest.NewServer(backend.router())
	defer srv.Close()

	services, storages := newE2EServices(t, srv.URL)
	ctx := context.Background()

	created, err := services.TableObjects.Create(ctx, service.CreateParams{
		TableID:    1,
		Properties: map[string]string{"title": "local note"},
	})
	require.NoError(t, err)

	ok, err := services.SyncService.Sync(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, backend.creates)

	pushed, err := storages.TableObjects.GetTableObject(ctx, created.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.UploadStatusUpToDate, pushed.UploadStatus)
	assert.Equal(t, "etag-"+created.UUID, pushed.Etag)
}
