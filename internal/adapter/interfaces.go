package adapter

import (
	"context"
	"io"

	"github.com/dkozyrev/tablesync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the outbound REST contract of the backend API. Every
// authenticated call transparently renews an expired access token once and
// retries; a second failure is surfaced as-is.
type ServerAdapter interface {
	// SetToken stores the access token used for all subsequent calls.
	SetToken(token string)

	// Token returns the access token currently held by the adapter.
	Token() string

	// GetTable fetches one page of the table listing.
	GetTable(ctx context.Context, tableID, page int) (models.TableResponse, error)

	// GetTableObject fetches a full record with its properties.
	GetTableObject(ctx context.Context, uuid string) (models.TableObjectResponse, error)

	// CreateTableObject creates a record under its client-generated uuid.
	// Returns ErrUuidAlreadyInUse when another device won the creation race.
	CreateTableObject(ctx context.Context, req models.CreateTableObjectRequest) (models.TableObjectResponse, error)

	// UpdateTableObject replaces the record's properties (and visibility when
	// set). Returns ErrTableObjectDoesNotExist when the record vanished
	// remotely.
	UpdateTableObject(ctx context.Context, req models.UpdateTableObjectRequest) (models.TableObjectResponse, error)

	// DeleteTableObject removes the record remotely. Returns
	// ErrTableObjectDoesNotExist or ErrActionNotAllowed as structured
	// sentinels.
	DeleteTableObject(ctx context.Context, uuid string) error

	// SetTableObjectFile uploads the blob content of a file-backed record.
	SetTableObjectFile(ctx context.Context, uuid, filePath, contentType string) (models.TableObjectResponse, error)

	// DownloadTableObjectFile streams the blob of a file-backed record into
	// w, reporting incremental progress when the callback is non-nil. The
	// total passed to progress is -1 when the server did not announce a
	// content length.
	DownloadTableObjectFile(ctx context.Context, uuid string, w io.Writer, progress func(written, total int64)) error

	// GetUser fetches the account, including its storage quota.
	GetUser(ctx context.Context) (models.User, error)
}

// LiveChannel is a long-lived subscription to the server-pushed update
// channel. Reconnection policy is owned by the caller; a broken subscription
// simply closes the returned channel.
type LiveChannel interface {
	// Subscribe opens the named channel and returns the stream of frames.
	// The stream is closed when the connection drops or ctx is cancelled.
	Subscribe(ctx context.Context, channel string) (<-chan models.ChannelMessage, error)

	// Close tears the connection down.
	Close() error
}
