package models

// Visibility is the access scope of a table object. Sync logic round-trips it
// without interpreting it.
type Visibility int

const (
	VisibilityPrivate Visibility = iota
	VisibilityProtected
	VisibilityPublic
)

// UploadStatus marks what the push engine still has to do for a record.
// The zero value is UpToDate so records materialised from a pull need no
// explicit status assignment.
type UploadStatus int

const (
	// UploadStatusUpToDate means the record matches the server copy.
	UploadStatusUpToDate UploadStatus = iota
	// UploadStatusNew means the record was created locally and never uploaded.
	UploadStatusNew
	// UploadStatusUpdated means the record has local edits not yet pushed.
	UploadStatusUpdated
	// UploadStatusDeleted means the record is soft-deleted locally and the
	// remote delete is still pending.
	UploadStatusDeleted
	// UploadStatusNoUpload marks a local-only record that sync must never
	// send, delete remotely, or reconcile. Terminal; entered only by explicit
	// app choice.
	UploadStatusNoUpload
)

func (s UploadStatus) String() string {
	switch s {
	case UploadStatusUpToDate:
		return "UpToDate"
	case UploadStatusNew:
		return "New"
	case UploadStatusUpdated:
		return "Updated"
	case UploadStatusDeleted:
		return "Deleted"
	case UploadStatusNoUpload:
		return "NoUpload"
	default:
		return "Unknown"
	}
}

// PropertyNameExtension holds the file extension of a file-backed record.
// It is the only property kept when file metadata is persisted during a pull.
const PropertyNameExtension = "ext"

// TableObject is a versioned record belonging to a logical table.
//
// ID is the local surrogate key assigned by the local store and is never sent
// to the server. UUID is the client-generated, globally unique identity shared
// across devices; it is immutable after creation. Etag is the opaque version
// stamp assigned by the server — a changed etag means "refetch this".
type TableObject struct {
	ID           int64
	UUID         string
	TableID      int
	Visibility   Visibility
	IsFile       bool
	Etag         string
	UploadStatus UploadStatus
	Properties   Properties
}

// GetPropertyValue returns the value of the named property, or "" if the
// record has no such property.
func (t *TableObject) GetPropertyValue(name string) string {
	v, _ := t.Properties.Get(name)
	return v
}

// SetPropertyValue inserts or updates the named property.
func (t *TableObject) SetPropertyValue(name, value string) {
	t.Properties.Set(name, value)
}

// FileExtension returns the stored file extension of a file-backed record.
func (t *TableObject) FileExtension() string {
	return t.GetPropertyValue(PropertyNameExtension)
}
