package models

// TableObjectHead is the lightweight per-record descriptor returned by a
// table page listing. The etag is the sole change-detection signal: a
// mismatch with the locally stored etag means "refetch this record".
type TableObjectHead struct {
	UUID string `json:"uuid"`
	Etag string `json:"etag"`
}

// TableResponse is one page of a table listing.
type TableResponse struct {
	// TableID identifies the listed table.
	TableID int `json:"table_id"`

	// Etag is the table-level etag. It only changes when something in the
	// table changed, so the client can skip an entire pull of the table when
	// it equals the stored cursor.
	Etag string `json:"etag"`

	// Pages is the total number of pages in the listing.
	Pages int `json:"pages"`

	// TableObjects holds the (uuid, etag) pairs of this page.
	TableObjects []TableObjectHead `json:"table_objects"`
}

// TableObjectResponse is a full record fetch or mutation result.
type TableObjectResponse struct {
	ID         int64             `json:"id"`
	UUID       string            `json:"uuid"`
	TableID    int               `json:"table_id"`
	Visibility Visibility        `json:"visibility"`
	IsFile     bool              `json:"file"`
	Etag       string            `json:"etag"`
	Properties map[string]string `json:"properties"`

	// TableEtag is the table-level etag after this operation, so a client
	// that just mutated a record can update its cursor without re-listing.
	TableEtag string `json:"table_etag"`
}

// TableObject converts the wire representation into the local record shape.
// UploadStatus is left at its zero value (UpToDate): a record materialised
// from the server needs no upload.
func (r TableObjectResponse) TableObject() TableObject {
	return TableObject{
		UUID:       r.UUID,
		TableID:    r.TableID,
		Visibility: r.Visibility,
		IsFile:     r.IsFile,
		Etag:       r.Etag,
		Properties: PropertiesFromMap(r.Properties),
	}
}

// CreateTableObjectRequest is the payload of a record creation call.
type CreateTableObjectRequest struct {
	UUID       string            `json:"uuid"`
	TableID    int               `json:"table_id"`
	Visibility Visibility        `json:"visibility"`
	IsFile     bool              `json:"file"`
	Properties map[string]string `json:"properties,omitempty"`
}

// UpdateTableObjectRequest is the payload of a record update call.
type UpdateTableObjectRequest struct {
	UUID       string            `json:"-"`
	Visibility *Visibility       `json:"visibility,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// SessionResponse is returned by the session renewal endpoint.
type SessionResponse struct {
	AccessToken string `json:"access_token"`
}
