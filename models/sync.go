package models

// TableFetch is the complete per-table bookkeeping of one pull run: the
// table-level etag seen on page one, how many pages the listing has, the
// page cursor, every (uuid, etag) pair seen so far, and whether all pages
// were fetched without a transport failure.
//
// Remote-deletion reconciliation must only run on a table whose Succeeded
// flag is still true: an incomplete listing must never destroy local data.
type TableFetch struct {
	TableID     int
	Etag        string
	Pages       int
	CurrentPage int
	Objects     []TableObjectHead
	Succeeded   bool

	// Changed tracks whether any record of the table was created, updated
	// or deleted during this run.
	Changed bool

	// Skipped is set when the table-level etag matched the stored cursor and
	// the whole table was short-circuited.
	Skipped bool
}

// Seen reports whether the listing contained the given uuid on any page.
func (f *TableFetch) Seen(uuid string) bool {
	for _, head := range f.Objects {
		if head.UUID == uuid {
			return true
		}
	}
	return false
}

// FileDownloadTask is one queued blob download. PendingEtag, when non-empty,
// is the record version to commit locally only once the blob transfer
// succeeds — never before. Tasks live only for the process lifetime.
type FileDownloadTask struct {
	UUID        string
	PendingEtag string
}
