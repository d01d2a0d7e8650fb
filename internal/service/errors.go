package service

import "errors"

var (
	// ErrRecordDeleted is returned when a mutation targets a record already
	// soft-deleted locally.
	ErrRecordDeleted = errors.New("record is deleted")

	// ErrNotAFileRecord is returned when file content is written to a record
	// that does not carry a file.
	ErrNotAFileRecord = errors.New("record does not carry a file")
)
