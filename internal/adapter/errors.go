package adapter

import "errors"

var (
	ErrUnauthorized = errors.New("client unauthorized")
	ErrNotFound     = errors.New("resource not found")
	ErrBadRequest   = errors.New("bad request")
	ErrServer       = errors.New("server error")

	// ErrSessionExpired maps the "access token must be renewed" API code.
	// The adapter resolves it internally by renewing once; callers only see
	// it when renewal itself failed.
	ErrSessionExpired = errors.New("access token must be renewed")

	// ErrUuidAlreadyInUse maps the create conflict: another device already
	// created a record with this uuid.
	ErrUuidAlreadyInUse = errors.New("uuid already in use")

	// ErrTableObjectDoesNotExist maps updates or deletes of a record the
	// server no longer knows.
	ErrTableObjectDoesNotExist = errors.New("table object does not exist")

	// ErrActionNotAllowed maps operations the session may not perform.
	ErrActionNotAllowed = errors.New("action not allowed")
)
