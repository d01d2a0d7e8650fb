package service

import (
	"errors"

	"github.com/dkozyrev/tablesync/internal/adapter"
	"github.com/dkozyrev/tablesync/models"
)

// PushEvent classifies the outcome of a single push request.
type PushEvent int

const (
	PushSucceeded PushEvent = iota
	// PushConflictUUIDExists: a create was rejected because the uuid is
	// already taken, meaning another device created the record first.
	PushConflictUUIDExists
	// PushRemoteMissing: an update or delete targeted a record the backend
	// no longer has.
	PushRemoteMissing
	// PushNotAllowed: the backend refused the operation for this session.
	PushNotAllowed
	// PushFailed covers transport errors and every other failure; the
	// record is left untouched and retried on the next pass.
	PushFailed
)

// PushEffect tells the push engine what to do with the record after a
// transition.
type PushEffect int

const (
	// EffectNone leaves the record as is.
	EffectNone PushEffect = iota
	// EffectSave persists the record with the returned status.
	EffectSave
	// EffectPurge hard-deletes the record and its blob locally.
	EffectPurge
)

// Transition maps the current upload status and a push outcome to the next
// status and the local effect. A record created elsewhere under the same uuid
// is assumed identical and marked UpToDate without a re-fetch.
func Transition(status models.UploadStatus, event PushEvent) (models.UploadStatus, PushEffect) {
	switch status {
	case models.UploadStatusNew:
		switch event {
		case PushSucceeded, PushConflictUUIDExists:
			return models.UploadStatusUpToDate, EffectSave
		}
	case models.UploadStatusUpdated:
		switch event {
		case PushSucceeded:
			return models.UploadStatusUpToDate, EffectSave
		case PushRemoteMissing:
			return status, EffectPurge
		}
	case models.UploadStatusDeleted:
		switch event {
		case PushSucceeded, PushRemoteMissing, PushNotAllowed:
			return status, EffectPurge
		}
	}
	return status, EffectNone
}

// pushEvent translates an adapter error into the event driving Transition.
func pushEvent(err error) PushEvent {
	switch {
	case err == nil:
		return PushSucceeded
	case errors.Is(err, adapter.ErrUuidAlreadyInUse):
		return PushConflictUUIDExists
	case errors.Is(err, adapter.ErrTableObjectDoesNotExist),
		errors.Is(err, adapter.ErrNotFound):
		return PushRemoteMissing
	case errors.Is(err, adapter.ErrActionNotAllowed):
		return PushNotAllowed
	default:
		return PushFailed
	}
}

// localEditStatus is the status a record takes after a user-facing mutation.
// Records not yet uploaded stay New, records excluded from upload stay
// NoUpload, everything else becomes Updated.
func localEditStatus(status models.UploadStatus) models.UploadStatus {
	switch status {
	case models.UploadStatusNew, models.UploadStatusNoUpload:
		return status
	default:
		return models.UploadStatusUpdated
	}
}
