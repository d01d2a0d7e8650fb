package service

import (
	"context"

	"github.com/dkozyrev/tablesync/models"
)

// blobContentType is sent with every file upload; record properties carry the
// real extension.
const blobContentType = "application/octet-stream"

// pushPending uploads every record whose status is neither UpToDate nor
// NoUpload, newest first. A failed record is left in place for the next pass;
// the rest of the batch still runs.
func (s *syncService) pushPending(ctx context.Context) error {
	objects, err := s.storage.GetAllTableObjects(ctx, 0, true)
	if err != nil {
		return err
	}

	// newest first, so a delete of a freshly created record wins the race
	// against its own create
	for i := len(objects) - 1; i >= 0; i-- {
		obj := objects[i]

		var (
			resp    models.TableObjectResponse
			pushErr error
		)
		switch obj.UploadStatus {
		case models.UploadStatusNew, models.UploadStatusUpdated:
			if obj.IsFile && s.blobs.Exists(obj.UUID) && !s.fitsQuota(obj.UUID) {
				s.log.Warn().Str("uuid", obj.UUID).
					Str("func", "syncService.pushPending").Msg("storage quota exceeded, upload skipped")
				continue
			}
			if obj.UploadStatus == models.UploadStatusNew {
				resp, pushErr = s.pushCreate(ctx, obj)
			} else {
				resp, pushErr = s.pushUpdate(ctx, obj)
			}
		case models.UploadStatusDeleted:
			pushErr = s.server.DeleteTableObject(ctx, obj.UUID)
		default:
			continue
		}

		status, effect := Transition(obj.UploadStatus, pushEvent(pushErr))
		switch effect {
		case EffectSave:
			obj.UploadStatus = status
			if resp.Etag != "" {
				obj.Etag = resp.Etag
			}
			if _, err := s.storage.SaveTableObject(ctx, obj); err != nil {
				s.log.Error().Err(err).Str("uuid", obj.UUID).
					Str("func", "syncService.pushPending").Msg("saving pushed record failed")
			}
		case EffectPurge:
			if err := s.purge(ctx, obj); err != nil {
				s.log.Error().Err(err).Str("uuid", obj.UUID).
					Str("func", "syncService.pushPending").Msg("purging record failed")
			}
		default:
			if pushErr != nil {
				s.log.Error().Err(pushErr).Str("uuid", obj.UUID).
					Stringer("status", obj.UploadStatus).
					Str("func", "syncService.pushPending").Msg("push failed, will retry")
			}
		}
	}
	return nil
}

func (s *syncService) pushCreate(ctx context.Context, obj models.TableObject) (models.TableObjectResponse, error) {
	resp, err := s.server.CreateTableObject(ctx, models.CreateTableObjectRequest{
		UUID:       obj.UUID,
		TableID:    obj.TableID,
		Visibility: obj.Visibility,
		IsFile:     obj.IsFile,
		Properties: obj.Properties.Map(),
	})
	if err != nil {
		return resp, err
	}
	if obj.IsFile && s.blobs.Exists(obj.UUID) {
		return s.server.SetTableObjectFile(ctx, obj.UUID, s.blobs.Path(obj.UUID), blobContentType)
	}
	return resp, nil
}

func (s *syncService) pushUpdate(ctx context.Context, obj models.TableObject) (models.TableObjectResponse, error) {
	if obj.IsFile && s.blobs.Exists(obj.UUID) {
		if _, err := s.server.SetTableObjectFile(ctx, obj.UUID, s.blobs.Path(obj.UUID), blobContentType); err != nil {
			return models.TableObjectResponse{}, err
		}
	}
	visibility := obj.Visibility
	return s.server.UpdateTableObject(ctx, models.UpdateTableObjectRequest{
		UUID:       obj.UUID,
		Visibility: &visibility,
		Properties: obj.Properties.Map(),
	})
}

// fitsQuota reports whether the blob of uuid fits into the account's
// remaining storage. Unknown quota (no user synced yet, or an unlimited
// account) admits the upload; the server enforces the real limit.
func (s *syncService) fitsQuota(uuid string) bool {
	size, err := s.blobs.Size(uuid)
	if err != nil {
		return true
	}
	return s.cachedUser().StorageFits(size)
}
