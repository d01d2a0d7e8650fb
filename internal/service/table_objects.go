package service

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/dkozyrev/tablesync/internal/logger"
	"github.com/dkozyrev/tablesync/internal/store"
	"github.com/dkozyrev/tablesync/internal/validators"
	"github.com/dkozyrev/tablesync/models"
)

// pushTrigger is the slice of SyncService the mutation surface needs.
type pushTrigger interface {
	TriggerPush()
}

type tableObjectService struct {
	storage   store.LocalStorage
	blobs     store.BlobStorage
	pusher    pushTrigger
	validator validators.Validator
	log       *logger.Logger
}

// NewTableObjectService builds the user-facing record mutation service. Every
// successful mutation schedules a background push; pusher may be nil in
// offline setups.
func NewTableObjectService(storages *store.ClientStorages, pusher pushTrigger, log *logger.Logger) TableObjectService {
	return &tableObjectService{
		storage:   storages.TableObjects,
		blobs:     storages.Blobs,
		pusher:    pusher,
		validator: validators.NewTableObjectValidator(),
		log:       log,
	}
}

func (s *tableObjectService) Create(ctx context.Context, params CreateParams) (models.TableObject, error) {
	id := params.UUID
	if id == "" {
		id = uuid.NewString()
	}

	obj := models.TableObject{
		UUID:         id,
		TableID:      params.TableID,
		Visibility:   params.Visibility,
		IsFile:       params.IsFile,
		UploadStatus: models.UploadStatusNew,
		Properties:   models.PropertiesFromMap(params.Properties),
	}
	err := s.validator.Validate(ctx, obj,
		validators.FieldTableID, validators.FieldVisibility, validators.FieldProperties)
	if err != nil {
		return models.TableObject{}, err
	}

	saved, err := s.storage.SaveTableObject(ctx, obj)
	if err != nil {
		return models.TableObject{}, err
	}

	// a file record is pushed once its content arrives via SetFile
	if !saved.IsFile {
		s.triggerPush()
	}
	return saved, nil
}

func (s *tableObjectService) Get(ctx context.Context, uuid string) (models.TableObject, error) {
	return s.storage.GetTableObject(ctx, uuid)
}

func (s *tableObjectService) List(ctx context.Context, tableID int) ([]models.TableObject, error) {
	return s.storage.GetAllTableObjects(ctx, tableID, false)
}

func (s *tableObjectService) SetProperty(ctx context.Context, uuid, name, value string) (models.TableObject, error) {
	if err := s.validator.Validate(ctx, models.Property{Name: name, Value: value}); err != nil {
		return models.TableObject{}, err
	}

	obj, err := s.mutable(ctx, uuid)
	if err != nil {
		return models.TableObject{}, err
	}

	obj.SetPropertyValue(name, value)
	obj.UploadStatus = localEditStatus(obj.UploadStatus)
	saved, err := s.storage.SaveTableObject(ctx, obj)
	if err != nil {
		return models.TableObject{}, err
	}
	s.triggerPush()
	return saved, nil
}

func (s *tableObjectService) SetFile(ctx context.Context, uuid, ext string, content io.Reader) (models.TableObject, error) {
	obj, err := s.mutable(ctx, uuid)
	if err != nil {
		return models.TableObject{}, err
	}
	if !obj.IsFile {
		return models.TableObject{}, ErrNotAFileRecord
	}

	err = s.blobs.Save(uuid, func(w io.Writer) error {
		_, copyErr := io.Copy(w, content)
		return copyErr
	})
	if err != nil {
		return models.TableObject{}, err
	}

	obj.SetPropertyValue(models.PropertyNameExtension, ext)
	obj.UploadStatus = localEditStatus(obj.UploadStatus)
	saved, err := s.storage.SaveTableObject(ctx, obj)
	if err != nil {
		return models.TableObject{}, err
	}
	s.triggerPush()
	return saved, nil
}

// Delete soft-marks the record; the push engine performs the remote delete
// and purges it locally. A record the server never saw is purged right away.
func (s *tableObjectService) Delete(ctx context.Context, uuid string) error {
	obj, err := s.storage.GetTableObject(ctx, uuid)
	if err != nil {
		return err
	}

	if obj.UploadStatus == models.UploadStatusNew || obj.UploadStatus == models.UploadStatusNoUpload {
		if err := s.storage.DeleteTableObject(ctx, uuid); err != nil {
			return err
		}
		if obj.IsFile {
			if err := s.blobs.Remove(uuid); err != nil {
				s.log.Warn().Err(err).Str("uuid", uuid).
					Str("func", "tableObjectService.Delete").Msg("removing blob failed")
			}
		}
		return nil
	}

	obj.UploadStatus = models.UploadStatusDeleted
	if _, err := s.storage.SaveTableObject(ctx, obj); err != nil {
		return err
	}
	s.triggerPush()
	return nil
}

// MarkNoUpload takes the record out of sync permanently: it is never pushed,
// never deleted remotely, and never reconciled away by a pull.
func (s *tableObjectService) MarkNoUpload(ctx context.Context, uuid string) (models.TableObject, error) {
	obj, err := s.mutable(ctx, uuid)
	if err != nil {
		return models.TableObject{}, err
	}
	obj.UploadStatus = models.UploadStatusNoUpload
	return s.storage.SaveTableObject(ctx, obj)
}

func (s *tableObjectService) mutable(ctx context.Context, uuid string) (models.TableObject, error) {
	obj, err := s.storage.GetTableObject(ctx, uuid)
	if err != nil {
		return models.TableObject{}, err
	}
	if obj.UploadStatus == models.UploadStatusDeleted {
		return models.TableObject{}, ErrRecordDeleted
	}
	return obj, nil
}

func (s *tableObjectService) triggerPush() {
	if s.pusher != nil {
		s.pusher.TriggerPush()
	}
}
