package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dkozyrev/tablesync/models"
)

const (
	FieldUUID       = "uuid"
	FieldTableID    = "table_id"
	FieldVisibility = "visibility"
	FieldProperties = "properties"
)

const maxPropertyNameLength = 255

type TableObjectValidator struct {
}

func NewTableObjectValidator() Validator {
	return &TableObjectValidator{}
}

func (v *TableObjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TableObject:
		return v.validateTableObject(ctx, value, fields...)
	case *models.TableObject:
		return v.validateTableObject(ctx, *value, fields...)

	case models.Property:
		return v.validateProperty(value)
	case *models.Property:
		return v.validateProperty(*value)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *TableObjectValidator) validateTableObject(_ context.Context, obj models.TableObject, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUUID, FieldTableID, FieldVisibility, FieldProperties}
	}

	for _, field := range fields {
		switch field {
		case FieldUUID:
			if _, err := uuid.Parse(obj.UUID); err != nil {
				return fmt.Errorf("%w: %q", ErrInvalidUUID, obj.UUID)
			}
		case FieldTableID:
			if obj.TableID <= 0 {
				return fmt.Errorf("%w: %d", ErrInvalidTableID, obj.TableID)
			}
		case FieldVisibility:
			switch obj.Visibility {
			case models.VisibilityPrivate, models.VisibilityProtected, models.VisibilityPublic:
			default:
				return fmt.Errorf("%w: %d", ErrInvalidVisibility, obj.Visibility)
			}
		case FieldProperties:
			for _, prop := range obj.Properties.List() {
				if err := v.validateProperty(prop); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *TableObjectValidator) validateProperty(prop models.Property) error {
	if strings.TrimSpace(prop.Name) == "" {
		return ErrEmptyPropertyName
	}
	if len(prop.Name) > maxPropertyNameLength {
		return fmt.Errorf("%w: %q", ErrInvalidPropertyName, prop.Name)
	}
	return nil
}
