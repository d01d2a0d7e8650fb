package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUUID         = errors.New("invalid uuid")
	ErrInvalidTableID      = errors.New("invalid table id")
	ErrInvalidVisibility   = errors.New("invalid visibility")
	ErrEmptyPropertyName   = errors.New("property name is required")
	ErrInvalidPropertyName = errors.New("invalid property name")
)
