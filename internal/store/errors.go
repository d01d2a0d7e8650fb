package store

import "errors"

var (
	ErrTableObjectNotFound = errors.New("table object not found")
	ErrSettingNotFound     = errors.New("setting not found")
	ErrBlobNotFound        = errors.New("blob not found")
)
