package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidTime        = errors.New("invalid HH:MM time string")
	ErrStorageUnavailable = errors.New("storage unavailable")
)
