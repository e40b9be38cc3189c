package repository

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrCapacityExceeded = errors.New("board capacity exceeded")
	ErrInvalidPosition  = errors.New("position out of range")
)
