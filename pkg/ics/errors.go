package ics

import "errors"

var (
	ErrEmptyBody     = errors.New("ics: empty body")
	ErrInvalidWindow = errors.New("ics: window end is before start")
)
