package domain

import "errors"

var (
	ErrMissingImage  = errors.New("missing image")
	ErrInvalidAction = errors.New("invalid action")
)
