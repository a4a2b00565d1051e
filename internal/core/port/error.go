package port

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidStatus = errors.New("invalid task status")
)
