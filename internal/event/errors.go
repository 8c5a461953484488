package event

import "errors"

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrStoreUnavailable = errors.New("event store unavailable")
)
