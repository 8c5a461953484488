package repository

import "github-webhook-events/internal/model"

// Limit bounds enforced by every Repository implementation, regardless of
// what the caller asks for.
const (
	MinLimit = 1
	MaxLimit = 100
)

// CreateEventOptions holds parameters for appending a new event.
type CreateEventOptions struct {
	Event model.Event
}

// ListEventsOptions holds parameters for reading recent events.
type ListEventsOptions struct {
	Limit int
}

// ClampLimit constrains limit to [MinLimit, MaxLimit].
func ClampLimit(limit int) int {
	if limit < MinLimit {
		return MinLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
