package repository

import (
	"context"

	"github-webhook-events/internal/model"
)

// Repository defines all data access for canonical events. The store is
// append-only; insertion order is the only ordering key.
type Repository interface {
	CreateEvent(ctx context.Context, opt CreateEventOptions) (model.Event, error)
	ListEvents(ctx context.Context, opt ListEventsOptions) ([]model.Event, error)
	Ping(ctx context.Context) error
}
