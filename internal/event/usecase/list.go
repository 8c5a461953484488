package usecase

import (
	"context"

	"github-webhook-events/internal/event"
	repo "github-webhook-events/internal/event/repository"
)

// defaultLimit is used when the caller supplies no usable limit.
const defaultLimit = 10

// List returns the most recently inserted events, newest first.
func (uc *implUseCase) List(ctx context.Context, input event.ListInput) (event.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = repo.ClampLimit(limit)

	events, err := uc.repo.ListEvents(ctx, repo.ListEventsOptions{Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEvents: %v", err)
		return event.ListOutput{}, event.ErrStoreUnavailable
	}

	return event.ListOutput{Events: events}, nil
}

// Healthy probes the backing store for the health endpoint.
func (uc *implUseCase) Healthy(ctx context.Context) error {
	if err := uc.repo.Ping(ctx); err != nil {
		return event.ErrStoreUnavailable
	}
	return nil
}
