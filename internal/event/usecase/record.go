package usecase

import (
	"context"
	"fmt"

	"github-webhook-events/internal/event"
	repo "github-webhook-events/internal/event/repository"
)

// Record validates the canonical event and appends it to the store.
// Append is all-or-nothing: a validation failure never reaches the
// repository, and a repository failure stores nothing.
func (uc *implUseCase) Record(ctx context.Context, input event.RecordInput) (event.RecordOutput, error) {
	if err := input.Event.Validate(); err != nil {
		uc.l.Warnf(ctx, "uc.Record validate: %v", err)
		return event.RecordOutput{}, fmt.Errorf("%w: %v", event.ErrInvalidEvent, err)
	}

	stored, err := uc.repo.CreateEvent(ctx, repo.CreateEventOptions{Event: input.Event})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Record CreateEvent: %v", err)
		return event.RecordOutput{}, event.ErrStoreUnavailable
	}

	uc.l.Infof(ctx, "stored event action=%s request_id=%s author=%s", stored.Action, stored.RequestID, stored.Author)
	return event.RecordOutput{Event: stored}, nil
}
