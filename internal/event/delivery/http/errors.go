package http

import (
	"errors"

	"github-webhook-events/internal/event"
)

// mapError translates domain errors into caller-facing ones. The store
// being down must be distinguishable from an empty feed.
func (h *handler) mapError(err error) error {
	if errors.Is(err, event.ErrStoreUnavailable) {
		return errors.New("failed to retrieve events")
	}
	return errors.New("internal server error")
}
