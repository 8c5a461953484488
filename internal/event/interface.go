package event

import "context"

// UseCase is the application-facing surface of the event domain.
// Events are append-only: there is deliberately no update or delete.
type UseCase interface {
	// Record validates and persists one canonical event.
	Record(ctx context.Context, input RecordInput) (RecordOutput, error)
	// List returns the most recently inserted events, newest first.
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Healthy probes the backing store.
	Healthy(ctx context.Context) error
}
