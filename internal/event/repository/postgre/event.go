package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github-webhook-events/internal/event/repository"
	"github-webhook-events/internal/model"
)

// schema is applied at startup. seq preserves insertion order; source
// timestamps are display strings and never used for ordering.
const schema = `
	CREATE TABLE IF NOT EXISTS events (
		id              UUID PRIMARY KEY,
		seq             BIGSERIAL,
		request_id      TEXT NOT NULL,
		author          TEXT NOT NULL,
		action          TEXT NOT NULL,
		from_branch     TEXT,
		to_branch       TEXT NOT NULL,
		event_timestamp TEXT NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_events_seq ON events (seq DESC);`

// Migrate creates the events table and its ordering index. Called once
// at startup before the repository is constructed.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}

// CreateEvent appends one event row. The store is append-only; there are
// no update or delete statements in this package.
func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateEventOptions) (model.Event, error) {
	const query = `
		INSERT INTO events (id, request_id, author, action, from_branch, to_branch, event_timestamp, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	e := opt.Event
	fromBranch := sql.NullString{String: e.FromBranch, Valid: e.FromBranch != ""}

	_, err := r.db.ExecContext(ctx, query,
		uuid.NewString(), e.RequestID, e.Author, string(e.Action), fromBranch, e.ToBranch, e.Timestamp, time.Now().UTC(),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEvent"), err)
		return model.Event{}, repository.ErrFailedToInsert
	}
	return e, nil
}

// ListEvents returns up to opt.Limit events, newest inserted first.
// The limit is clamped here so no caller can bypass the cap.
func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListEventsOptions) ([]model.Event, error) {
	const query = `
		SELECT request_id, author, action, from_branch, to_branch, event_timestamp
		FROM events
		ORDER BY seq DESC
		LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, repository.ClampLimit(opt.Limit))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		var (
			e          model.Event
			action     string
			fromBranch sql.NullString
		)
		if err := rows.Scan(&e.RequestID, &e.Author, &action, &fromBranch, &e.ToBranch, &e.Timestamp); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListEvents"), err)
			return nil, repository.ErrFailedToList
		}
		e.Action = model.ActionType(action)
		e.FromBranch = fromBranch.String
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListEvents"), err)
		return nil, repository.ErrFailedToList
	}
	return events, nil
}

// Ping probes connectivity for the health endpoint.
func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Ping"), err)
		return repository.ErrUnavailable
	}
	return nil
}
