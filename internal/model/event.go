package model

import "fmt"

// ActionType is the canonical event action. Closed set — the dashboard
// keys its rendering off these three values.
type ActionType string

const (
	ActionPush        ActionType = "PUSH"
	ActionPullRequest ActionType = "PULL_REQUEST"
	ActionMerge       ActionType = "MERGE"
)

// Valid reports whether a is one of the three canonical actions.
func (a ActionType) Valid() bool {
	switch a {
	case ActionPush, ActionPullRequest, ActionMerge:
		return true
	}
	return false
}

// Event is the canonical, immutable record derived from a GitHub webhook
// delivery. RequestID is the head commit SHA for pushes and the PR number
// for pull-request and merge events. FromBranch is only set for
// pull-request and merge events; Timestamp is a pre-formatted UTC display
// string ("02 January 2006 - 03:04 PM UTC").
type Event struct {
	RequestID  string     `json:"request_id"`
	Author     string     `json:"author"`
	Action     ActionType `json:"action"`
	FromBranch string     `json:"from_branch,omitempty"`
	ToBranch   string     `json:"to_branch"`
	Timestamp  string     `json:"timestamp"`
}

// Validate checks the invariants every stored Event must hold.
func (e Event) Validate() error {
	if e.RequestID == "" {
		return fmt.Errorf("%w: request_id", ErrMissingField)
	}
	if e.Author == "" {
		return fmt.Errorf("%w: author", ErrMissingField)
	}
	if !e.Action.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAction, e.Action)
	}
	if e.ToBranch == "" {
		return fmt.Errorf("%w: to_branch", ErrMissingField)
	}
	if e.Timestamp == "" {
		return fmt.Errorf("%w: timestamp", ErrMissingField)
	}
	if e.Action == ActionPush && e.FromBranch != "" {
		return ErrPushHasFromBranch
	}
	return nil
}
