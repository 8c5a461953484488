package event

import "github-webhook-events/internal/model"

// --- UseCase Inputs ---

type RecordInput struct {
	Event model.Event
}

type ListInput struct {
	Limit int
}

// --- UseCase Outputs ---

type RecordOutput struct {
	Event model.Event
}

type ListOutput struct {
	Events []model.Event
}
