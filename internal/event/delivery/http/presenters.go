package http

import (
	"github-webhook-events/internal/event"
	"github-webhook-events/internal/model"
)

// --- Request DTOs ---

type listReq struct {
	Limit int
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{Limit: r.Limit}
}

// --- Response DTOs ---

type eventResp struct {
	RequestID  string `json:"request_id"`
	Author     string `json:"author"`
	Action     string `json:"action"`
	FromBranch string `json:"from_branch,omitempty"`
	ToBranch   string `json:"to_branch"`
	Timestamp  string `json:"timestamp"`
}

func newEventResp(e model.Event) eventResp {
	return eventResp{
		RequestID:  e.RequestID,
		Author:     e.Author,
		Action:     string(e.Action),
		FromBranch: e.FromBranch,
		ToBranch:   e.ToBranch,
		Timestamp:  e.Timestamp,
	}
}

func newListResp(out event.ListOutput) []eventResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	return events
}
