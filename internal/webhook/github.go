package webhook

import (
	"encoding/json"
	"strconv"
	"strings"

	"github-webhook-events/internal/model"
	"github-webhook-events/pkg/timefmt"
)

// GitHubNormalizer maps raw GitHub webhook payloads into canonical events.
type GitHubNormalizer struct{}

func NewGitHubNormalizer() *GitHubNormalizer {
	return &GitHubNormalizer{}
}

// decision maps one (event type, sub-action, merged flag) combination to a
// canonical action. The table is the single place deciding what gets
// stored; combinations not listed here are skipped, not errors.
type decision struct {
	eventType string
	subAction string
	merged    bool
	action    model.ActionType
}

var decisionTable = []decision{
	{eventType: "push", subAction: "", merged: false, action: model.ActionPush},
	{eventType: "pull_request", subAction: "opened", merged: false, action: model.ActionPullRequest},
	{eventType: "pull_request", subAction: "edited", merged: false, action: model.ActionPullRequest},
	{eventType: "pull_request", subAction: "reopened", merged: false, action: model.ActionPullRequest},
	{eventType: "pull_request", subAction: "closed", merged: true, action: model.ActionMerge},
}

func classify(eventType, subAction string, merged bool) (model.ActionType, bool) {
	for _, d := range decisionTable {
		if d.eventType == eventType && d.subAction == subAction && d.merged == merged {
			return d.action, true
		}
	}
	return "", false
}

// Normalize converts one delivery into a canonical event. A nil event
// with a non-empty skip reason means the delivery is acknowledged but not
// tracked. Errors mean the payload is missing required source fields.
func (n *GitHubNormalizer) Normalize(eventType string, payload []byte) (*model.Event, string, error) {
	switch eventType {
	case "push":
		return n.normalizePush(payload)
	case "pull_request":
		return n.normalizePullRequest(payload)
	default:
		return nil, `event type "` + eventType + `" not supported`, nil
	}
}

type pushPayload struct {
	Ref   string `json:"ref"`
	After string `json:"after"`
	Head  struct {
		ID        string `json:"id"`
		Timestamp string `json:"timestamp"`
	} `json:"head_commit"`
	Pusher struct {
		Name string `json:"name"`
	} `json:"pusher"`
}

func (n *GitHubNormalizer) normalizePush(payload []byte) (*model.Event, string, error) {
	var p pushPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, "", ErrMalformedPayload
	}

	if p.Ref == "" {
		return nil, "", malformed("ref")
	}

	// "after" carries the same SHA when head_commit is absent
	// (for example on a branch deletion push).
	commitID := p.Head.ID
	if commitID == "" {
		commitID = p.After
	}
	if commitID == "" {
		return nil, "", malformed("head_commit.id")
	}

	if p.Pusher.Name == "" {
		return nil, "", malformed("pusher.name")
	}

	action, _ := classify("push", "", false)
	return &model.Event{
		RequestID: commitID,
		Author:    p.Pusher.Name,
		Action:    action,
		ToBranch:  strings.TrimPrefix(p.Ref, "refs/heads/"),
		Timestamp: timefmt.FromISO(p.Head.Timestamp),
	}, "", nil
}

type pullRequestPayload struct {
	Action      string `json:"action"`
	Number      int    `json:"number"`
	PullRequest *struct {
		Number    int    `json:"number"`
		Merged    bool   `json:"merged"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
		MergedAt  string `json:"merged_at"`
		User      struct {
			Login string `json:"login"`
		} `json:"user"`
		Head struct {
			Ref string `json:"ref"`
		} `json:"head"`
		Base struct {
			Ref string `json:"ref"`
		} `json:"base"`
	} `json:"pull_request"`
}

func (n *GitHubNormalizer) normalizePullRequest(payload []byte) (*model.Event, string, error) {
	var p pullRequestPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, "", ErrMalformedPayload
	}

	if p.PullRequest == nil {
		return nil, "", malformed("pull_request")
	}

	pr := p.PullRequest
	action, tracked := classify("pull_request", p.Action, pr.Merged)
	if !tracked {
		return nil, `pull request action "` + p.Action + `" not tracked`, nil
	}

	number := p.Number
	if number == 0 {
		number = pr.Number
	}
	if number == 0 {
		return nil, "", malformed("number")
	}
	if pr.User.Login == "" {
		return nil, "", malformed("pull_request.user.login")
	}
	if pr.Head.Ref == "" {
		return nil, "", malformed("pull_request.head.ref")
	}
	if pr.Base.Ref == "" {
		return nil, "", malformed("pull_request.base.ref")
	}

	sourceTime := pr.UpdatedAt
	if sourceTime == "" {
		sourceTime = pr.CreatedAt
	}
	if action == model.ActionMerge && pr.MergedAt != "" {
		sourceTime = pr.MergedAt
	}

	return &model.Event{
		RequestID:  strconv.Itoa(number),
		Author:     pr.User.Login,
		Action:     action,
		FromBranch: pr.Head.Ref,
		ToBranch:   pr.Base.Ref,
		Timestamp:  timefmt.FromISO(sourceTime),
	}, "", nil
}
