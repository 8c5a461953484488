package response

// Response status values. GitHub's delivery log shows these verbatim,
// so they are part of the external contract.
const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusError   = "error"
)

// DefaultErrorMessage is returned when an internal error must not leak.
const DefaultErrorMessage = "Internal server error"

// Resp is the standard JSON response body for webhook and error replies.
type Resp struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Event   any    `json:"event,omitempty"`
}
