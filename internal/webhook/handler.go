package webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github-webhook-events/internal/event"
	pkgResponse "github-webhook-events/pkg/response"
)

// HandleReceiver processes one GitHub webhook delivery: screen the
// event-type header, normalize the payload, and append the canonical
// event. Exactly one append happens per tracked delivery, zero otherwise.
func (h *Handler) HandleReceiver(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "failed to read webhook body: %v", err)
		pkgResponse.Error(c, http.StatusBadRequest, errors.New("failed to read request body"))
		return
	}

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook IP rejected: %v", err)
		pkgResponse.Error(c, http.StatusForbidden, errors.New("forbidden"))
		return
	}

	if h.security.RequiresSignature() {
		signature := c.GetHeader("X-Hub-Signature-256")
		if err := h.security.ValidateSignature(body, signature); err != nil {
			h.l.Warnf(ctx, "signature verification failed: %v", err)
			pkgResponse.Error(c, http.StatusUnauthorized, errors.New("invalid signature"))
			return
		}
	}

	if err := h.security.CheckRateLimit("github"); err != nil {
		h.l.Warnf(ctx, "rate limit exceeded: %v", err)
		pkgResponse.Error(c, http.StatusTooManyRequests, errors.New("rate limit exceeded"))
		return
	}

	eventType := c.GetHeader("X-GitHub-Event")
	if eventType == "" {
		h.l.Warn(ctx, "missing X-GitHub-Event header")
		pkgResponse.Error(c, http.StatusBadRequest, ErrMissingEventHeader)
		return
	}

	// GitHub sends a ping when the webhook is first configured.
	if eventType == "ping" {
		h.l.Info(ctx, "received ping event")
		pkgResponse.OK(c, "Webhook configured successfully")
		return
	}

	normalized, skipReason, err := h.normalizer.Normalize(eventType, body)
	if err != nil {
		h.l.Warnf(ctx, "normalize %s: %v", eventType, err)
		pkgResponse.Error(c, http.StatusBadRequest, err)
		return
	}
	if normalized == nil {
		h.l.Debugf(ctx, "skipping delivery: %s", skipReason)
		pkgResponse.Skipped(c, skipReason)
		return
	}

	out, err := h.eventUC.Record(ctx, event.RecordInput{Event: *normalized})
	if err != nil {
		h.l.Errorf(ctx, "eventUC.Record: %v", err)
		if errors.Is(err, event.ErrInvalidEvent) {
			pkgResponse.Error(c, http.StatusBadRequest, err)
			return
		}
		pkgResponse.Error(c, http.StatusInternalServerError, errors.New("failed to store event"))
		return
	}

	pkgResponse.Created(c, "Event processed and stored", out.Event)
}
