package webhook

import (
	"github-webhook-events/internal/event"
	pkgLog "github-webhook-events/pkg/log"
)

type Handler struct {
	eventUC    event.UseCase
	security   *SecurityValidator
	normalizer *GitHubNormalizer
	l          pkgLog.Logger
}

func NewHandler(
	eventUC event.UseCase,
	securityConfig SecurityConfig,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		eventUC:    eventUC,
		security:   NewSecurityValidator(securityConfig),
		normalizer: NewGitHubNormalizer(),
		l:          l,
	}
}
