package usecase

import (
	"github-webhook-events/internal/event/repository"
	"github-webhook-events/pkg/log"
)

// implUseCase is the private implementation of event.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new event UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
