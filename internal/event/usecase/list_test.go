package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github-webhook-events/internal/event"
	repo "github-webhook-events/internal/event/repository"
	"github-webhook-events/internal/event/usecase"
	"github-webhook-events/internal/model"
)

func TestList(t *testing.T) {
	t.Run("zero limit falls back to default", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, mockLogger{})

		if _, err := uc.List(context.Background(), event.ListInput{Limit: 0}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := mRepo.listCalls[0].Limit; got != 10 {
			t.Errorf("expected default limit 10, got %d", got)
		}
	})

	t.Run("negative limit falls back to default", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, mockLogger{})

		uc.List(context.Background(), event.ListInput{Limit: -3})
		if got := mRepo.listCalls[0].Limit; got != 10 {
			t.Errorf("expected default limit 10, got %d", got)
		}
	})

	t.Run("oversized limit is clamped to 100", func(t *testing.T) {
		mRepo := &mockRepository{}
		uc := usecase.New(mRepo, mockLogger{})

		uc.List(context.Background(), event.ListInput{Limit: 500})
		if got := mRepo.listCalls[0].Limit; got != 100 {
			t.Errorf("expected clamped limit 100, got %d", got)
		}
	})

	t.Run("events pass through newest first", func(t *testing.T) {
		want := []model.Event{
			{RequestID: "2", Author: "b", Action: model.ActionMerge, FromBranch: "feature", ToBranch: "main", Timestamp: "30 January 2026 - 01:00 AM UTC"},
			{RequestID: "1", Author: "a", Action: model.ActionPush, ToBranch: "main", Timestamp: "29 January 2026 - 11:00 PM UTC"},
		}
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListEventsOptions) ([]model.Event, error) {
				return want, nil
			},
		}
		uc := usecase.New(mRepo, mockLogger{})

		out, err := uc.List(context.Background(), event.ListInput{Limit: 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Events) != 2 || out.Events[0].RequestID != "2" {
			t.Errorf("expected newest-first passthrough, got %+v", out.Events)
		}
	})

	t.Run("repository failure surfaces as store unavailable", func(t *testing.T) {
		mRepo := &mockRepository{
			listFunc: func(opt repo.ListEventsOptions) ([]model.Event, error) {
				return nil, repo.ErrFailedToList
			},
		}
		uc := usecase.New(mRepo, mockLogger{})

		_, err := uc.List(context.Background(), event.ListInput{Limit: 5})
		if !errors.Is(err, event.ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}

func TestHealthy(t *testing.T) {
	t.Run("ping ok", func(t *testing.T) {
		uc := usecase.New(&mockRepository{}, mockLogger{})
		if err := uc.Healthy(context.Background()); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("ping failure", func(t *testing.T) {
		mRepo := &mockRepository{pingFunc: func() error { return repo.ErrUnavailable }}
		uc := usecase.New(mRepo, mockLogger{})
		if err := uc.Healthy(context.Background()); !errors.Is(err, event.ErrStoreUnavailable) {
			t.Errorf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}
