package usecase_test

import (
	"context"

	repo "github-webhook-events/internal/event/repository"
	"github-webhook-events/internal/model"
)

// mockLogger satisfies log.Logger with no-ops.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                 {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Info(ctx context.Context, args ...any)                  {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Warn(ctx context.Context, args ...any)                  {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Error(ctx context.Context, args ...any)                 {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                 {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any) {}

// mockRepository lets each subtest stub the calls it cares about.
type mockRepository struct {
	createFunc func(opt repo.CreateEventOptions) (model.Event, error)
	listFunc   func(opt repo.ListEventsOptions) ([]model.Event, error)
	pingFunc   func() error

	createCalls int
	listCalls   []repo.ListEventsOptions
}

func (m *mockRepository) CreateEvent(_ context.Context, opt repo.CreateEventOptions) (model.Event, error) {
	m.createCalls++
	if m.createFunc != nil {
		return m.createFunc(opt)
	}
	return opt.Event, nil
}

func (m *mockRepository) ListEvents(_ context.Context, opt repo.ListEventsOptions) ([]model.Event, error) {
	m.listCalls = append(m.listCalls, opt)
	if m.listFunc != nil {
		return m.listFunc(opt)
	}
	return nil, nil
}

func (m *mockRepository) Ping(_ context.Context) error {
	if m.pingFunc != nil {
		return m.pingFunc()
	}
	return nil
}
