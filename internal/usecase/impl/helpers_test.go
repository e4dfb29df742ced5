package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"
	"shelf/internal/domain/service"
	mockRepo "shelf/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func linkedAccount(accountID, spotifyUserID uuid.UUID) *entity.Account {
	return &entity.Account{ID: accountID, Username: "listener", SpotifyUserID: &spotifyUserID}
}

// expectTx makes the transaction manager run fn against factory and return fn's result.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

// recordingPublisher collects published events.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.LibraryEvent
}

func (p *recordingPublisher) Publish(_ context.Context, event *service.LibraryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.events = append(p.events, event)

	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}

	return out
}
