package linkstate

import (
	"context"
	"testing"
	"time"

	"shelf/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_SaveAndConsume(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	attempt := newAttempt("state-1")
	require.NoError(t, store.Save(ctx, attempt, time.Minute))

	got, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.Equal(t, *attempt, *got)

	_, err = store.Consume(ctx, "state-1")
	assert.ErrorIs(t, err, repository.ErrLinkAttemptNotFound)
}

func TestMemoryStore_Expiry(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newAttempt("state-1"), time.Minute))
	require.NoError(t, store.Save(ctx, newAttempt("state-2"), 5*time.Minute))

	current = current.Add(time.Minute)

	_, err := store.Consume(ctx, "state-1")
	assert.ErrorIs(t, err, repository.ErrLinkAttemptNotFound)

	got, err := store.Consume(ctx, "state-2")
	require.NoError(t, err)
	assert.Equal(t, "verifier-state-2", got.Verifier)
}

func TestMemoryStore_SaveSweepsExpired(t *testing.T) {
	store := NewMemoryStore()
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newAttempt("state-1"), time.Minute))
	current = current.Add(2 * time.Minute)
	require.NoError(t, store.Save(ctx, newAttempt("state-2"), time.Minute))

	assert.Len(t, store.entries, 1)
}

func TestMemoryStore_InvalidInput(t *testing.T) {
	store := NewMemoryStore()

	assert.Error(t, store.Save(context.Background(), nil, time.Minute))
	assert.Error(t, store.Save(context.Background(), newAttempt("state-1"), -time.Second))
}
