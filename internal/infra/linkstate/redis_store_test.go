package linkstate

import (
	"context"
	"sync"
	"testing"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client, server
}

func newAttempt(state string) *entity.LinkAttempt {
	return &entity.LinkAttempt{
		State:     state,
		AccountID: uuid.New(),
		Verifier:  "verifier-" + state,
		ExpiresAt: time.UnixMilli(time.Now().Add(10 * time.Minute).UnixMilli()),
	}
}

func TestRedisStore_SaveAndConsume(t *testing.T) {
	client, server := newTestRedis(t)
	store := NewRedisStore(client, "test:link")
	ctx := context.Background()

	attempt := newAttempt("state-1")
	require.NoError(t, store.Save(ctx, attempt, 10*time.Minute))

	assert.True(t, server.Exists("test:link:state-1"))
	ttl := server.TTL("test:link:state-1")
	assert.True(t, ttl > 0 && ttl <= 10*time.Minute)

	got, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)
	assert.Equal(t, attempt.AccountID, got.AccountID)
	assert.Equal(t, attempt.Verifier, got.Verifier)
	assert.True(t, attempt.ExpiresAt.Equal(got.ExpiresAt))
	assert.False(t, server.Exists("test:link:state-1"))
}

func TestRedisStore_ConsumeIsSingleUse(t *testing.T) {
	client, _ := newTestRedis(t)
	store := NewRedisStore(client, "")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newAttempt("state-1"), time.Minute))

	_, err := store.Consume(ctx, "state-1")
	require.NoError(t, err)

	_, err = store.Consume(ctx, "state-1")
	assert.ErrorIs(t, err, repository.ErrLinkAttemptNotFound)
}

func TestRedisStore_ConcurrentConsume(t *testing.T) {
	client, _ := newTestRedis(t)
	store := NewRedisStore(client, "test:link")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newAttempt("state-1"), time.Minute))

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Consume(ctx, "state-1"); err == nil {
				mu.Lock()
				success++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
}

func TestRedisStore_Expired(t *testing.T) {
	client, server := newTestRedis(t)
	store := NewRedisStore(client, "test:link")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newAttempt("state-1"), time.Minute))
	server.FastForward(2 * time.Minute)

	_, err := store.Consume(ctx, "state-1")
	assert.ErrorIs(t, err, repository.ErrLinkAttemptNotFound)
}

func TestRedisStore_InvalidInput(t *testing.T) {
	client, _ := newTestRedis(t)
	store := NewRedisStore(client, "test:link")
	ctx := context.Background()

	assert.Error(t, store.Save(ctx, nil, time.Minute))
	assert.Error(t, store.Save(ctx, &entity.LinkAttempt{}, time.Minute))
	assert.Error(t, store.Save(ctx, newAttempt("state-1"), 0))

	_, err := store.Consume(ctx, "")
	assert.ErrorIs(t, err, repository.ErrLinkAttemptNotFound)
}

func TestRedisStore_ServerDown(t *testing.T) {
	client, server := newTestRedis(t)
	store := NewRedisStore(client, "test:link")
	server.Close()

	err := store.Save(context.Background(), newAttempt("state-1"), time.Minute)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrLinkAttemptNotFound)
}
