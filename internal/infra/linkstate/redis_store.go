// Package linkstate stores pending Spotify link attempts between the authorization
// redirect and the callback.
package linkstate

import (
	"context"
	"strconv"
	"strings"
	"time"

	"shelf/internal/domain/entity"
	"shelf/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix = "shelf:link"

	fieldAccountID = "account_id"
	fieldVerifier  = "verifier"
	fieldExpiresAt = "expires_at"
)

// RedisStore keeps link attempts as Redis hashes that expire with the attempt.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a link attempt store on top of an existing client.
func NewRedisStore(client redis.UniversalClient, keyPrefix string) *RedisStore {
	prefix := strings.TrimSpace(keyPrefix)
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &RedisStore{client: client, prefix: prefix}
}

// Save stores the attempt under its state token for ttl.
func (s *RedisStore) Save(ctx context.Context, attempt *entity.LinkAttempt, ttl time.Duration) error {
	if attempt == nil || attempt.State == "" {
		return errors.New("link attempt state is required")
	}
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	key := s.key(attempt.State)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]any{
		fieldAccountID: attempt.AccountID.String(),
		fieldVerifier:  attempt.Verifier,
		fieldExpiresAt: strconv.FormatInt(attempt.ExpiresAt.UnixMilli(), 10),
	})
	pipe.PExpire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Wrap(err, "redis store link attempt")
	}

	return nil
}

// Consume reads and deletes the attempt in one MULTI block, so two callbacks
// racing on the same state cannot both redeem it.
func (s *RedisStore) Consume(ctx context.Context, state string) (*entity.LinkAttempt, error) {
	if state == "" {
		return nil, repository.ErrLinkAttemptNotFound
	}

	key := s.key(state)

	pipe := s.client.TxPipeline()
	get := pipe.HGetAll(ctx, key)
	del := pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "redis consume link attempt")
	}

	values := get.Val()
	if len(values) == 0 || del.Val() == 0 {
		return nil, repository.ErrLinkAttemptNotFound
	}

	accountID, err := uuid.Parse(values[fieldAccountID])
	if err != nil {
		return nil, errors.Wrap(err, "parse link attempt account id")
	}

	expiresAtMillis, err := strconv.ParseInt(values[fieldExpiresAt], 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse link attempt expiry")
	}

	return &entity.LinkAttempt{
		State:     state,
		AccountID: accountID,
		Verifier:  values[fieldVerifier],
		ExpiresAt: time.UnixMilli(expiresAtMillis),
	}, nil
}

func (s *RedisStore) key(state string) string {
	return s.prefix + ":" + state
}
