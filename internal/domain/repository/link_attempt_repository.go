package repository

import (
	"context"
	"time"

	"shelf/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrLinkAttemptNotFound is returned when a link attempt is unknown, expired or already used.
var ErrLinkAttemptNotFound = errors.New("link attempt not found")

// LinkAttemptRepository keeps pending PKCE verifiers between the authorization
// redirect and the callback.
type LinkAttemptRepository interface {
	// Save stores the attempt under its state token for ttl.
	Save(ctx context.Context, attempt *entity.LinkAttempt, ttl time.Duration) error

	// Consume returns the attempt and removes it, so each state can be redeemed once.
	Consume(ctx context.Context, state string) (*entity.LinkAttempt, error)
}
