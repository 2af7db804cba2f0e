package ports

import (
	"context"
	"time"
)

// TokenStore keeps track of issued auth tokens so they can be revoked.
type TokenStore interface {
	Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error
	// Lookup returns the user id bound to tokenID, or domain.ErrUnauthorized
	// when the token is unknown, expired or revoked.
	Lookup(ctx context.Context, tokenID string) (int64, error)
	Revoke(ctx context.Context, tokenID string) error
	RevokeAll(ctx context.Context, userID int64) error
}
