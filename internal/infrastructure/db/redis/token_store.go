package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/littlelemon/restaurant-system/internal/core/domain"
)

// TokenStore records issued auth tokens in Redis.
//
// Key format:
//
//	token:<jti>         -> user id, expires with the token
//	user_tokens:<uid>   -> set of jtis issued to the user
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

func (s *TokenStore) Save(ctx context.Context, tokenID string, userID int64, ttl time.Duration) error {
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, tokenKey(tokenID), userID, ttl)
	pipe.SAdd(ctx, userTokensKey(userID), tokenID)
	pipe.Expire(ctx, userTokensKey(userID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *TokenStore) Lookup(ctx context.Context, tokenID string) (int64, error) {
	val, err := s.client.Get(ctx, tokenKey(tokenID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, domain.ErrUnauthorized
		}
		return 0, fmt.Errorf("lookup token: %w", err)
	}
	uid, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, domain.ErrUnauthorized
	}
	return uid, nil
}

func (s *TokenStore) Revoke(ctx context.Context, tokenID string) error {
	if err := s.client.Del(ctx, tokenKey(tokenID)).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// RevokeAll deletes every token issued to userID.
func (s *TokenStore) RevokeAll(ctx context.Context, userID int64) error {
	ids, err := s.client.SMembers(ctx, userTokensKey(userID)).Result()
	if err != nil {
		return fmt.Errorf("list user tokens: %w", err)
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, tokenKey(id))
	}
	keys = append(keys, userTokensKey(userID))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("revoke user tokens: %w", err)
	}
	return nil
}

func tokenKey(tokenID string) string {
	return "token:" + tokenID
}

func userTokensKey(userID int64) string {
	return "user_tokens:" + strconv.FormatInt(userID, 10)
}
