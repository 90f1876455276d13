package rdx

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedPrefix = "auth:revoked:"

// TokenRevoker records logged-out token ids until they would have expired anyway.
type TokenRevoker struct {
	conn *redis.Client
}

func NewTokenRevoker(conn *redis.Client) *TokenRevoker {
	return &TokenRevoker{conn: conn}
}

func (t *TokenRevoker) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if t == nil || t.conn == nil || jti == "" {
		return nil
	}
	if ttl <= 0 {
		return nil
	}
	if err := t.conn.Set(ctx, revokedPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked fails open when Redis is unreachable.
func (t *TokenRevoker) IsRevoked(ctx context.Context, jti string) bool {
	if t == nil || t.conn == nil || jti == "" {
		return false
	}
	n, err := t.conn.Exists(ctx, revokedPrefix+jti).Result()
	if err != nil {
		log.Printf("[IsRevoked] redis error: %v", err)
		return false
	}
	return n > 0
}
