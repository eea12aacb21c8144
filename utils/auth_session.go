// File: azulpool/utils/auth_session.go
package utils

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const AdminSessionPrefix = "adminSession:"

// AdminSessionTTL bounds how long an admin stays signed in.
const AdminSessionTTL = 24 * time.Hour

// AdminSession represents a signed-in admin console session.
type AdminSession struct {
	Token     string    `json:"token"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionStore persists admin sessions. The JWT cookie only proves the token
// was issued by us; the store is the source of truth for revocation.
type SessionStore interface {
	Create(ctx context.Context, session AdminSession) error
	Exists(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
}

// NewSessionToken returns a fresh random session token.
func NewSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// RedisSessionStore stores admin sessions in Redis with a TTL.
type RedisSessionStore struct {
	Client *redis.Client
}

func (s *RedisSessionStore) Create(ctx context.Context, session AdminSession) error {
	session.CreatedAt = time.Now().UTC()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal admin session: %w", err)
	}
	if err := s.Client.Set(ctx, AdminSessionPrefix+session.Token, data, AdminSessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save admin session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	_, err := s.Client.Get(ctx, AdminSessionPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *RedisSessionStore) Revoke(ctx context.Context, token string) error {
	return s.Client.Del(ctx, AdminSessionPrefix+token).Err()
}
