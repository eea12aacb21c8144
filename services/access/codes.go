// File: azulpool/services/access/codes.go
package access

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

const codeKeyPrefix = "accessCode:"

// CodeTTL bounds how long a verification code stays redeemable.
const CodeTTL = 15 * time.Minute

// MaxVerifyAttempts is how many wrong guesses burn a code.
const MaxVerifyAttempts = 5

// CodeStore persists short-lived verification codes, one per email. Issuing a
// new code replaces any outstanding one.
type CodeStore interface {
	Issue(ctx context.Context, email, code string) error
	Verify(ctx context.Context, email, code string) (bool, error)
}

// NewAccessCode returns a fresh 6-digit verification code.
func NewAccessCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

type storedCode struct {
	Code     string `json:"code"`
	Attempts int    `json:"attempts"`
}

// RedisCodeStore keeps verification codes in Redis so they expire on their
// own and survive process restarts.
type RedisCodeStore struct {
	Client *redis.Client
}

// NewRedisCodeStore returns a CodeStore over the given Redis client.
func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	return &RedisCodeStore{Client: client}
}

func codeKey(email string) string {
	return codeKeyPrefix + strings.ToLower(email)
}

func (s *RedisCodeStore) Issue(ctx context.Context, email, code string) error {
	data, err := json.Marshal(storedCode{Code: code})
	if err != nil {
		return fmt.Errorf("failed to marshal verification code: %w", err)
	}
	if err := s.Client.Set(ctx, codeKey(email), data, CodeTTL).Err(); err != nil {
		return fmt.Errorf("failed to store verification code: %w", err)
	}
	return nil
}

// Verify checks the code for email. Codes are one-time use: a correct guess
// consumes the code, and too many wrong guesses burn it. Wrong guesses keep
// the original expiry.
func (s *RedisCodeStore) Verify(ctx context.Context, email, code string) (bool, error) {
	key := codeKey(email)
	raw, err := s.Client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	var stored storedCode
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return false, fmt.Errorf("failed to unmarshal verification code: %w", err)
	}

	if stored.Attempts >= MaxVerifyAttempts {
		s.Client.Del(ctx, key)
		return false, nil
	}
	if stored.Code != code {
		stored.Attempts++
		if data, err := json.Marshal(stored); err == nil {
			s.Client.Set(ctx, key, data, redis.KeepTTL)
		}
		return false, nil
	}

	s.Client.Del(ctx, key)
	return true, nil
}

type memoryCode struct {
	code      string
	attempts  int
	expiresAt time.Time
}

// MemoryCodeStore is an in-memory CodeStore used by tests and local
// development. Safe for concurrent use.
type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]memoryCode

	// now is swapped out by tests to exercise expiry.
	now func() time.Time
}

func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{codes: make(map[string]memoryCode), now: time.Now}
}

func (s *MemoryCodeStore) Issue(ctx context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[codeKey(email)] = memoryCode{code: code, expiresAt: s.now().Add(CodeTTL)}
	return nil
}

func (s *MemoryCodeStore) Verify(ctx context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := codeKey(email)
	stored, ok := s.codes[key]
	if !ok {
		return false, nil
	}
	if s.now().After(stored.expiresAt) {
		delete(s.codes, key)
		return false, nil
	}
	if stored.attempts >= MaxVerifyAttempts {
		delete(s.codes, key)
		return false, nil
	}
	if stored.code != code {
		stored.attempts++
		s.codes[key] = stored
		return false, nil
	}
	delete(s.codes, key)
	return true, nil
}
