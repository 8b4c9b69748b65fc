package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"notesapi/internal/cache"
)

const sessionKeyPrefix = "session:"

// Session is the server-held state referenced by a session cookie.
type Session struct {
	Token    string `json:"-"`
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// StoreInterface defines the interface for session storage operations.
type StoreInterface interface {
	Create(ctx context.Context, userID uint, username string) (string, error)
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// Store handles storage and retrieval of sessions in Redis. Tokens are
// opaque UUIDs; all session state stays server-side.
type Store struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure Store implements StoreInterface
var _ StoreInterface = (*Store)(nil)

// NewStore creates a new session store with the given lifetime.
func NewStore(cache *cache.Client, ttl time.Duration) *Store {
	return &Store{cache: cache, ttl: ttl}
}

// Create issues a fresh session token for the user and stores it with TTL.
func (s *Store) Create(ctx context.Context, userID uint, username string) (string, error) {
	token := uuid.New().String()
	payload, err := json.Marshal(Session{UserID: userID, Username: username})
	if err != nil {
		return "", fmt.Errorf("marshal session data: %w", err)
	}

	key := sessionKeyPrefix + token
	if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Get resolves a session token. A missing or expired token yields (nil, nil).
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, nil
	}
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil || data == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session data: %w", err)
	}
	sess.Token = token
	return &sess, nil
}

// Delete revokes a session token.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
