// Package session holds authenticated Holidaze sessions. A session is the
// explicit server-side replacement for the browser-storage auth state of the
// web client: created on login, read by the auth middleware, removed on
// logout or TTL expiry.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/holidaze/holidaze-api/internal/pkg/noroff"
)

// ErrNotFound is returned when a session does not exist or has expired.
var ErrNotFound = errors.New("session not found")

// Session is one authenticated login. UpstreamToken is the Noroff access
// token used for proxied calls; it is stored server-side only.
type Session struct {
	ID            uuid.UUID     `json:"id"`
	ProfileName   string        `json:"profile_name"`
	Email         string        `json:"email"`
	Avatar        *noroff.Media `json:"avatar,omitempty"`
	Banner        *noroff.Media `json:"banner,omitempty"`
	VenueManager  bool          `json:"venue_manager"`
	UpstreamToken string        `json:"upstream_token"`
	Remember      bool          `json:"remember"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Store persists sessions.
type Store interface {
	Create(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RedisStore is the Redis-backed session store.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis session store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func sessionKey(id uuid.UUID) string {
	return "holidaze:session:" + id.String()
}

// Create stores the session with the given TTL.
func (r *RedisStore) Create(ctx context.Context, s *Session, ttl time.Duration) error {
	payload, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(s.ID), payload, ttl).Err()
}

// Get loads a session by ID.
func (r *RedisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a session.
func (r *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}
