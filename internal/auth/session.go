package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrNoSession is returned when a session id has no stored user.
var ErrNoSession = errors.New("no active session")

// SessionManager maps opaque session ids to user ids in Redis.
// A session is set on signup/login, read on every protected request and
// cleared on logout.
type SessionManager struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSessionManager(rdb *redis.Client, ttl time.Duration) *SessionManager {
	return &SessionManager{rdb: rdb, ttl: ttl}
}

// Set stores the user id under the session id for the configured TTL.
func (s *SessionManager) Set(ctx context.Context, sessionID string, userID uint64) error {
	key := fmt.Sprintf("rb:session:%s", sessionID)
	return s.rdb.Set(ctx, key, strconv.FormatUint(userID, 10), s.ttl).Err()
}

// Get resolves a session id to a user id. A missing or expired session
// returns ErrNoSession.
func (s *SessionManager) Get(ctx context.Context, sessionID string) (uint64, error) {
	key := fmt.Sprintf("rb:session:%s", sessionID)
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, err
	}
	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, ErrNoSession
	}
	return userID, nil
}

// Clear removes the session, used during logout.
func (s *SessionManager) Clear(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf("rb:session:%s", sessionID)
	return s.rdb.Del(ctx, key).Err()
}
