package common

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CacheSessionStore keeps sessions in the in-process cache. Used when
// no Redis backend is configured and by the handler tests. Sessions do
// not survive a restart, which matches the best-effort durability of
// the rest of the service.
type CacheSessionStore struct {
	cache *CacheService
}

var _ SessionStore = (*CacheSessionStore)(nil)

func NewCacheSessionStore(cache *CacheService) *CacheSessionStore {
	return &CacheSessionStore{cache: cache}
}

func (s *CacheSessionStore) CreateSession(ctx context.Context, userID, username string) (string, error) {
	sessionID := uuid.New().String()

	now := time.Now()
	session := &SessionData{
		SessionID: sessionID,
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(SessionTTL),
	}

	s.cache.Set(sessionKey(sessionID), session, SessionTTL)
	return sessionID, nil
}

func (s *CacheSessionStore) GetSession(ctx context.Context, sessionID string) (*SessionData, error) {
	val, found := s.cache.Get(sessionKey(sessionID))
	if !found {
		return nil, ErrSessionNotFound
	}

	session, ok := val.(*SessionData)
	if !ok {
		return nil, ErrSessionNotFound
	}

	if time.Now().After(session.ExpiresAt) {
		s.cache.Delete(sessionKey(sessionID))
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *CacheSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	s.cache.Delete(sessionKey(sessionID))
	return nil
}
