package common

import (
	"context"
	"testing"
)

func newTestSessionStore() *CacheSessionStore {
	return NewCacheSessionStore(NewCacheService(60, 600))
}

func TestCacheSessionStore_CreateAndGet(t *testing.T) {
	store := newTestSessionStore()
	ctx := context.Background()

	sessionID, err := store.CreateSession(ctx, "user-123", "amelia")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sessionID == "" {
		t.Fatal("Expected a session ID")
	}

	session, err := store.GetSession(ctx, sessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if session.UserID != "user-123" {
		t.Errorf("Expected user-123, got %s", session.UserID)
	}
	if session.Username != "amelia" {
		t.Errorf("Expected amelia, got %s", session.Username)
	}
	if session.ExpiresAt.Before(session.CreatedAt) {
		t.Error("Expected expiry after creation time")
	}
}

func TestCacheSessionStore_UnknownSession(t *testing.T) {
	store := newTestSessionStore()

	if _, err := store.GetSession(context.Background(), "missing"); err != ErrSessionNotFound {
		t.Fatalf("Expected ErrSessionNotFound, got %v", err)
	}
}

func TestCacheSessionStore_DeleteDestroysSession(t *testing.T) {
	store := newTestSessionStore()
	ctx := context.Background()

	sessionID, err := store.CreateSession(ctx, "user-123", "amelia")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if err := store.DeleteSession(ctx, sessionID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if _, err := store.GetSession(ctx, sessionID); err != ErrSessionNotFound {
		t.Fatalf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}

func TestCacheSessionStore_IDsAreUnique(t *testing.T) {
	store := newTestSessionStore()
	ctx := context.Background()

	first, err := store.CreateSession(ctx, "user-123", "amelia")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	second, err := store.CreateSession(ctx, "user-123", "amelia")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if first == second {
		t.Error("Expected distinct session IDs")
	}
}
