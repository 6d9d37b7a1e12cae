package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"openskies/airfield/internal/models/entities"
)

const loginEventsSchema = `
CREATE TABLE IF NOT EXISTS login_events (
	id BIGSERIAL PRIMARY KEY,
	username TEXT NOT NULL,
	success BOOLEAN NOT NULL,
	request_id TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const insertLoginEvent = `
INSERT INTO login_events (username, success, request_id)
VALUES (:username, :success, :request_id)`

// LoginEventRepo records login attempts. The audit trail is
// best-effort and write-only; a failed insert never fails the login.
type LoginEventRepo struct {
	db *sqlx.DB
}

// NewLoginEventRepo creates the repository and ensures the table exists.
func NewLoginEventRepo(db *sqlx.DB) (*LoginEventRepo, error) {
	if _, err := db.Exec(loginEventsSchema); err != nil {
		return nil, fmt.Errorf("failed to ensure login_events table: %w", err)
	}
	return &LoginEventRepo{db: db}, nil
}

// Record inserts one login attempt.
func (r *LoginEventRepo) Record(ctx context.Context, event entities.LoginEvent) error {
	if _, err := r.db.NamedExecContext(ctx, insertLoginEvent, event); err != nil {
		return fmt.Errorf("failed to record login event: %w", err)
	}
	return nil
}
