package entities

import "time"

// LoginEvent is one row of the login audit trail. Rows are write-only
// from the service's point of view.
type LoginEvent struct {
	ID        int64     `db:"id"`
	Username  string    `db:"username"`
	Success   bool      `db:"success"`
	RequestID string    `db:"request_id"`
	CreatedAt time.Time `db:"created_at"`
}
