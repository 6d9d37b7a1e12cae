package dtos

import "time"

// APIResponse is the standard envelope for auth and user endpoints.
// Airport endpoints return raw records instead, matching the flat
// JSON document they mirror.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// UserResponse is a user representation with the password hash stripped.
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}
