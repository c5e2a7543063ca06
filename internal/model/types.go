package model

import "time"

// MemoryRecord is a typed row from the bot's long-term memory table.
// The table is written exclusively by the bot process; this service only
// reads it. (UserID, Key) is the composite identity.
type MemoryRecord struct {
	UserID    string
	Key       string
	Value     map[string]interface{}
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UserSummary wraps one distinct user id present in the store.
type UserSummary struct {
	UserID string `json:"user_id"`
}

// MemoryView is the flattened per-record shape returned by the memories endpoint.
type MemoryView struct {
	Key       string    `json:"key"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
