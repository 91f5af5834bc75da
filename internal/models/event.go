package models

import (
	"encoding/json"
	"time"
)

// EventIngestRequest is the POST /api/events payload. Every field is optional;
// keys beyond these four are ignored rather than rejected.
type EventIngestRequest struct {
	UserID    *string         `json:"userId"`
	Action    *string         `json:"action"`
	Metadata  json.RawMessage `json:"metadata"`
	Timestamp *string         `json:"timestamp"`
}

// Event is a stored analytics event, serialized with the store's column names.
type Event struct {
	ID         int64           `json:"id"`
	UserID     *string         `json:"user_id"`
	Action     *string         `json:"action"`
	Metadata   json.RawMessage `json:"event_metadata"`
	OccurredAt time.Time       `json:"occurred_at"`
}
