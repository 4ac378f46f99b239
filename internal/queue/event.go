// Package queue defines message payloads exchanged over the message broker.
package queue

// DirectoryEvent is published whenever a directory mutation commits.  It
// carries enough for downstream consumers to log, notify or feed analytics
// without querying the primary database.
type DirectoryEvent struct {
	Entity     string `json:"entity"`         // "venue", "artist" or "show"
	Action     string `json:"action"`         // "created", "updated" or "deleted"
	EntityID   uint64 `json:"entity_id"`      // id of the mutated row
	Name       string `json:"name,omitempty"` // display name when the entity has one
	OccurredAt string `json:"occurred_at"`    // RFC3339 UTC, stamped by the publisher
}
