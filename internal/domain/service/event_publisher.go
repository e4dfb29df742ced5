package service

import (
	"context"
	"time"
)

// Library event types
const (
	EventSpotifyLinked = "account.spotify_linked"
	EventListItemAdded = "list.item_added"
	EventListReordered = "list.reordered"
)

// LibraryEvent is published after a state change has been committed.
// Consumers deduplicate on ID.
type LibraryEvent struct {
	ID            string    `json:"id"`
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          string    `json:"type"`
	AccountID     string    `json:"account_id,omitempty"`
	SpotifyUserID string    `json:"spotify_user_id,omitempty"`
	ListID        string    `json:"list_id,omitempty"`
	ItemID        string    `json:"item_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish sends a library event for asynchronous consumers
	Publish(ctx context.Context, event *LibraryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
