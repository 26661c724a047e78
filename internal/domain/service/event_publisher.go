package service

import (
	"context"
	"time"

	"profilesync/internal/domain/entity"
)

// ProfileSyncedEvent is emitted after a snapshot was persisted.
type ProfileSyncedEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	UserID          string    `json:"user_id"`
	SyncedAt        time.Time `json:"synced_at"`
	SyncedFields    []string  `json:"synced_fields"`
	ConflictFields  []string  `json:"conflict_fields"`
	UnresolvedCount int       `json:"unresolved_count"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishProfileSynced publishes a sync-completed event for downstream consumers
	PublishProfileSynced(ctx context.Context, event *ProfileSyncedEvent) error

	// PublishSyncRequested queues a background synchronization for the worker
	PublishSyncRequested(ctx context.Context, event *SyncRequestedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// SyncRequestedEvent asks a worker to synchronize a user in the background.
type SyncRequestedEvent struct {
	RequestID string               `json:"request_id,omitempty"` // For distributed tracing
	UserID    string               `json:"user_id"`
	Selection entity.SyncSelection `json:"selection"`
}
