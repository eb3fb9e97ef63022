// Package notify defines the interface for publishing refresh-cycle
// completion events. The abstraction keeps the scheduler independent of a
// specific messaging backend.
package notify

import (
	"context"
)

// Provider is a destination for cycle-completion announcements.
type Provider interface {
	// Publish sends a message identifying the completed refresh cycle.
	// Implementations may deliver asynchronously.
	Publish(ctx context.Context, cycleID string) error

	// Close cleans up any client connections and resources.
	Close() error
}

// NoOpProvider discards every message. It is the default when no messaging
// backend is configured.
type NoOpProvider struct{}

// Publish for NoOpProvider does nothing and returns nil.
func (n *NoOpProvider) Publish(_ context.Context, _ string) error { return nil }

// Close for NoOpProvider does nothing and returns nil.
func (n *NoOpProvider) Close() error { return nil }
