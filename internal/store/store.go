// Package store persists the notification state that must survive daemon
// restarts: the user-facing flags, the merged notification list, and the
// locally tracked read IDs for feature announcements.
package store

import (
	"context"

	"github.com/openwallet/notification-services/internal/domain"
)

// Store defines an interface for persisting notification state
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// LoadState returns the persisted state snapshot. A fresh database
	// returns the zero snapshot without error.
	LoadState(ctx context.Context) (domain.StateSnapshot, error)
	// SaveState replaces the persisted snapshot atomically.
	SaveState(ctx context.Context, snapshot domain.StateSnapshot) error
	Close() error
}

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS flags (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				is_feature_seen INTEGER NOT NULL DEFAULT 0,
				is_notifications_enabled INTEGER NOT NULL DEFAULT 0,
				is_feature_announcements_enabled INTEGER NOT NULL DEFAULT 0
			);

			CREATE TABLE IF NOT EXISTS notifications (
				id TEXT PRIMARY KEY,
				type TEXT NOT NULL,
				address TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL,
				is_read INTEGER NOT NULL DEFAULT 0,
				data TEXT NOT NULL DEFAULT '{}'
			);

			CREATE INDEX IF NOT EXISTS idx_notifications_created_at
				ON notifications (created_at DESC);

			CREATE TABLE IF NOT EXISTS read_announcements (
				notification_id TEXT PRIMARY KEY
			);

			INSERT INTO schema_version (version) VALUES (1);
		`,
	},
}
