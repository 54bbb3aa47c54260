package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/openwallet/notification-services/internal/domain"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// LoadState reads the full persisted snapshot.
func (s *SQLiteStore) LoadState(ctx context.Context) (domain.StateSnapshot, error) {
	var snapshot domain.StateSnapshot

	var flags struct {
		IsFeatureSeen                 int `db:"is_feature_seen"`
		IsNotificationsEnabled        int `db:"is_notifications_enabled"`
		IsFeatureAnnouncementsEnabled int `db:"is_feature_announcements_enabled"`
	}
	err := s.db.GetContext(ctx, &flags,
		"SELECT is_feature_seen, is_notifications_enabled, is_feature_announcements_enabled FROM flags WHERE id = 1",
	)
	switch {
	case err == nil:
		snapshot.IsFeatureSeen = flags.IsFeatureSeen != 0
		snapshot.IsNotificationsEnabled = flags.IsNotificationsEnabled != 0
		snapshot.IsFeatureAnnouncementsEnabled = flags.IsFeatureAnnouncementsEnabled != 0
	case errors.Is(err, sql.ErrNoRows):
		// Fresh database, zero snapshot.
	default:
		return domain.StateSnapshot{}, fmt.Errorf("loading flags: %w", err)
	}

	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, type, address, created_at, is_read, data FROM notifications ORDER BY created_at DESC",
	)
	if err != nil {
		return domain.StateSnapshot{}, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return domain.StateSnapshot{}, err
		}
		snapshot.Notifications = append(snapshot.Notifications, n)
	}
	if err := rows.Err(); err != nil {
		return domain.StateSnapshot{}, fmt.Errorf("iterating notifications: %w", err)
	}

	if err := s.db.SelectContext(ctx, &snapshot.ReadNotifications,
		"SELECT notification_id FROM read_announcements ORDER BY notification_id",
	); err != nil {
		return domain.StateSnapshot{}, fmt.Errorf("querying read announcements: %w", err)
	}

	return snapshot, nil
}

// SaveState replaces the persisted snapshot in a single transaction.
func (s *SQLiteStore) SaveState(ctx context.Context, snapshot domain.StateSnapshot) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT OR REPLACE INTO flags (
			id, is_feature_seen, is_notifications_enabled, is_feature_announcements_enabled
		) VALUES (1, ?, ?, ?)`,
		boolToInt(snapshot.IsFeatureSeen),
		boolToInt(snapshot.IsNotificationsEnabled),
		boolToInt(snapshot.IsFeatureAnnouncementsEnabled),
	)
	if err != nil {
		return fmt.Errorf("saving flags: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM notifications"); err != nil {
		return fmt.Errorf("clearing notifications: %w", err)
	}

	const insertNotification = `
		INSERT INTO notifications (id, type, address, created_at, is_read, data)
		VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, insertNotification)
	if err != nil {
		return fmt.Errorf("preparing notification insert: %w", err)
	}
	defer stmt.Close()

	for _, n := range snapshot.Notifications {
		data := n.Data
		if len(data) == 0 {
			data = json.RawMessage("{}")
		}
		_, err = stmt.ExecContext(ctx,
			n.ID, string(n.Type), n.Address,
			n.CreatedAt.UTC(), boolToInt(n.IsRead), string(data),
		)
		if err != nil {
			return fmt.Errorf("saving notification %s: %w", n.ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM read_announcements"); err != nil {
		return fmt.Errorf("clearing read announcements: %w", err)
	}

	for _, id := range snapshot.ReadNotifications {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO read_announcements (notification_id) VALUES (?)", id,
		)
		if err != nil {
			return fmt.Errorf("saving read announcement %s: %w", id, err)
		}
	}

	return tx.Commit()
}

// scanNotification scans a notification row from a sqlx.Rows result set.
func scanNotification(rows *sqlx.Rows) (domain.Notification, error) {
	var (
		n            domain.Notification
		notifyType   string
		readInt      int
		createdAt    time.Time
		dataAsString string
	)

	err := rows.Scan(&n.ID, &notifyType, &n.Address, &createdAt, &readInt, &dataAsString)
	if err != nil {
		return domain.Notification{}, fmt.Errorf("scanning notification row: %w", err)
	}

	n.Type = domain.TriggerKind(notifyType)
	n.CreatedAt = createdAt
	n.IsRead = readInt != 0
	n.Data = json.RawMessage(dataAsString)

	return n, nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
