package controller

import (
	"context"

	"github.com/openwallet/notification-services/internal/domain"
)

// AuthProvider exposes the wallet's session towards the notification backends
//
//go:generate mockgen -source=interfaces.go -destination=../mocks/controller.go -package=mocks -mock_names=AuthProvider=MockAuthProvider,UserStorageProvider=MockUserStorageProvider,PushService=MockPushService,OnChainService=MockOnChainService,AnnouncementService=MockAnnouncementService
type AuthProvider interface {
	// IsSignedIn reports whether a wallet session exists. It never blocks.
	IsSignedIn() bool
	// GetBearerToken returns the current access token, or an empty string
	// when no token is available.
	GetBearerToken(ctx context.Context) (string, error)
}

// UserStorageProvider exposes the encrypted remote key-value storage that
// holds the trigger document
type UserStorageProvider interface {
	// EnableProfileSyncing turns on remote storage for the profile. Idempotent.
	EnableProfileSyncing(ctx context.Context) error
	// GetStorageKey returns the storage encryption key, or an empty string
	// when none is provisioned.
	GetStorageKey(ctx context.Context) (string, error)
	// GetNotificationStorage returns the serialized trigger document, or
	// domain.ErrNoUserStorage when the entry is absent.
	GetNotificationStorage(ctx context.Context, storageKey string) (string, error)
	// SetNotificationStorage replaces the serialized trigger document.
	SetNotificationStorage(ctx context.Context, storageKey string, value string) error
}

// PushService coordinates the push-notification registration for trigger IDs.
// All operations are idempotent and accept an empty UUID list as a no-op.
type PushService interface {
	EnablePushNotifications(ctx context.Context, bearerToken string, triggerIDs []string) error
	DisablePushNotifications(ctx context.Context, bearerToken string, triggerIDs []string) error
	UpdateTriggerPushNotifications(ctx context.Context, bearerToken string, triggerIDs []string) error
}

// OnChainService talks to the trigger backend. Document-mutating calls take
// the document by value and return the updated copy; the input is never
// modified, so a failed call leaves the caller's document untouched.
type OnChainService interface {
	// CreateTriggers registers the given triggers with the backend and
	// returns the document with those triggers flipped to enabled.
	CreateTriggers(ctx context.Context, doc domain.UserStorage, storageKey string, bearerToken string, triggers []domain.TriggerRef) (domain.UserStorage, error)
	// DeleteTriggers removes the given trigger IDs server-side and returns
	// the document with the owning account entries removed.
	DeleteTriggers(ctx context.Context, doc domain.UserStorage, storageKey string, bearerToken string, triggerIDs []string) (domain.UserStorage, error)
	// GetNotifications fetches raw on-chain notifications for every trigger
	// in the document.
	GetNotifications(ctx context.Context, doc domain.UserStorage, bearerToken string) ([]domain.RawNotification, error)
	// MarkAsRead marks on-chain notification IDs as read server-side.
	MarkAsRead(ctx context.Context, bearerToken string, ids []string) error
}

// AnnouncementService fetches the account-independent feature-announcement feed
type AnnouncementService interface {
	GetAnnouncements(ctx context.Context) ([]domain.RawNotification, error)
}
