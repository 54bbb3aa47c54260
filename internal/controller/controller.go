// Package controller orchestrates the notification subsystem: it owns the
// persistent state, sequences calls across the auth, storage, push and
// on-chain collaborators, and exposes the public operation set.
package controller

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/openwallet/notification-services/internal/accounts"
	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/logger"
	"github.com/openwallet/notification-services/internal/processor"
	"github.com/openwallet/notification-services/internal/store"
	"github.com/openwallet/notification-services/internal/triggers"
)

// AccountLister yields the wallet's current checksummed account set
type AccountLister interface {
	ListAccounts(ctx context.Context) (accounts.ListResult, error)
}

// State is the full observable controller state, including the transient
// progress flags that never survive a restart.
type State struct {
	domain.StateSnapshot
	IsUpdatingTriggers      bool     `json:"is_updating_triggers"`
	IsFetchingNotifications bool     `json:"is_fetching_notifications"`
	IsCheckingPresence      bool     `json:"is_checking_presence"`
	UpdatingAccounts        []string `json:"updating_accounts"`
}

// StateListener observes every controller state change
type StateListener func(State)

// Config wires the controller's collaborators
type Config struct {
	Auth          AuthProvider
	Storage       UserStorageProvider
	Push          PushService
	OnChain       OnChainService
	Announcements AnnouncementService
	Accounts      AccountLister
	Store         store.Store
}

// Controller owns the notification state machine. Collaborator calls happen
// outside the state lock; the per-account updating flags are advisory
// observable state only, not a gate. Concurrent operations on the same
// account can race on the remote document (last write wins).
type Controller struct {
	auth          AuthProvider
	storage       UserStorageProvider
	push          PushService
	onChain       OnChainService
	announcements AnnouncementService
	accounts      AccountLister
	store         store.Store

	mu               sync.Mutex
	snapshot         domain.StateSnapshot
	updatingTriggers bool
	fetching         bool
	checkingPresence bool
	updatingAccounts map[string]struct{}
	listeners        []StateListener
}

// New creates a controller, restoring the persisted snapshot. Transient
// progress flags always start false regardless of how the process exited.
func New(ctx context.Context, cfg Config) (*Controller, error) {
	snapshot, err := cfg.Store.LoadState(ctx)
	if err != nil {
		return nil, err
	}

	return &Controller{
		auth:             cfg.Auth,
		storage:          cfg.Storage,
		push:             cfg.Push,
		onChain:          cfg.OnChain,
		announcements:    cfg.Announcements,
		accounts:         cfg.Accounts,
		store:            cfg.Store,
		snapshot:         snapshot,
		updatingAccounts: make(map[string]struct{}),
	}, nil
}

// Subscribe registers a listener invoked with a state copy after every change
func (c *Controller) Subscribe(listener StateListener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, listener)
}

// GetState returns a copy of the full observable state
func (c *Controller) GetState() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

// SelectIsNotificationsEnabled reports whether notifications are enabled
func (c *Controller) SelectIsNotificationsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot.IsNotificationsEnabled
}

func (c *Controller) stateLocked() State {
	state := State{
		StateSnapshot:           c.snapshot,
		IsUpdatingTriggers:      c.updatingTriggers,
		IsFetchingNotifications: c.fetching,
		IsCheckingPresence:      c.checkingPresence,
	}
	state.Notifications = append([]domain.Notification(nil), c.snapshot.Notifications...)
	state.ReadNotifications = append([]string(nil), c.snapshot.ReadNotifications...)
	for account := range c.updatingAccounts {
		state.UpdatingAccounts = append(state.UpdatingAccounts, account)
	}
	return state
}

// mutate applies fn to the state under the lock, persists the snapshot and
// notifies listeners. Persistence failures are logged, never propagated:
// the in-memory state is authoritative for the running process. The snapshot
// handed to the store is a deep copy: SaveState runs outside the lock, and a
// shared backing array would race with in-place edits such as read flips.
func (c *Controller) mutate(ctx context.Context, fn func()) {
	c.mu.Lock()
	fn()
	snapshot := c.snapshot.Clone()
	listeners := append([]StateListener(nil), c.listeners...)
	state := c.stateLocked()
	c.mu.Unlock()

	if err := c.store.SaveState(ctx, snapshot); err != nil {
		logger.Error(err, zap.String("op", "persist state"))
	}
	for _, listener := range listeners {
		listener(state)
	}
}

// setFlags flips transient progress flags and notifies listeners without
// touching persistence.
func (c *Controller) setFlags(fn func()) {
	c.mu.Lock()
	fn()
	listeners := append([]StateListener(nil), c.listeners...)
	state := c.stateLocked()
	c.mu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}
}

// CreateOnChainTriggers ensures every wallet account has a full trigger set
// registered with the backend and the push service, then flips the enablement
// flags on. The remote document is only persisted after backend creation and
// push registration both succeed, so a crash leaves it reflecting completed
// steps only.
func (c *Controller) CreateOnChainTriggers(ctx context.Context) (domain.UserStorage, error) {
	c.setFlags(func() { c.updatingTriggers = true })
	defer c.setFlags(func() { c.updatingTriggers = false })

	if !c.auth.IsSignedIn() {
		c.mutate(ctx, func() { c.snapshot.IsNotificationsEnabled = false })
		return domain.UserStorage{}, domain.ErrAuthRequired
	}

	if err := c.storage.EnableProfileSyncing(ctx); err != nil {
		logger.Error(err, zap.String("op", "enable profile syncing"))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}

	bearerToken, storageKey, err := c.getCredentials(ctx)
	if err != nil {
		return domain.UserStorage{}, err
	}

	doc, err := c.getUserStorage(ctx, storageKey)
	switch {
	case errors.Is(err, domain.ErrNoUserStorage):
		doc, err = c.initialUserStorage(ctx)
		if err != nil {
			return domain.UserStorage{}, err
		}
	case err != nil:
		return domain.UserStorage{}, err
	}

	allTriggers := triggers.TraverseUserStorageTriggers(&doc, nil)

	doc, err = c.onChain.CreateTriggers(ctx, doc, storageKey, bearerToken, allTriggers)
	if err != nil {
		logger.Error(err, zap.String("op", "create triggers"))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}

	if err := c.push.EnablePushNotifications(ctx, bearerToken, triggers.GetAllUUIDs(&doc)); err != nil {
		logger.Error(err, zap.String("op", "enable push notifications"))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}

	if err := c.setUserStorage(ctx, storageKey, doc); err != nil {
		return domain.UserStorage{}, err
	}

	c.mutate(ctx, func() {
		c.snapshot.IsNotificationsEnabled = true
		c.snapshot.IsFeatureAnnouncementsEnabled = true
		c.snapshot.IsFeatureSeen = true
	})

	return doc, nil
}

// EnableNotifications turns the whole subsystem on. Failures surface as the
// generic backend error; the underlying cause is logged only.
func (c *Controller) EnableNotifications(ctx context.Context) error {
	if _, err := c.CreateOnChainTriggers(ctx); err != nil {
		logger.Error(err, zap.String("op", "enable notifications"))
		if errors.Is(err, domain.ErrAuthRequired) {
			return err
		}
		return domain.ErrBackendFailure
	}
	return nil
}

// DisableNotifications de-registers every trigger from the push service and
// clears the enablement flags and the notification list. Push de-registration
// failure aborts without clearing state: claiming notifications are off while
// the backend still has them registered would be worse than reporting failure.
func (c *Controller) DisableNotifications(ctx context.Context) error {
	c.setFlags(func() { c.updatingTriggers = true })
	defer c.setFlags(func() { c.updatingTriggers = false })

	bearerToken, storageKey, err := c.getCredentials(ctx)
	if err != nil {
		return err
	}

	doc, err := c.getUserStorage(ctx, storageKey)
	if err != nil {
		return err
	}

	if err := c.push.DisablePushNotifications(ctx, bearerToken, triggers.GetAllUUIDs(&doc)); err != nil {
		logger.Error(err, zap.String("op", "disable push notifications"))
		return domain.ErrBackendFailure
	}

	c.mutate(ctx, func() {
		c.snapshot.IsNotificationsEnabled = false
		c.snapshot.IsFeatureAnnouncementsEnabled = false
		c.snapshot.Notifications = nil
	})

	return nil
}

// SetFeatureAnnouncementsEnabled toggles the feature-announcement feed
func (c *Controller) SetFeatureAnnouncementsEnabled(ctx context.Context, enabled bool) {
	c.mutate(ctx, func() { c.snapshot.IsFeatureAnnouncementsEnabled = enabled })
}

// SetFeatureSeen records that the user has seen the notifications feature
func (c *Controller) SetFeatureSeen(ctx context.Context) {
	c.mutate(ctx, func() { c.snapshot.IsFeatureSeen = true })
}

// UpdateOnChainTriggersByAccount ensures the given accounts have a full
// trigger set. When any of their triggers is still disabled, the document is
// persisted in that state first so a crash mid-creation leaves a resumable
// record, and backend creation is requested for every trigger of the given
// accounts (creation is idempotent for already-enabled ones). Push
// registration is resynced with every UUID in the document and the document
// re-persisted regardless, so a drifted push subscription heals on any
// update call.
func (c *Controller) UpdateOnChainTriggersByAccount(ctx context.Context, accountList []string) (domain.UserStorage, error) {
	c.markAccountsUpdating(accountList)
	defer c.clearAccountsUpdating(accountList)

	bearerToken, storageKey, err := c.getCredentials(ctx)
	if err != nil {
		return domain.UserStorage{}, err
	}

	doc, err := c.getUserStorage(ctx, storageKey)
	if err != nil {
		return domain.UserStorage{}, err
	}

	for _, account := range accountList {
		triggers.UpsertAddressTriggers(account, &doc)
	}

	accountRefs := triggers.TraverseUserStorageTriggers(&doc, &triggers.TraverseOptions{
		MapTrigger: func(t domain.TriggerRef) (domain.TriggerRef, bool) {
			for _, account := range accountList {
				if domain.SameAddress(account, t.Address) {
					return t, true
				}
			}
			return domain.TriggerRef{}, false
		},
	})

	hasDisabled := false
	for _, ref := range accountRefs {
		if !ref.Enabled {
			hasDisabled = true
			break
		}
	}

	if hasDisabled {
		if err := c.setUserStorage(ctx, storageKey, doc); err != nil {
			return domain.UserStorage{}, err
		}

		doc, err = c.onChain.CreateTriggers(ctx, doc, storageKey, bearerToken, accountRefs)
		if err != nil {
			logger.Error(err, zap.String("op", "create triggers"), zap.Strings("accounts", accountList))
			return domain.UserStorage{}, domain.ErrBackendFailure
		}
	}

	if err := c.push.UpdateTriggerPushNotifications(ctx, bearerToken, triggers.GetAllUUIDs(&doc)); err != nil {
		logger.Error(err, zap.String("op", "update push notifications"))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}

	if err := c.setUserStorage(ctx, storageKey, doc); err != nil {
		return domain.UserStorage{}, err
	}

	return doc, nil
}

// DeleteOnChainTriggersByAccount removes every trigger owned by the given
// accounts from the backend, the push service and the remote document.
// Accounts with no triggers in the document are a no-op, not an error.
func (c *Controller) DeleteOnChainTriggersByAccount(ctx context.Context, accountList []string) (domain.UserStorage, error) {
	c.markAccountsUpdating(accountList)
	defer c.clearAccountsUpdating(accountList)

	bearerToken, storageKey, err := c.getCredentials(ctx)
	if err != nil {
		return domain.UserStorage{}, err
	}

	doc, err := c.getUserStorage(ctx, storageKey)
	if err != nil {
		return domain.UserStorage{}, err
	}

	var uuids []string
	for _, account := range accountList {
		uuids = append(uuids, triggers.GetUUIDsForAccount(&doc, account)...)
	}
	if len(uuids) == 0 {
		return doc, nil
	}

	doc, err = c.onChain.DeleteTriggers(ctx, doc, storageKey, bearerToken, uuids)
	if err != nil {
		logger.Error(err, zap.String("op", "delete triggers"), zap.Strings("accounts", accountList))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}

	if err := c.push.DisablePushNotifications(ctx, bearerToken, uuids); err != nil {
		logger.Error(err, zap.String("op", "disable push notifications"))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}

	if err := c.setUserStorage(ctx, storageKey, doc); err != nil {
		return domain.UserStorage{}, err
	}

	return doc, nil
}

// FetchAndUpdateNotifications pulls both notification sources, merges them
// newest first and replaces the list wholesale. Either source failing
// degrades to an empty contribution; only unexpected processing failures
// surface to the caller.
func (c *Controller) FetchAndUpdateNotifications(ctx context.Context) ([]domain.Notification, error) {
	c.setFlags(func() { c.fetching = true })
	defer c.setFlags(func() { c.fetching = false })

	c.mu.Lock()
	announcementsEnabled := c.snapshot.IsFeatureAnnouncementsEnabled
	readIDs := append([]string(nil), c.snapshot.ReadNotifications...)
	c.mu.Unlock()

	var rawAnnouncements []domain.RawNotification
	if announcementsEnabled {
		var err error
		rawAnnouncements, err = c.announcements.GetAnnouncements(ctx)
		if err != nil {
			logger.Warn("failed to fetch feature announcements", zap.Error(err))
			rawAnnouncements = nil
		}
	}

	rawOnChain := c.fetchOnChainNotifications(ctx)

	merged := processor.ProcessAndFilter(rawAnnouncements, readIDs)
	merged = append(merged, processor.ProcessAndFilter(rawOnChain, readIDs)...)
	processor.SortByCreatedAtDesc(merged)

	c.mutate(ctx, func() { c.snapshot.Notifications = merged })

	return merged, nil
}

// fetchOnChainNotifications is best-effort: a missing document or token, or a
// backend failure, degrades to an empty list.
func (c *Controller) fetchOnChainNotifications(ctx context.Context) []domain.RawNotification {
	bearerToken, storageKey, err := c.getCredentials(ctx)
	if err != nil {
		logger.Warn("skipping on-chain notification fetch", zap.Error(err))
		return nil
	}

	doc, err := c.getUserStorage(ctx, storageKey)
	if err != nil {
		logger.Warn("skipping on-chain notification fetch", zap.Error(err))
		return nil
	}

	raw, err := c.onChain.GetNotifications(ctx, doc, bearerToken)
	if err != nil {
		logger.Warn("failed to fetch on-chain notifications", zap.Error(err))
		return nil
	}
	return raw
}

// MarkNotificationsAsRead marks notifications read. On-chain items are marked
// remotely first and silently skipped when that fails, so the local read
// state never runs ahead of the backend for them; feature announcements have
// no remote read concept and are always recorded in the local read list.
func (c *Controller) MarkNotificationsAsRead(ctx context.Context, items []domain.MarkAsReadItem) {
	var onChainIDs, featureIDs []string
	for _, item := range items {
		if item.IsRead {
			continue
		}
		switch {
		case item.Type == domain.KindFeaturesAnnouncement:
			featureIDs = append(featureIDs, item.ID)
		case item.Type.IsOnChain():
			onChainIDs = append(onChainIDs, item.ID)
		}
	}

	if len(onChainIDs) > 0 {
		bearerToken, err := c.auth.GetBearerToken(ctx)
		if err != nil || bearerToken == "" {
			logger.Warn("no bearer token, on-chain notifications left unread", zap.Error(err))
			onChainIDs = nil
		} else if err := c.onChain.MarkAsRead(ctx, bearerToken, onChainIDs); err != nil {
			logger.Warn("failed to mark on-chain notifications as read", zap.Error(err))
			onChainIDs = nil
		}
	}

	newlyRead := make(map[string]struct{}, len(onChainIDs)+len(featureIDs))
	for _, id := range onChainIDs {
		newlyRead[id] = struct{}{}
	}
	for _, id := range featureIDs {
		newlyRead[id] = struct{}{}
	}
	if len(newlyRead) == 0 {
		return
	}

	c.mutate(ctx, func() {
		existing := make(map[string]struct{}, len(c.snapshot.ReadNotifications))
		for _, id := range c.snapshot.ReadNotifications {
			existing[id] = struct{}{}
		}
		for _, id := range featureIDs {
			if _, ok := existing[id]; !ok {
				c.snapshot.ReadNotifications = append(c.snapshot.ReadNotifications, id)
				existing[id] = struct{}{}
			}
		}

		for i := range c.snapshot.Notifications {
			if _, ok := newlyRead[c.snapshot.Notifications[i].ID]; ok {
				c.snapshot.Notifications[i].IsRead = true
			}
		}
	})
}

// UpdateNotificationsList inserts one externally pushed notification at the
// front of the list. Duplicates by ID are a no-op; malformed payloads are
// dropped with a log entry, never surfaced.
func (c *Controller) UpdateNotificationsList(ctx context.Context, raw domain.RawNotification) {
	c.mu.Lock()
	exists := c.containsNotificationLocked(raw.ID)
	readIDs := append([]string(nil), c.snapshot.ReadNotifications...)
	c.mu.Unlock()
	if exists {
		return
	}

	processed, err := processor.ProcessNotification(raw, readIDs)
	if err != nil {
		logger.Warn("dropping pushed notification", zap.Error(err), zap.String("id", raw.ID))
		return
	}

	c.mutate(ctx, func() {
		// Re-check: another insert may have landed while processing.
		if c.containsNotificationLocked(processed.ID) {
			return
		}
		c.snapshot.Notifications = append([]domain.Notification{processed}, c.snapshot.Notifications...)
	})
}

func (c *Controller) containsNotificationLocked(id string) bool {
	for _, n := range c.snapshot.Notifications {
		if n.ID == id {
			return true
		}
	}
	return false
}

// CheckAccountsPresence reports, per queried address, whether the remote
// document has a trigger entry for it.
func (c *Controller) CheckAccountsPresence(ctx context.Context, accountList []string) (map[string]bool, error) {
	c.setFlags(func() { c.checkingPresence = true })
	defer c.setFlags(func() { c.checkingPresence = false })

	_, storageKey, err := c.getCredentials(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := c.getUserStorage(ctx, storageKey)
	if err != nil {
		return nil, err
	}

	return triggers.CheckAccountsPresence(&doc, accountList), nil
}

// CheckTriggersPresenceByGroup reports, per trigger group, whether every
// account in the document carries every kind in that group.
//
// Deprecated: inherits the limitation of triggers.CheckTriggersPresenceByGroup.
func (c *Controller) CheckTriggersPresenceByGroup(ctx context.Context) (map[domain.TriggerKindGroup]bool, error) {
	c.setFlags(func() { c.checkingPresence = true })
	defer c.setFlags(func() { c.checkingPresence = false })

	_, storageKey, err := c.getCredentials(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := c.getUserStorage(ctx, storageKey)
	if err != nil {
		return nil, err
	}

	return triggers.CheckTriggersPresenceByGroup(&doc), nil
}

func (c *Controller) markAccountsUpdating(accountList []string) {
	c.setFlags(func() {
		for _, account := range accountList {
			c.updatingAccounts[account] = struct{}{}
		}
	})
}

func (c *Controller) clearAccountsUpdating(accountList []string) {
	c.setFlags(func() {
		for _, account := range accountList {
			delete(c.updatingAccounts, account)
		}
	})
}

// getCredentials resolves the bearer token and the storage key. Either one
// missing fails the operation with ErrMissingCredentials.
func (c *Controller) getCredentials(ctx context.Context) (bearerToken string, storageKey string, err error) {
	bearerToken, err = c.auth.GetBearerToken(ctx)
	if err != nil {
		logger.Error(err, zap.String("op", "get bearer token"))
		return "", "", domain.ErrMissingCredentials
	}

	storageKey, err = c.storage.GetStorageKey(ctx)
	if err != nil {
		logger.Error(err, zap.String("op", "get storage key"))
		return "", "", domain.ErrMissingCredentials
	}

	if bearerToken == "" || storageKey == "" {
		return "", "", domain.ErrMissingCredentials
	}
	return bearerToken, storageKey, nil
}

// getUserStorage loads and parses the remote trigger document. A missing
// entry or a document without a recognized version both map to
// ErrNoUserStorage.
func (c *Controller) getUserStorage(ctx context.Context, storageKey string) (domain.UserStorage, error) {
	value, err := c.storage.GetNotificationStorage(ctx, storageKey)
	if err != nil {
		if errors.Is(err, domain.ErrNoUserStorage) {
			return domain.UserStorage{}, domain.ErrNoUserStorage
		}
		logger.Error(err, zap.String("op", "get notification storage"))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}

	var doc domain.UserStorage
	if err := json.Unmarshal([]byte(value), &doc); err != nil {
		logger.Error(err, zap.String("op", "parse notification storage"))
		return domain.UserStorage{}, domain.ErrNoUserStorage
	}
	if !doc.Initialized() {
		return domain.UserStorage{}, domain.ErrNoUserStorage
	}
	return doc, nil
}

func (c *Controller) setUserStorage(ctx context.Context, storageKey string, doc domain.UserStorage) error {
	value, err := json.Marshal(doc)
	if err != nil {
		logger.Error(err, zap.String("op", "serialize notification storage"))
		return domain.ErrBackendFailure
	}
	if err := c.storage.SetNotificationStorage(ctx, storageKey, string(value)); err != nil {
		logger.Error(err, zap.String("op", "set notification storage"))
		return domain.ErrBackendFailure
	}
	return nil
}

// initialUserStorage builds a fresh document covering every wallet account
// with all triggers disabled.
func (c *Controller) initialUserStorage(ctx context.Context) (domain.UserStorage, error) {
	result, err := c.accounts.ListAccounts(ctx)
	if err != nil {
		logger.Error(err, zap.String("op", "list accounts"))
		return domain.UserStorage{}, domain.ErrBackendFailure
	}
	return triggers.InitializeUserStorage(result.Accounts, false), nil
}
