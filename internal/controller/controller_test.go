package controller_test

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwallet/notification-services/internal/accounts"
	"github.com/openwallet/notification-services/internal/controller"
	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/mocks"
	"github.com/openwallet/notification-services/internal/store"
	"github.com/openwallet/notification-services/internal/triggers"
)

const (
	testAccount  = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	testAccount2 = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	testToken    = "bearer-token"
	testKey      = "storage-key"
)

type fixture struct {
	auth          *mocks.MockAuthProvider
	storage       *mocks.MockUserStorageProvider
	push          *mocks.MockPushService
	onChain       *mocks.MockOnChainService
	announcements *mocks.MockAnnouncementService
	store         *store.MemoryStore
	lister        *stubAccountLister
	ctrl          *controller.Controller
}

type stubAccountLister struct {
	accounts []string
	err      error
}

func (s *stubAccountLister) ListAccounts(_ context.Context) (accounts.ListResult, error) {
	if s.err != nil {
		return accounts.ListResult{}, s.err
	}
	return accounts.ListResult{Accounts: s.accounts}, nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	f := &fixture{
		auth:          mocks.NewMockAuthProvider(mockCtrl),
		storage:       mocks.NewMockUserStorageProvider(mockCtrl),
		push:          mocks.NewMockPushService(mockCtrl),
		onChain:       mocks.NewMockOnChainService(mockCtrl),
		announcements: mocks.NewMockAnnouncementService(mockCtrl),
		store:         store.NewMemoryStore(),
		lister:        &stubAccountLister{accounts: []string{testAccount}},
	}

	c, err := controller.New(context.Background(), controller.Config{
		Auth:          f.auth,
		Storage:       f.storage,
		Push:          f.push,
		OnChain:       f.onChain,
		Announcements: f.announcements,
		Accounts:      f.lister,
		Store:         f.store,
	})
	require.NoError(t, err)
	f.ctrl = c
	return f
}

func (f *fixture) expectCredentials() {
	f.auth.EXPECT().GetBearerToken(gomock.Any()).Return(testToken, nil).AnyTimes()
	f.storage.EXPECT().GetStorageKey(gomock.Any()).Return(testKey, nil).AnyTimes()
}

func (f *fixture) expectStoredDoc(doc domain.UserStorage) {
	value, _ := json.Marshal(doc)
	f.storage.EXPECT().
		GetNotificationStorage(gomock.Any(), testKey).
		Return(string(value), nil).
		AnyTimes()
}

func enabledDoc(accountList ...string) domain.UserStorage {
	doc := triggers.InitializeUserStorage(accountList, true)
	return doc
}

func TestCreateOnChainTriggers_InitializesEmptyStorage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.auth.EXPECT().IsSignedIn().Return(true)
	f.storage.EXPECT().EnableProfileSyncing(gomock.Any()).Return(nil)
	f.expectCredentials()
	f.storage.EXPECT().
		GetNotificationStorage(gomock.Any(), testKey).
		Return("", domain.ErrNoUserStorage)

	kindCount := len(domain.AccountTriggerKinds())

	f.onChain.EXPECT().
		CreateTriggers(gomock.Any(), gomock.Any(), testKey, testToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, doc domain.UserStorage, _, _ string, refs []domain.TriggerRef) (domain.UserStorage, error) {
			assert.Len(t, refs, kindCount)
			for _, ref := range refs {
				assert.False(t, ref.Enabled)
			}
			out := doc.Clone()
			for addr, at := range out.Accounts {
				for kind, trigger := range at {
					trigger.Enabled = true
					out.Accounts[addr][kind] = trigger
				}
			}
			return out, nil
		})

	f.push.EXPECT().
		EnablePushNotifications(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, triggerIDs []string) error {
			assert.Len(t, triggerIDs, kindCount)
			return nil
		})

	f.storage.EXPECT().
		SetNotificationStorage(gomock.Any(), testKey, gomock.Any()).
		Return(nil)

	doc, err := f.ctrl.CreateOnChainTriggers(ctx)
	require.NoError(t, err)

	require.Len(t, doc.Accounts, 1)
	entry := doc.Accounts[domain.NormalizeAddress(testAccount)]
	require.Len(t, entry, kindCount)
	for _, trigger := range entry {
		assert.True(t, trigger.Enabled)
	}

	state := f.ctrl.GetState()
	assert.True(t, state.IsNotificationsEnabled)
	assert.True(t, state.IsFeatureAnnouncementsEnabled)
	assert.True(t, state.IsFeatureSeen)
	assert.False(t, state.IsUpdatingTriggers)
}

func TestCreateOnChainTriggers_NotSignedIn(t *testing.T) {
	f := newFixture(t)

	f.auth.EXPECT().IsSignedIn().Return(false)

	_, err := f.ctrl.CreateOnChainTriggers(context.Background())
	assert.ErrorIs(t, err, domain.ErrAuthRequired)
	assert.False(t, f.ctrl.SelectIsNotificationsEnabled())
}

func TestCreateOnChainTriggers_FailureDoesNotPersist(t *testing.T) {
	f := newFixture(t)

	f.auth.EXPECT().IsSignedIn().Return(true)
	f.storage.EXPECT().EnableProfileSyncing(gomock.Any()).Return(nil)
	f.expectCredentials()
	f.expectStoredDoc(triggers.InitializeUserStorage([]string{testAccount}, false))

	f.onChain.EXPECT().
		CreateTriggers(gomock.Any(), gomock.Any(), testKey, testToken, gomock.Any()).
		Return(domain.UserStorage{}, errors.New("boom"))

	// SetNotificationStorage must not be called.
	_, err := f.ctrl.CreateOnChainTriggers(context.Background())
	assert.ErrorIs(t, err, domain.ErrBackendFailure)

	state := f.ctrl.GetState()
	assert.False(t, state.IsNotificationsEnabled)
	assert.False(t, state.IsUpdatingTriggers)
}

func TestDisableNotifications(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := enabledDoc(testAccount)
	f.expectCredentials()
	f.expectStoredDoc(doc)
	f.push.EXPECT().
		DisablePushNotifications(gomock.Any(), testToken, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, triggerIDs []string) error {
			assert.Len(t, triggerIDs, len(domain.AccountTriggerKinds()))
			return nil
		})

	f.ctrl.SetFeatureAnnouncementsEnabled(ctx, true)

	require.NoError(t, f.ctrl.DisableNotifications(ctx))

	state := f.ctrl.GetState()
	assert.False(t, state.IsNotificationsEnabled)
	assert.False(t, state.IsFeatureAnnouncementsEnabled)
	assert.Empty(t, state.Notifications)
}

func TestDisableNotifications_PushFailureAborts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expectCredentials()
	f.expectStoredDoc(enabledDoc(testAccount))
	f.push.EXPECT().
		DisablePushNotifications(gomock.Any(), testToken, gomock.Any()).
		Return(errors.New("push backend down"))

	f.ctrl.SetFeatureAnnouncementsEnabled(ctx, true)

	err := f.ctrl.DisableNotifications(ctx)
	assert.ErrorIs(t, err, domain.ErrBackendFailure)

	// State must be untouched: the backend still has the triggers registered.
	assert.True(t, f.ctrl.GetState().IsFeatureAnnouncementsEnabled)
}

func TestDisableNotifications_NoUserStorage(t *testing.T) {
	f := newFixture(t)

	f.expectCredentials()
	f.storage.EXPECT().
		GetNotificationStorage(gomock.Any(), testKey).
		Return("", domain.ErrNoUserStorage)

	err := f.ctrl.DisableNotifications(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoUserStorage)
}

func TestDeleteOnChainTriggersByAccount_UnknownAccountIsNoOp(t *testing.T) {
	f := newFixture(t)

	doc := enabledDoc(testAccount)
	f.expectCredentials()
	f.expectStoredDoc(doc)

	// No onChain or push expectations: nothing may be called.
	got, err := f.ctrl.DeleteOnChainTriggersByAccount(context.Background(), []string{testAccount2})
	require.NoError(t, err)
	assert.Equal(t, doc, got)
	assert.Empty(t, f.ctrl.GetState().UpdatingAccounts)
}

func TestDeleteOnChainTriggersByAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := enabledDoc(testAccount, testAccount2)
	f.expectCredentials()
	f.expectStoredDoc(doc)

	expectedUUIDs := triggers.GetUUIDsForAccount(&doc, testAccount)
	require.NotEmpty(t, expectedUUIDs)

	f.onChain.EXPECT().
		DeleteTriggers(gomock.Any(), gomock.Any(), testKey, testToken, gomock.InAnyOrder(expectedUUIDs)).
		DoAndReturn(func(_ context.Context, d domain.UserStorage, _, _ string, _ []string) (domain.UserStorage, error) {
			out := d.Clone()
			delete(out.Accounts, domain.NormalizeAddress(testAccount))
			return out, nil
		})
	f.push.EXPECT().
		DisablePushNotifications(gomock.Any(), testToken, gomock.InAnyOrder(expectedUUIDs)).
		Return(nil)
	f.storage.EXPECT().
		SetNotificationStorage(gomock.Any(), testKey, gomock.Any()).
		Return(nil)

	got, err := f.ctrl.DeleteOnChainTriggersByAccount(ctx, []string{testAccount})
	require.NoError(t, err)

	_, remains := got.Accounts[domain.NormalizeAddress(testAccount)]
	assert.False(t, remains)
	_, other := got.Accounts[domain.NormalizeAddress(testAccount2)]
	assert.True(t, other)
	assert.Empty(t, f.ctrl.GetState().UpdatingAccounts)
}

func TestUpdateOnChainTriggersByAccount_NewAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	doc := enabledDoc(testAccount)
	f.expectCredentials()
	f.expectStoredDoc(doc)

	kindCount := len(domain.AccountTriggerKinds())

	// First persist carries the disabled triggers so a crash mid-creation
	// leaves a resumable record.
	gomock.InOrder(
		f.storage.EXPECT().
			SetNotificationStorage(gomock.Any(), testKey, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value string) error {
				var persisted domain.UserStorage
				require.NoError(t, json.Unmarshal([]byte(value), &persisted))
				entry := persisted.Accounts[domain.NormalizeAddress(testAccount2)]
				require.Len(t, entry, kindCount)
				for _, trigger := range entry {
					assert.False(t, trigger.Enabled)
				}
				return nil
			}),
		f.onChain.EXPECT().
			CreateTriggers(gomock.Any(), gomock.Any(), testKey, testToken, gomock.Any()).
			DoAndReturn(func(_ context.Context, d domain.UserStorage, _, _ string, refs []domain.TriggerRef) (domain.UserStorage, error) {
				require.Len(t, refs, kindCount)
				for _, ref := range refs {
					assert.True(t, domain.SameAddress(ref.Address, testAccount2))
				}
				out := d.Clone()
				for kind, trigger := range out.Accounts[domain.NormalizeAddress(testAccount2)] {
					trigger.Enabled = true
					out.Accounts[domain.NormalizeAddress(testAccount2)][kind] = trigger
				}
				return out, nil
			}),
		f.push.EXPECT().
			UpdateTriggerPushNotifications(gomock.Any(), testToken, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, triggerIDs []string) error {
				assert.Len(t, triggerIDs, 2*kindCount)
				return nil
			}),
		f.storage.EXPECT().
			SetNotificationStorage(gomock.Any(), testKey, gomock.Any()).
			Return(nil),
	)

	got, err := f.ctrl.UpdateOnChainTriggersByAccount(ctx, []string{testAccount2})
	require.NoError(t, err)

	for _, trigger := range got.Accounts[domain.NormalizeAddress(testAccount2)] {
		assert.True(t, trigger.Enabled)
	}
	assert.Empty(t, f.ctrl.GetState().UpdatingAccounts)
}

func TestUpdateOnChainTriggersByAccount_AlreadyEnabledResyncsPush(t *testing.T) {
	f := newFixture(t)

	doc := enabledDoc(testAccount)
	f.expectCredentials()
	f.expectStoredDoc(doc)

	// No trigger is missing or disabled, so nothing is created and no
	// resumable record is written, but the push registration is still
	// resynced with every UUID and the document re-persisted.
	gomock.InOrder(
		f.push.EXPECT().
			UpdateTriggerPushNotifications(gomock.Any(), testToken, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, triggerIDs []string) error {
				assert.ElementsMatch(t, triggers.GetAllUUIDs(&doc), triggerIDs)
				return nil
			}),
		f.storage.EXPECT().
			SetNotificationStorage(gomock.Any(), testKey, gomock.Any()).
			Return(nil),
	)

	got, err := f.ctrl.UpdateOnChainTriggersByAccount(context.Background(), []string{testAccount})
	require.NoError(t, err)
	assert.Equal(t, doc, got)
}

func TestUpdateOnChainTriggersByAccount_CreateListCoversWholeAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// One trigger of the account is disabled; creation must still be
	// requested for the account's full trigger set, not just the disabled one.
	doc := enabledDoc(testAccount)
	key := domain.NormalizeAddress(testAccount)
	stale := doc.Accounts[key][domain.KindEthSent]
	stale.Enabled = false
	doc.Accounts[key][domain.KindEthSent] = stale

	f.expectCredentials()
	f.expectStoredDoc(doc)

	kindCount := len(domain.AccountTriggerKinds())

	gomock.InOrder(
		f.storage.EXPECT().
			SetNotificationStorage(gomock.Any(), testKey, gomock.Any()).
			Return(nil),
		f.onChain.EXPECT().
			CreateTriggers(gomock.Any(), gomock.Any(), testKey, testToken, gomock.Any()).
			DoAndReturn(func(_ context.Context, d domain.UserStorage, _, _ string, refs []domain.TriggerRef) (domain.UserStorage, error) {
				require.Len(t, refs, kindCount)
				for _, ref := range refs {
					assert.True(t, domain.SameAddress(ref.Address, testAccount))
				}
				out := d.Clone()
				enabled := out.Accounts[key][domain.KindEthSent]
				enabled.Enabled = true
				out.Accounts[key][domain.KindEthSent] = enabled
				return out, nil
			}),
		f.push.EXPECT().
			UpdateTriggerPushNotifications(gomock.Any(), testToken, gomock.Any()).
			Return(nil),
		f.storage.EXPECT().
			SetNotificationStorage(gomock.Any(), testKey, gomock.Any()).
			Return(nil),
	)

	got, err := f.ctrl.UpdateOnChainTriggersByAccount(ctx, []string{testAccount})
	require.NoError(t, err)
	assert.True(t, got.Accounts[key][domain.KindEthSent].Enabled)
}

func TestFetchAndUpdateNotifications_OnChainFailureDegrades(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ctrl.SetFeatureAnnouncementsEnabled(ctx, true)

	now := time.Now().UTC()
	f.announcements.EXPECT().GetAnnouncements(gomock.Any()).Return([]domain.RawNotification{
		{ID: "fa-old", Type: domain.KindFeaturesAnnouncement, CreatedAt: now.Add(-time.Hour)},
		{ID: "fa-new", Type: domain.KindFeaturesAnnouncement, CreatedAt: now},
	}, nil)

	f.expectCredentials()
	f.expectStoredDoc(enabledDoc(testAccount))
	f.onChain.EXPECT().
		GetNotifications(gomock.Any(), gomock.Any(), testToken).
		Return(nil, errors.New("on-chain backend down"))

	list, err := f.ctrl.FetchAndUpdateNotifications(ctx)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, "fa-new", list[0].ID)
	assert.Equal(t, "fa-old", list[1].ID)
	assert.False(t, f.ctrl.GetState().IsFetchingNotifications)
}

func TestFetchAndUpdateNotifications_MergesAndSorts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ctrl.SetFeatureAnnouncementsEnabled(ctx, true)

	now := time.Now().UTC()
	f.announcements.EXPECT().GetAnnouncements(gomock.Any()).Return([]domain.RawNotification{
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement, CreatedAt: now.Add(-2 * time.Hour)},
	}, nil)

	f.expectCredentials()
	f.expectStoredDoc(enabledDoc(testAccount))
	f.onChain.EXPECT().
		GetNotifications(gomock.Any(), gomock.Any(), testToken).
		Return([]domain.RawNotification{
			{ID: "oc-1", Type: domain.KindEthReceived, TriggerID: "t-1", Address: testAccount, CreatedAt: now},
			{ID: "bad", Type: "mystery_kind", CreatedAt: now},
			{ID: "oc-2", Type: domain.KindEthSent, TriggerID: "t-2", Address: testAccount, CreatedAt: now.Add(-time.Hour)},
		}, nil)

	list, err := f.ctrl.FetchAndUpdateNotifications(ctx)
	require.NoError(t, err)

	// Malformed item dropped, remainder sorted newest first.
	require.Len(t, list, 3)
	assert.Equal(t, "oc-1", list[0].ID)
	assert.Equal(t, "oc-2", list[1].ID)
	assert.Equal(t, "fa-1", list[2].ID)
}

func TestMarkNotificationsAsRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedNotifications(t, f, []domain.RawNotification{
		{ID: "oc-1", Type: domain.KindEthReceived, TriggerID: "t-1", Address: testAccount, CreatedAt: now},
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement, CreatedAt: now.Add(-time.Minute)},
	})

	f.auth.EXPECT().GetBearerToken(gomock.Any()).Return(testToken, nil)
	f.onChain.EXPECT().MarkAsRead(gomock.Any(), testToken, []string{"oc-1"}).Return(nil)

	f.ctrl.MarkNotificationsAsRead(ctx, []domain.MarkAsReadItem{
		{ID: "oc-1", Type: domain.KindEthReceived},
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement},
	})

	state := f.ctrl.GetState()
	for _, n := range state.Notifications {
		assert.True(t, n.IsRead, n.ID)
	}
	// Only the announcement lands in the local read list.
	assert.Equal(t, []string{"fa-1"}, state.ReadNotifications)
}

func TestMarkNotificationsAsRead_BackendFailureSkipsOnChain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedNotifications(t, f, []domain.RawNotification{
		{ID: "oc-1", Type: domain.KindEthReceived, TriggerID: "t-1", Address: testAccount, CreatedAt: now},
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement, CreatedAt: now.Add(-time.Minute)},
	})

	f.auth.EXPECT().GetBearerToken(gomock.Any()).Return(testToken, nil)
	f.onChain.EXPECT().
		MarkAsRead(gomock.Any(), testToken, []string{"oc-1"}).
		Return(errors.New("backend down"))

	f.ctrl.MarkNotificationsAsRead(ctx, []domain.MarkAsReadItem{
		{ID: "oc-1", Type: domain.KindEthReceived},
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement},
	})

	state := f.ctrl.GetState()
	byID := notificationsByID(state.Notifications)
	// The on-chain item stays unread locally so it cannot run ahead of the
	// failed remote call; the announcement is still marked.
	assert.False(t, byID["oc-1"].IsRead)
	assert.True(t, byID["fa-1"].IsRead)
}

func TestMarkNotificationsAsRead_Monotonic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now().UTC()
	seedNotifications(t, f, []domain.RawNotification{
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement, CreatedAt: now},
	})

	f.ctrl.MarkNotificationsAsRead(ctx, []domain.MarkAsReadItem{
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement},
	})
	// Marking an already-read item again must not flip anything back.
	f.ctrl.MarkNotificationsAsRead(ctx, []domain.MarkAsReadItem{
		{ID: "fa-1", Type: domain.KindFeaturesAnnouncement, IsRead: true},
	})

	state := f.ctrl.GetState()
	assert.True(t, state.Notifications[0].IsRead)
	assert.Equal(t, []string{"fa-1"}, state.ReadNotifications)
}

// walkingStore reads every notification it is handed before delegating,
// the way a real store serializes the snapshot row by row.
type walkingStore struct {
	*store.MemoryStore
	walked int64
}

func (s *walkingStore) SaveState(ctx context.Context, snapshot domain.StateSnapshot) error {
	for i := range snapshot.Notifications {
		if snapshot.Notifications[i].IsRead {
			atomic.AddInt64(&s.walked, 1)
		}
	}
	return s.MemoryStore.SaveState(ctx, snapshot)
}

// Persisting runs outside the state lock, so the snapshot handed to the
// store must not share memory with the live list that mark-as-read edits
// in place. Run with the race detector to catch sharing regressions.
func TestMarkNotificationsAsRead_ConcurrentPersistGetsPrivateSnapshot(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	auth := mocks.NewMockAuthProvider(mockCtrl)
	onChain := mocks.NewMockOnChainService(mockCtrl)
	auth.EXPECT().GetBearerToken(gomock.Any()).Return(testToken, nil).AnyTimes()
	onChain.EXPECT().MarkAsRead(gomock.Any(), testToken, gomock.Any()).Return(nil).AnyTimes()

	backing := &walkingStore{MemoryStore: store.NewMemoryStore()}
	now := time.Now().UTC()
	seeded := make([]domain.Notification, 64)
	items := make([]domain.MarkAsReadItem, len(seeded))
	for i := range seeded {
		id := "oc-" + strconv.Itoa(i)
		seeded[i] = domain.Notification{
			ID:        id,
			Type:      domain.KindEthReceived,
			Address:   testAccount,
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		}
		items[i] = domain.MarkAsReadItem{ID: id, Type: domain.KindEthReceived}
	}
	require.NoError(t, backing.SaveState(context.Background(),
		domain.StateSnapshot{Notifications: seeded}))

	ctrl, err := controller.New(context.Background(), controller.Config{
		Auth:          auth,
		Storage:       mocks.NewMockUserStorageProvider(mockCtrl),
		Push:          mocks.NewMockPushService(mockCtrl),
		OnChain:       onChain,
		Announcements: mocks.NewMockAnnouncementService(mockCtrl),
		Accounts:      &stubAccountLister{accounts: []string{testAccount}},
		Store:         backing,
	})
	require.NoError(t, err)

	ctx := context.Background()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 50; i++ {
			ctrl.SetFeatureSeen(ctx)
		}
	}()
	for i := 0; i < 10; i++ {
		ctrl.MarkNotificationsAsRead(ctx, items)
	}
	<-done

	for _, n := range ctrl.GetState().Notifications {
		assert.True(t, n.IsRead, n.ID)
	}
}

func TestUpdateNotificationsList_DuplicateIsNoOp(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now().UTC()
	first := domain.RawNotification{
		ID: "n-1", Type: domain.KindEthReceived, TriggerID: "t-1",
		Address: testAccount, CreatedAt: now,
		Data: json.RawMessage(`{"amount":"1"}`),
	}
	f.ctrl.UpdateNotificationsList(ctx, first)

	duplicate := first
	duplicate.Data = json.RawMessage(`{"amount":"999"}`)
	f.ctrl.UpdateNotificationsList(ctx, duplicate)

	state := f.ctrl.GetState()
	require.Len(t, state.Notifications, 1)
	assert.JSONEq(t, `{"amount":"1"}`, string(state.Notifications[0].Data))
}

func TestUpdateNotificationsList_PrependsNewest(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	now := time.Now().UTC()
	f.ctrl.UpdateNotificationsList(ctx, domain.RawNotification{
		ID: "n-1", Type: domain.KindEthReceived, TriggerID: "t-1",
		Address: testAccount, CreatedAt: now.Add(-time.Minute),
	})
	f.ctrl.UpdateNotificationsList(ctx, domain.RawNotification{
		ID: "n-2", Type: domain.KindEthSent, TriggerID: "t-2",
		Address: testAccount, CreatedAt: now,
	})

	state := f.ctrl.GetState()
	require.Len(t, state.Notifications, 2)
	assert.Equal(t, "n-2", state.Notifications[0].ID)
}

func TestUpdateNotificationsList_MalformedDropped(t *testing.T) {
	f := newFixture(t)

	f.ctrl.UpdateNotificationsList(context.Background(), domain.RawNotification{
		ID: "n-1", Type: "mystery_kind", CreatedAt: time.Now().UTC(),
	})

	assert.Empty(t, f.ctrl.GetState().Notifications)
}

func TestCheckAccountsPresence(t *testing.T) {
	f := newFixture(t)

	f.expectCredentials()
	f.expectStoredDoc(enabledDoc(testAccount))

	presence, err := f.ctrl.CheckAccountsPresence(context.Background(), []string{testAccount, testAccount2})
	require.NoError(t, err)

	assert.True(t, presence[testAccount])
	assert.False(t, presence[testAccount2])
	assert.False(t, f.ctrl.GetState().IsCheckingPresence)
}

func TestCheckTriggersPresenceByGroup(t *testing.T) {
	f := newFixture(t)

	f.expectCredentials()
	f.expectStoredDoc(enabledDoc(testAccount))

	presence, err := f.ctrl.CheckTriggersPresenceByGroup(context.Background())
	require.NoError(t, err)

	assert.True(t, presence[domain.GroupSent])
	assert.True(t, presence[domain.GroupReceived])
}

func TestStateSubscription(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var seen []controller.State
	f.ctrl.Subscribe(func(s controller.State) { seen = append(seen, s) })

	f.ctrl.SetFeatureSeen(ctx)

	require.NotEmpty(t, seen)
	assert.True(t, seen[len(seen)-1].IsFeatureSeen)
}

func seedNotifications(t *testing.T, f *fixture, raws []domain.RawNotification) {
	t.Helper()
	for i := len(raws) - 1; i >= 0; i-- {
		f.ctrl.UpdateNotificationsList(context.Background(), raws[i])
	}
	require.Len(t, f.ctrl.GetState().Notifications, len(raws))
}

func notificationsByID(list []domain.Notification) map[string]domain.Notification {
	out := make(map[string]domain.Notification, len(list))
	for _, n := range list {
		out[n.ID] = n
	}
	return out
}
