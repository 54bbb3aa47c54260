package accounts_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwallet/notification-services/internal/accounts"
	"github.com/openwallet/notification-services/internal/mocks"
)

const (
	addrALower    = "0xab5801a7d398351b8be11c439e05c5b3259aec9b"
	addrAChecksum = "0xAb5801a7D398351b8bE11C439e05C5B3259aeC9B"
	addrBLower    = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	addrBChecksum = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
)

func TestListAccounts_InitialPassReportsAllAsAdded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keyring := mocks.NewMockKeyring(ctrl)
	keyring.EXPECT().GetAccounts(gomock.Any()).Return([]string{addrALower}, nil)

	r := accounts.NewReconciler(keyring)
	result, err := r.ListAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{addrAChecksum}, result.Accounts)
	assert.Equal(t, []string{addrAChecksum}, result.AccountsAdded)
	assert.Empty(t, result.AccountsRemoved)
}

func TestListAccounts_DiffsAgainstPreviousSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keyring := mocks.NewMockKeyring(ctrl)
	gomock.InOrder(
		keyring.EXPECT().GetAccounts(gomock.Any()).Return([]string{addrALower}, nil),
		keyring.EXPECT().GetAccounts(gomock.Any()).Return([]string{addrBLower}, nil),
	)

	r := accounts.NewReconciler(keyring)
	require.NoError(t, r.Initialize(context.Background()))

	result, err := r.ListAccounts(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{addrBChecksum}, result.Accounts)
	assert.Equal(t, []string{addrBChecksum}, result.AccountsAdded)
	assert.Equal(t, []string{addrAChecksum}, result.AccountsRemoved)
}

func TestListAccounts_ChecksumNormalizationIsStable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keyring := mocks.NewMockKeyring(ctrl)
	gomock.InOrder(
		// Same account twice with different casing: no diff on the second pass.
		keyring.EXPECT().GetAccounts(gomock.Any()).Return([]string{addrALower, addrBChecksum}, nil),
		keyring.EXPECT().GetAccounts(gomock.Any()).Return([]string{addrAChecksum, addrBLower}, nil),
	)

	r := accounts.NewReconciler(keyring)
	require.NoError(t, r.Initialize(context.Background()))

	result, err := r.ListAccounts(context.Background())
	require.NoError(t, err)

	assert.Empty(t, result.AccountsAdded)
	assert.Empty(t, result.AccountsRemoved)
	assert.ElementsMatch(t, []string{addrAChecksum, addrBChecksum}, result.Accounts)
}

func TestListAccounts_KeyringError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	keyring := mocks.NewMockKeyring(ctrl)
	keyring.EXPECT().GetAccounts(gomock.Any()).Return(nil, assert.AnError)

	r := accounts.NewReconciler(keyring)
	_, err := r.ListAccounts(context.Background())
	assert.Error(t, err)
}
