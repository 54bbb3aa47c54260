// Package keyring exposes the local go-ethereum keystore as the wallet
// account source for reconciliation.
package keyring

import (
	"context"

	gethaccounts "github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"go.uber.org/zap"

	"github.com/openwallet/notification-services/internal/logger"
)

// KeystoreKeyring reads accounts from an on-disk keystore directory.
// Addresses come back in raw hex form; checksum normalization is the
// reconciler's job.
type KeystoreKeyring struct {
	ks *keystore.KeyStore
}

// NewKeystoreKeyring opens the keystore at dir, creating it if needed
func NewKeystoreKeyring(dir string) *KeystoreKeyring {
	return &KeystoreKeyring{
		ks: keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP),
	}
}

// GetAccounts returns the current wallet addresses
func (k *KeystoreKeyring) GetAccounts(_ context.Context) ([]string, error) {
	stored := k.ks.Accounts()
	addresses := make([]string, 0, len(stored))
	for _, account := range stored {
		addresses = append(addresses, account.Address.Hex())
	}
	return addresses, nil
}

// SubscribeChanges invokes onChange whenever a wallet is added to or removed
// from the keystore, until ctx is cancelled. Events are coalesced: the
// callback signals "the account set changed", the reconciler computes what.
func (k *KeystoreKeyring) SubscribeChanges(ctx context.Context, onChange func()) {
	events := make(chan gethaccounts.WalletEvent, 16)
	k.ks.Wallets() // force the keystore to start watching the dir

	subscription := k.ks.Subscribe(events)

	go func() {
		defer subscription.Unsubscribe()
		for {
			select {
			case <-ctx.Done():
				return
			case err := <-subscription.Err():
				if err != nil {
					logger.Warn("keystore subscription failed", zap.Error(err))
				}
				return
			case ev := <-events:
				switch ev.Kind {
				case gethaccounts.WalletArrived, gethaccounts.WalletDropped:
					onChange()
				default:
					// Opened/closed events do not change the account set.
				}
			}
		}
	}()
}
