// Package accounts diffs the wallet's live account set against the last
// observed one to detect additions and removals.
package accounts

import (
	"context"
	"fmt"
	"sync"

	"github.com/openwallet/notification-services/internal/domain"
)

// Keyring provides the raw wallet account list. Addresses come back
// non-checksummed; normalization is this package's job.
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/keyring.go -package=mocks -mock_names=Keyring=MockKeyring
type Keyring interface {
	// GetAccounts returns the current wallet addresses
	GetAccounts(ctx context.Context) ([]string, error)
}

// ListResult holds the outcome of one reconciliation pass
type ListResult struct {
	Accounts        []string
	AccountsAdded   []string
	AccountsRemoved []string
}

// Reconciler tracks the previously observed account set as an explicit
// field rather than hidden package state. ListAccounts is serialized
// internally: both the keystore watcher and trigger operations call it.
type Reconciler struct {
	keyring Keyring

	mu       sync.Mutex
	previous map[string]struct{}
}

// NewReconciler creates a reconciler with an empty baseline
func NewReconciler(keyring Keyring) *Reconciler {
	return &Reconciler{
		keyring:  keyring,
		previous: make(map[string]struct{}),
	}
}

// Initialize seeds the baseline from the live account list so the next
// ListAccounts call reports only genuine changes. Must complete before any
// change subscription is registered.
func (r *Reconciler) Initialize(ctx context.Context) error {
	_, err := r.ListAccounts(ctx)
	return err
}

// ListAccounts queries the keyring, checksums each address, diffs against the
// previously observed set and atomically replaces it with the new one.
func (r *Reconciler) ListAccounts(ctx context.Context) (ListResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, err := r.keyring.GetAccounts(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list keyring accounts: %w", err)
	}

	accounts := make([]string, 0, len(raw))
	current := make(map[string]struct{}, len(raw))
	for _, address := range raw {
		checksummed := domain.ChecksumAddress(address)
		accounts = append(accounts, checksummed)
		current[checksummed] = struct{}{}
	}

	var added []string
	for _, account := range accounts {
		if _, ok := r.previous[account]; !ok {
			added = append(added, account)
		}
	}

	var removed []string
	for account := range r.previous {
		if _, ok := current[account]; !ok {
			removed = append(removed, account)
		}
	}

	r.previous = current

	return ListResult{
		Accounts:        accounts,
		AccountsAdded:   added,
		AccountsRemoved: removed,
	}, nil
}
