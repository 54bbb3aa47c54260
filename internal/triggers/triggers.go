// Package triggers contains pure helpers for creating, looking up and
// traversing notification triggers inside a UserStorage document.
package triggers

import (
	"sort"

	"github.com/google/uuid"

	"github.com/openwallet/notification-services/internal/domain"
)

// TraverseOptions controls trigger traversal.
// MapTrigger may transform each trigger; returning false omits the trigger
// from the result, which is how callers select subsets such as "only
// disabled" or "only for these accounts".
type TraverseOptions struct {
	MapTrigger func(ref domain.TriggerRef) (domain.TriggerRef, bool)
}

// InitializeUserStorage builds a new document at the current schema version
// with one trigger per account-tracked kind for every given address, all
// carrying fresh UUIDs and the given enabled flag.
func InitializeUserStorage(addresses []string, enabled bool) domain.UserStorage {
	us := domain.UserStorage{
		Version:  domain.UserStorageVersion,
		Accounts: make(map[string]domain.AccountTriggers, len(addresses)),
	}
	for _, address := range addresses {
		us.Accounts[domain.NormalizeAddress(address)] = newAccountTriggers(enabled)
	}
	return us
}

// UpsertAddressTriggers ensures the address has a full trigger set in the
// document. A missing address gains a fresh disabled set; an existing address
// gains only the kinds it lacks. Existing triggers are never overwritten or
// re-enabled, so the call is idempotent.
func UpsertAddressTriggers(address string, us *domain.UserStorage) {
	key := domain.NormalizeAddress(address)
	if us.Accounts == nil {
		us.Accounts = make(map[string]domain.AccountTriggers)
	}

	existing, ok := us.Accounts[key]
	if !ok {
		us.Accounts[key] = newAccountTriggers(false)
		return
	}

	for _, kind := range domain.AccountTriggerKinds() {
		if _, ok := existing[kind]; !ok {
			existing[kind] = domain.Trigger{ID: uuid.NewString(), Enabled: false}
		}
	}
}

// TraverseUserStorageTriggers flattens every trigger in the document into a
// deterministic (address, kind) ordered sequence, applying the optional
// mapper to filter or transform entries.
func TraverseUserStorageTriggers(us *domain.UserStorage, opts *TraverseOptions) []domain.TriggerRef {
	if us == nil {
		return nil
	}

	addresses := make([]string, 0, len(us.Accounts))
	for address := range us.Accounts {
		addresses = append(addresses, address)
	}
	sort.Strings(addresses)

	var refs []domain.TriggerRef
	for _, address := range addresses {
		triggers := us.Accounts[address]

		kinds := make([]string, 0, len(triggers))
		for kind := range triggers {
			kinds = append(kinds, string(kind))
		}
		sort.Strings(kinds)

		for _, kind := range kinds {
			t := triggers[domain.TriggerKind(kind)]
			ref := domain.TriggerRef{
				ID:      t.ID,
				Kind:    domain.TriggerKind(kind),
				Address: address,
				Enabled: t.Enabled,
			}
			if opts != nil && opts.MapTrigger != nil {
				mapped, keep := opts.MapTrigger(ref)
				if !keep {
					continue
				}
				ref = mapped
			}
			refs = append(refs, ref)
		}
	}

	return refs
}

// GetAllUUIDs returns the id of every trigger across all accounts
func GetAllUUIDs(us *domain.UserStorage) []string {
	refs := TraverseUserStorageTriggers(us, nil)
	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

// GetUUIDsForAccount returns the trigger ids for one address, matched
// case-insensitively. The result is empty when the address is absent.
func GetUUIDsForAccount(us *domain.UserStorage, address string) []string {
	refs := TraverseUserStorageTriggers(us, &TraverseOptions{
		MapTrigger: func(ref domain.TriggerRef) (domain.TriggerRef, bool) {
			return ref, domain.SameAddress(ref.Address, address)
		},
	})

	ids := make([]string, 0, len(refs))
	for _, ref := range refs {
		ids = append(ids, ref.ID)
	}
	return ids
}

// CheckAccountsPresence reports, for each queried address, whether it exists
// in the document. Lookup is case-insensitive; result keys are the addresses
// as queried.
func CheckAccountsPresence(us *domain.UserStorage, accounts []string) map[string]bool {
	presence := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		_, ok := us.Accounts[domain.NormalizeAddress(account)]
		presence[account] = ok
	}
	return presence
}

// CheckTriggersPresenceByGroup reports, per trigger-kind group, whether every
// address in the document has a trigger for every kind in that group.
//
// Deprecated: this check is best-effort. It cannot introspect kinds added
// after a document was written, so it produces false negatives as the kind
// set evolves. Kept with that limitation intact; callers wanting reliable
// results need a migration path instead.
func CheckTriggersPresenceByGroup(us *domain.UserStorage) map[domain.TriggerKindGroup]bool {
	result := make(map[domain.TriggerKindGroup]bool, len(domain.TriggerKindGroups))
	for group, kinds := range domain.TriggerKindGroups {
		complete := true
		for _, triggers := range us.Accounts {
			for _, kind := range kinds {
				if _, ok := triggers[kind]; !ok {
					complete = false
					break
				}
			}
			if !complete {
				break
			}
		}
		result[group] = complete
	}
	return result
}

func newAccountTriggers(enabled bool) domain.AccountTriggers {
	triggers := make(domain.AccountTriggers)
	for _, kind := range domain.AccountTriggerKinds() {
		triggers[kind] = domain.Trigger{ID: uuid.NewString(), Enabled: enabled}
	}
	return triggers
}
