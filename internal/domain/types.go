package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// TriggerKind represents a notification category a trigger subscribes to
type TriggerKind string

const (
	KindEthSent              TriggerKind = "eth_sent"
	KindEthReceived          TriggerKind = "eth_received"
	KindERC20Sent            TriggerKind = "erc20_sent"
	KindERC20Received        TriggerKind = "erc20_received"
	KindERC721Sent           TriggerKind = "erc721_sent"
	KindERC721Received       TriggerKind = "erc721_received"
	KindERC1155Sent          TriggerKind = "erc1155_sent"
	KindERC1155Received      TriggerKind = "erc1155_received"
	KindFeaturesAnnouncement TriggerKind = "features_announcement"
)

// TriggerKindGroup is a coarse grouping of trigger kinds used by settings UIs
type TriggerKindGroup string

const (
	GroupSent     TriggerKindGroup = "sent"
	GroupReceived TriggerKindGroup = "received"
)

// TriggerKindGroups maps each group to the kinds it covers.
// New kinds must be added here manually; the group-presence check cannot
// discover them on its own.
var TriggerKindGroups = map[TriggerKindGroup][]TriggerKind{
	GroupSent: {
		KindEthSent,
		KindERC20Sent,
		KindERC721Sent,
		KindERC1155Sent,
	},
	GroupReceived: {
		KindEthReceived,
		KindERC20Received,
		KindERC721Received,
		KindERC1155Received,
	},
}

// AccountTriggerKinds returns every kind that is tracked per account.
// Feature announcements are account-independent and have no trigger record.
func AccountTriggerKinds() []TriggerKind {
	return []TriggerKind{
		KindEthSent,
		KindEthReceived,
		KindERC20Sent,
		KindERC20Received,
		KindERC721Sent,
		KindERC721Received,
		KindERC1155Sent,
		KindERC1155Received,
	}
}

// Valid checks if a trigger kind is recognized
func (k TriggerKind) Valid() bool {
	switch k {
	case KindEthSent, KindEthReceived,
		KindERC20Sent, KindERC20Received,
		KindERC721Sent, KindERC721Received,
		KindERC1155Sent, KindERC1155Received,
		KindFeaturesAnnouncement:
		return true
	}
	return false
}

// IsOnChain reports whether the kind is derived from blockchain activity
func (k TriggerKind) IsOnChain() bool {
	return k.Valid() && k != KindFeaturesAnnouncement
}

// UserStorageVersion is the current schema version of the remote trigger blob
const UserStorageVersion = 1

// Trigger is a server-side subscription record for one (account, kind) pair.
// The ID is generated once at creation time and never changes; disabling a
// trigger only flips Enabled, deletion of the owning account is the only path
// that removes the record.
type Trigger struct {
	ID      string `json:"id"`
	Enabled bool   `json:"enabled"`
}

// AccountTriggers maps a trigger kind to its trigger record for one account
type AccountTriggers map[TriggerKind]Trigger

// UserStorage is the versioned remote record of notification configuration.
// Account keys are lowercase-normalized; comparisons against checksummed
// addresses from the keyring are case-insensitive.
type UserStorage struct {
	Version  int                        `json:"version"`
	Accounts map[string]AccountTriggers `json:"accounts"`
}

// Initialized reports whether the document carries a recognized version.
// A document without a version key is treated as uninitialized.
func (u *UserStorage) Initialized() bool {
	return u != nil && u.Version != 0
}

// Clone returns a deep copy of the document
func (u *UserStorage) Clone() UserStorage {
	out := UserStorage{Version: u.Version}
	if u.Accounts != nil {
		out.Accounts = make(map[string]AccountTriggers, len(u.Accounts))
		for addr, triggers := range u.Accounts {
			cp := make(AccountTriggers, len(triggers))
			for kind, t := range triggers {
				cp[kind] = t
			}
			out.Accounts[addr] = cp
		}
	}
	return out
}

// TriggerRef is a trigger flattened out of a UserStorage document,
// carrying the owning address and kind alongside the record itself
type TriggerRef struct {
	ID      string      `json:"id"`
	Kind    TriggerKind `json:"kind"`
	Address string      `json:"address"`
	Enabled bool        `json:"enabled"`
}

// RawNotification is the wire shape shared by the on-chain backend and the
// feature-announcement feed before processing into the canonical form
type RawNotification struct {
	ID        string          `json:"id"`
	Type      TriggerKind     `json:"type"`
	TriggerID string          `json:"trigger_id,omitempty"`
	ChainID   uint64          `json:"chain_id,omitempty"`
	TxHash    string          `json:"tx_hash,omitempty"`
	Address   string          `json:"address,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	IsRead    bool            `json:"is_read,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Notification is the canonical, deduplicated, read-tracked shape held in
// controller state and served to clients
type Notification struct {
	ID        string          `json:"id"`
	Type      TriggerKind     `json:"type"`
	Address   string          `json:"address,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	IsRead    bool            `json:"is_read"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// MarkAsReadItem identifies one notification in a mark-as-read request
type MarkAsReadItem struct {
	ID     string      `json:"id"`
	Type   TriggerKind `json:"type"`
	IsRead bool        `json:"is_read"`
}

// StateSnapshot is the persisted portion of the controller state.
// Transient progress flags are deliberately absent: no operation can be
// "in progress" across a restart.
type StateSnapshot struct {
	IsFeatureSeen                 bool           `json:"is_feature_seen"`
	IsNotificationsEnabled        bool           `json:"is_notifications_enabled"`
	IsFeatureAnnouncementsEnabled bool           `json:"is_feature_announcements_enabled"`
	Notifications                 []Notification `json:"notifications"`
	ReadNotifications             []string       `json:"read_notifications"`
}

// Clone returns a copy whose slices share no backing arrays with the
// receiver, so the copy can be read without holding the owner's lock.
func (s StateSnapshot) Clone() StateSnapshot {
	out := s
	if s.Notifications != nil {
		out.Notifications = make([]Notification, len(s.Notifications))
		copy(out.Notifications, s.Notifications)
	}
	if s.ReadNotifications != nil {
		out.ReadNotifications = make([]string, len(s.ReadNotifications))
		copy(out.ReadNotifications, s.ReadNotifications)
	}
	return out
}

// NormalizeAddress lowercases an address for use as a UserStorage key
func NormalizeAddress(address string) string {
	return strings.ToLower(address)
}

// ChecksumAddress converts an address to its EIP-55 checksummed form
func ChecksumAddress(address string) string {
	return common.HexToAddress(address).Hex()
}

// IsEthereumAddress checks if a string is a valid Ethereum address
func IsEthereumAddress(s string) bool {
	return common.IsHexAddress(s)
}

// SameAddress compares two addresses case-insensitively
func SameAddress(a, b string) bool {
	return strings.EqualFold(a, b)
}
