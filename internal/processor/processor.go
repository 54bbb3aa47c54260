// Package processor normalizes raw heterogeneous notifications into the
// canonical shape held in controller state.
package processor

import (
	"fmt"
	"sort"

	"github.com/openwallet/notification-services/internal/domain"
)

// ProcessNotification maps a raw source-specific notification into the
// canonical shape, marking it read iff its id appears in readIDs. It returns
// ErrMalformedNotification when the payload does not match any known category
// schema; callers are expected to drop the item rather than fail the batch.
func ProcessNotification(raw domain.RawNotification, readIDs []string) (domain.Notification, error) {
	if raw.ID == "" {
		return domain.Notification{}, fmt.Errorf("%w: missing id", domain.ErrMalformedNotification)
	}
	if !raw.Type.Valid() {
		return domain.Notification{}, fmt.Errorf("%w: unknown type %q", domain.ErrMalformedNotification, raw.Type)
	}
	if raw.CreatedAt.IsZero() {
		return domain.Notification{}, fmt.Errorf("%w: missing created_at", domain.ErrMalformedNotification)
	}
	if raw.Type.IsOnChain() {
		if raw.TriggerID == "" {
			return domain.Notification{}, fmt.Errorf("%w: on-chain notification without trigger_id", domain.ErrMalformedNotification)
		}
		if !domain.IsEthereumAddress(raw.Address) {
			return domain.Notification{}, fmt.Errorf("%w: on-chain notification with invalid address %q", domain.ErrMalformedNotification, raw.Address)
		}
	}

	// The source may already report the item as read (on-chain items carry
	// backend read state); the local read list can only add to that.
	isRead := raw.IsRead
	for _, id := range readIDs {
		if id == raw.ID {
			isRead = true
			break
		}
	}

	return domain.Notification{
		ID:        raw.ID,
		Type:      raw.Type,
		Address:   raw.Address,
		CreatedAt: raw.CreatedAt,
		IsRead:    isRead,
		Data:      raw.Data,
	}, nil
}

// ProcessAndFilter processes a batch, silently dropping malformed items.
// Input order is preserved for the surviving items.
func ProcessAndFilter(raws []domain.RawNotification, readIDs []string) []domain.Notification {
	out := make([]domain.Notification, 0, len(raws))
	for _, raw := range raws {
		n, err := ProcessNotification(raw, readIDs)
		if err != nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// SortByCreatedAtDesc orders notifications newest first. The sort is stable
// so items sharing a timestamp keep their relative order.
func SortByCreatedAtDesc(notifications []domain.Notification) {
	sort.SliceStable(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
}
