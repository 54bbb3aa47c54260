// Package onchain talks to the trigger backend: trigger registration and
// deletion, notification fetch, and remote read-state.
//
// Document-mutating calls follow an immutable contract: the caller's document
// is never modified, the updated copy comes back in the return value. A
// failed call therefore leaves the caller holding exactly what it passed in.
package onchain

import (
	"context"
	"fmt"

	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/triggers"
)

// Client implements the on-chain trigger backend operations
type Client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	baseURL    string
}

type createTriggersRequest struct {
	Triggers []triggerPayload `json:"triggers"`
}

type triggerPayload struct {
	ID      string             `json:"id"`
	Kind    domain.TriggerKind `json:"kind"`
	Address string             `json:"address"`
}

type deleteTriggersRequest struct {
	TriggerIDs []string `json:"trigger_ids"`
}

type getNotificationsRequest struct {
	TriggerIDs []string `json:"trigger_ids"`
}

type getNotificationsResponse struct {
	Notifications []domain.RawNotification `json:"notifications"`
}

type markAsReadRequest struct {
	IDs []string `json:"ids"`
}

// NewClient creates an on-chain backend client
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		json:       json,
		baseURL:    baseURL,
	}
}

// CreateTriggers registers the given triggers with the backend and returns a
// copy of the document with exactly those triggers flipped to enabled.
func (c *Client) CreateTriggers(ctx context.Context, doc domain.UserStorage, storageKey string, bearerToken string, refs []domain.TriggerRef) (domain.UserStorage, error) {
	if len(refs) == 0 {
		return doc.Clone(), nil
	}

	payload := createTriggersRequest{Triggers: make([]triggerPayload, 0, len(refs))}
	for _, ref := range refs {
		payload.Triggers = append(payload.Triggers, triggerPayload{
			ID:      ref.ID,
			Kind:    ref.Kind,
			Address: ref.Address,
		})
	}

	body, err := c.json.Marshal(payload)
	if err != nil {
		return domain.UserStorage{}, fmt.Errorf("failed to marshal create triggers request: %w", err)
	}

	if _, err := c.httpClient.Post(ctx, c.baseURL+"/api/v1/triggers", c.headers(bearerToken, storageKey), body); err != nil {
		return domain.UserStorage{}, fmt.Errorf("failed to create triggers: %w", err)
	}

	created := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		created[ref.ID] = struct{}{}
	}

	out := doc.Clone()
	for address, accountTriggers := range out.Accounts {
		for kind, trigger := range accountTriggers {
			if _, ok := created[trigger.ID]; ok {
				trigger.Enabled = true
				out.Accounts[address][kind] = trigger
			}
		}
	}
	return out, nil
}

// DeleteTriggers removes the given trigger IDs server-side and returns a copy
// of the document without them. Accounts left with no triggers are dropped
// entirely.
func (c *Client) DeleteTriggers(ctx context.Context, doc domain.UserStorage, storageKey string, bearerToken string, triggerIDs []string) (domain.UserStorage, error) {
	if len(triggerIDs) == 0 {
		return doc.Clone(), nil
	}

	body, err := c.json.Marshal(deleteTriggersRequest{TriggerIDs: triggerIDs})
	if err != nil {
		return domain.UserStorage{}, fmt.Errorf("failed to marshal delete triggers request: %w", err)
	}

	if _, err := c.httpClient.Delete(ctx, c.baseURL+"/api/v1/triggers", c.headers(bearerToken, storageKey), body); err != nil {
		return domain.UserStorage{}, fmt.Errorf("failed to delete triggers: %w", err)
	}

	deleted := make(map[string]struct{}, len(triggerIDs))
	for _, id := range triggerIDs {
		deleted[id] = struct{}{}
	}

	out := doc.Clone()
	for address, accountTriggers := range out.Accounts {
		for kind, trigger := range accountTriggers {
			if _, ok := deleted[trigger.ID]; ok {
				delete(accountTriggers, kind)
			}
		}
		if len(accountTriggers) == 0 {
			delete(out.Accounts, address)
		}
	}
	return out, nil
}

// GetNotifications fetches raw notifications for every trigger in the document
func (c *Client) GetNotifications(ctx context.Context, doc domain.UserStorage, bearerToken string) ([]domain.RawNotification, error) {
	ids := triggers.GetAllUUIDs(&doc)
	if len(ids) == 0 {
		return nil, nil
	}

	body, err := c.json.Marshal(getNotificationsRequest{TriggerIDs: ids})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal notifications request: %w", err)
	}

	respBody, err := c.httpClient.Post(ctx, c.baseURL+"/api/v1/notifications", c.headers(bearerToken, ""), body)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	var resp getNotificationsResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications response: %w", err)
	}
	return resp.Notifications, nil
}

// MarkAsRead marks on-chain notification IDs as read server-side
func (c *Client) MarkAsRead(ctx context.Context, bearerToken string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	body, err := c.json.Marshal(markAsReadRequest{IDs: ids})
	if err != nil {
		return fmt.Errorf("failed to marshal mark-as-read request: %w", err)
	}

	if _, err := c.httpClient.Post(ctx, c.baseURL+"/api/v1/notifications/mark-as-read", c.headers(bearerToken, ""), body); err != nil {
		return fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	return nil
}

func (c *Client) headers(bearerToken string, storageKey string) map[string]string {
	headers := map[string]string{
		"Authorization": "Bearer " + bearerToken,
	}
	if storageKey != "" {
		headers["X-Storage-Key"] = storageKey
	}
	return headers
}
