// Package userstorage talks to the encrypted remote key-value storage that
// holds the serialized trigger document.
package userstorage

import (
	"context"
	"fmt"
	"net/url"

	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/domain"
)

// notificationEntry is the storage entry holding the trigger document
const notificationEntry = "notification_settings"

// Client implements the remote storage operations the controller needs
type Client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	baseURL    string
}

type entryResponse struct {
	Entry string  `json:"entry"`
	Value *string `json:"value"`
}

type entryRequest struct {
	Value string `json:"value"`
}

type storageKeyResponse struct {
	StorageKey string `json:"storage_key"`
}

// NewClient creates a remote storage client
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		json:       json,
		baseURL:    baseURL,
	}
}

// EnableProfileSyncing turns on remote storage for the profile. The backend
// treats repeated calls as a no-op.
func (c *Client) EnableProfileSyncing(ctx context.Context) error {
	if _, err := c.httpClient.Post(ctx, c.baseURL+"/api/v1/profile/sync", nil, nil); err != nil {
		return fmt.Errorf("failed to enable profile syncing: %w", err)
	}
	return nil
}

// GetStorageKey returns the storage encryption key for this profile
func (c *Client) GetStorageKey(ctx context.Context) (string, error) {
	respBody, err := c.httpClient.Get(ctx, c.baseURL+"/api/v1/storage-key", nil)
	if err != nil {
		return "", fmt.Errorf("failed to get storage key: %w", err)
	}

	var resp storageKeyResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal storage key response: %w", err)
	}
	return resp.StorageKey, nil
}

// GetNotificationStorage returns the serialized trigger document, or
// domain.ErrNoUserStorage when the entry has never been written.
func (c *Client) GetNotificationStorage(ctx context.Context, storageKey string) (string, error) {
	respBody, err := c.httpClient.Get(ctx, c.entryURL(), c.headers(storageKey))
	if err != nil {
		return "", fmt.Errorf("failed to get notification storage: %w", err)
	}

	var resp entryResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal storage entry: %w", err)
	}
	if resp.Value == nil {
		return "", domain.ErrNoUserStorage
	}
	return *resp.Value, nil
}

// SetNotificationStorage replaces the serialized trigger document
func (c *Client) SetNotificationStorage(ctx context.Context, storageKey string, value string) error {
	body, err := c.json.Marshal(entryRequest{Value: value})
	if err != nil {
		return fmt.Errorf("failed to marshal storage entry: %w", err)
	}

	if _, err := c.httpClient.Put(ctx, c.entryURL(), c.headers(storageKey), body); err != nil {
		return fmt.Errorf("failed to set notification storage: %w", err)
	}
	return nil
}

func (c *Client) entryURL() string {
	return fmt.Sprintf("%s/api/v1/storage/%s", c.baseURL, url.PathEscape(notificationEntry))
}

func (c *Client) headers(storageKey string) map[string]string {
	return map[string]string{"X-Storage-Key": storageKey}
}
