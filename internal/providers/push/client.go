// Package push coordinates the device's push-notification registration with
// the push backend and consumes its pushed notification events.
package push

import (
	"context"
	"fmt"

	"github.com/openwallet/notification-services/internal/adapter"
)

// Client implements the push-registration operations. All of them are
// idempotent server-side; an empty trigger list is a local no-op.
type Client struct {
	httpClient        adapter.HTTPClient
	json              adapter.JSON
	baseURL           string
	registrationToken string
}

type registrationRequest struct {
	TriggerIDs        []string `json:"trigger_ids"`
	RegistrationToken string   `json:"registration_token"`
}

// NewClient creates a push backend client. registrationToken identifies this
// device with the push platform.
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, baseURL string, registrationToken string) *Client {
	return &Client{
		httpClient:        httpClient,
		json:              json,
		baseURL:           baseURL,
		registrationToken: registrationToken,
	}
}

// EnablePushNotifications registers the device for the given trigger IDs
func (c *Client) EnablePushNotifications(ctx context.Context, bearerToken string, triggerIDs []string) error {
	return c.post(ctx, "/api/v1/push/register", bearerToken, triggerIDs)
}

// DisablePushNotifications de-registers the device for the given trigger IDs
func (c *Client) DisablePushNotifications(ctx context.Context, bearerToken string, triggerIDs []string) error {
	return c.post(ctx, "/api/v1/push/unregister", bearerToken, triggerIDs)
}

// UpdateTriggerPushNotifications resyncs the registration with the full
// trigger ID set.
func (c *Client) UpdateTriggerPushNotifications(ctx context.Context, bearerToken string, triggerIDs []string) error {
	return c.post(ctx, "/api/v1/push/update", bearerToken, triggerIDs)
}

func (c *Client) post(ctx context.Context, path string, bearerToken string, triggerIDs []string) error {
	if len(triggerIDs) == 0 {
		return nil
	}

	body, err := c.json.Marshal(registrationRequest{
		TriggerIDs:        triggerIDs,
		RegistrationToken: c.registrationToken,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal push registration request: %w", err)
	}

	headers := map[string]string{"Authorization": "Bearer " + bearerToken}
	if _, err := c.httpClient.Post(ctx, c.baseURL+path, headers, body); err != nil {
		return fmt.Errorf("failed to call push service %s: %w", path, err)
	}
	return nil
}
