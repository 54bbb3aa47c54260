// Package announcements fetches the account-independent feature-announcement
// feed.
package announcements

import (
	"context"
	"fmt"

	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/domain"
)

// Client fetches feature announcements
type Client struct {
	httpClient adapter.HTTPClient
	json       adapter.JSON
	baseURL    string
}

type announcementsResponse struct {
	Announcements []domain.RawNotification `json:"announcements"`
}

// NewClient creates a feature-announcement client
func NewClient(httpClient adapter.HTTPClient, json adapter.JSON, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		json:       json,
		baseURL:    baseURL,
	}
}

// GetAnnouncements returns the current announcement feed. Every item comes
// back typed as a feature announcement regardless of what the feed claims,
// so a misconfigured feed cannot inject on-chain lookalikes.
func (c *Client) GetAnnouncements(ctx context.Context) ([]domain.RawNotification, error) {
	respBody, err := c.httpClient.Get(ctx, c.baseURL+"/api/v1/announcements", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch announcements: %w", err)
	}

	var resp announcementsResponse
	if err := c.json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal announcements: %w", err)
	}

	for i := range resp.Announcements {
		resp.Announcements[i].Type = domain.KindFeaturesAnnouncement
	}
	return resp.Announcements, nil
}
