package announcements_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/mocks"
	"github.com/openwallet/notification-services/internal/providers/announcements"
)

const feedURL = "https://cms.example.com/api/v1/announcements"

func TestGetAnnouncements(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)
	client := announcements.NewClient(httpClient, adapter.NewJSON(), "https://cms.example.com")

	httpClient.EXPECT().
		Get(gomock.Any(), feedURL, nil).
		Return([]byte(`{"announcements":[
			{"id":"a-1","type":"features_announcement","created_at":"2026-08-30T12:00:00Z"},
			{"id":"a-2","type":"eth_received","created_at":"2026-08-31T12:00:00Z"}
		]}`), nil)

	items, err := client.GetAnnouncements(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)

	// The feed cannot smuggle in on-chain types.
	for _, item := range items {
		assert.Equal(t, domain.KindFeaturesAnnouncement, item.Type)
	}
	assert.Equal(t, "a-1", items[0].ID)
	assert.Equal(t, "a-2", items[1].ID)
}

func TestGetAnnouncements_BackendError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)
	client := announcements.NewClient(httpClient, adapter.NewJSON(), "https://cms.example.com")

	httpClient.EXPECT().
		Get(gomock.Any(), feedURL, nil).
		Return(nil, assert.AnError)

	_, err := client.GetAnnouncements(context.Background())
	assert.Error(t, err)
}

func TestGetAnnouncements_MalformedFeed(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)
	client := announcements.NewClient(httpClient, adapter.NewJSON(), "https://cms.example.com")

	httpClient.EXPECT().
		Get(gomock.Any(), feedURL, nil).
		Return([]byte(`not json`), nil)

	_, err := client.GetAnnouncements(context.Background())
	assert.Error(t, err)
}
