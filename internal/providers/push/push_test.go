package push_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/config"
	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/mocks"
	"github.com/openwallet/notification-services/internal/providers/push"
)

const testToken = "bearer-token"

func TestClient_EnablePushNotifications(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)
	client := push.NewClient(httpClient, adapter.NewJSON(), "https://push.example.com", "device-token")

	httpClient.EXPECT().
		Post(gomock.Any(), "https://push.example.com/api/v1/push/register", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, headers map[string]string, body []byte) ([]byte, error) {
			assert.Equal(t, "Bearer "+testToken, headers["Authorization"])

			var req struct {
				TriggerIDs        []string `json:"trigger_ids"`
				RegistrationToken string   `json:"registration_token"`
			}
			require.NoError(t, json.Unmarshal(body, &req))
			assert.Equal(t, []string{"t-1", "t-2"}, req.TriggerIDs)
			assert.Equal(t, "device-token", req.RegistrationToken)
			return []byte(`{}`), nil
		})

	err := client.EnablePushNotifications(context.Background(), testToken, []string{"t-1", "t-2"})
	require.NoError(t, err)
}

func TestClient_EmptyTriggerListIsNoOp(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)
	client := push.NewClient(httpClient, adapter.NewJSON(), "https://push.example.com", "device-token")

	// No HTTP expectations: nothing may be called.
	require.NoError(t, client.EnablePushNotifications(context.Background(), testToken, nil))
	require.NoError(t, client.DisablePushNotifications(context.Background(), testToken, nil))
	require.NoError(t, client.UpdateTriggerPushNotifications(context.Background(), testToken, nil))
}

func TestSubscriber_DispatchesParsedEvents(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	natsFactory := mocks.NewMockNats(mockCtrl)
	conn := mocks.NewMockNatsConn(mockCtrl)
	sub := mocks.NewMockNatsSubscription(mockCtrl)

	var captured adapter.MessageHandler
	natsFactory.EXPECT().
		Connect("nats://localhost:4222", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(conn, nil)
	conn.EXPECT().
		Subscribe("wallet.notifications.push", gomock.Any()).
		DoAndReturn(func(_ string, handler adapter.MessageHandler) (adapter.NatsSubscription, error) {
			captured = handler
			return sub, nil
		})

	var received []domain.RawNotification
	subscriber := push.NewSubscriber(natsFactory, adapter.NewJSON(), config.NATSConfig{
		URL:            "nats://localhost:4222",
		Subject:        "wallet.notifications.push",
		MaxReconnects:  3,
		ReconnectWait:  time.Second,
		ConnectionName: "notifyd-test",
	}, func(raw domain.RawNotification) {
		received = append(received, raw)
	})

	require.NoError(t, subscriber.Start())
	require.NotNil(t, captured)

	captured([]byte(`{"id":"n-1","type":"eth_received","trigger_id":"t-1","created_at":"2026-01-02T03:04:05Z"}`))
	captured([]byte(`not json`)) // dropped, must not panic

	require.Len(t, received, 1)
	assert.Equal(t, "n-1", received[0].ID)
	assert.Equal(t, domain.KindEthReceived, received[0].Type)
}
