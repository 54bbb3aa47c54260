package auth_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/mocks"
	"github.com/openwallet/notification-services/internal/providers/auth"
)

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "wallet-1",
		"exp": expiresAt.Unix(),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestClient_IsSignedIn(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)

	signedIn := auth.NewClient(httpClient, adapter.NewJSON(), adapter.NewClock(), "https://auth.example.com", "wallet-1", "key")
	assert.True(t, signedIn.IsSignedIn())

	anonymous := auth.NewClient(httpClient, adapter.NewJSON(), adapter.NewClock(), "https://auth.example.com", "", "")
	assert.False(t, anonymous.IsSignedIn())
}

func TestClient_GetBearerToken_CachesUntilExpiry(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)
	clock := mocks.NewMockClock(mockCtrl)

	now := time.Now()
	token := signedToken(t, now.Add(time.Hour))

	// Exactly one login for two GetBearerToken calls.
	httpClient.EXPECT().
		Post(gomock.Any(), "https://auth.example.com/api/v1/login", nil, gomock.Any()).
		Return([]byte(fmt.Sprintf(`{"access_token":%q}`, token)), nil)
	clock.EXPECT().Now().Return(now).AnyTimes()

	client := auth.NewClient(httpClient, adapter.NewJSON(), clock, "https://auth.example.com", "wallet-1", "key")

	got, err := client.GetBearerToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, got)

	again, err := client.GetBearerToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, token, again)
}

func TestClient_GetBearerToken_RefreshesExpiredToken(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)
	clock := mocks.NewMockClock(mockCtrl)

	now := time.Now()
	expired := signedToken(t, now.Add(10*time.Second)) // inside the refresh margin
	fresh := signedToken(t, now.Add(time.Hour))

	gomock.InOrder(
		httpClient.EXPECT().
			Post(gomock.Any(), "https://auth.example.com/api/v1/login", nil, gomock.Any()).
			Return([]byte(fmt.Sprintf(`{"access_token":%q}`, expired)), nil),
		httpClient.EXPECT().
			Post(gomock.Any(), "https://auth.example.com/api/v1/login", nil, gomock.Any()).
			Return([]byte(fmt.Sprintf(`{"access_token":%q}`, fresh)), nil),
	)
	clock.EXPECT().Now().Return(now).AnyTimes()

	client := auth.NewClient(httpClient, adapter.NewJSON(), clock, "https://auth.example.com", "wallet-1", "key")

	got, err := client.GetBearerToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expired, got)

	got, err = client.GetBearerToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

func TestClient_GetBearerToken_Anonymous(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)

	client := auth.NewClient(httpClient, adapter.NewJSON(), adapter.NewClock(), "https://auth.example.com", "", "")

	token, err := client.GetBearerToken(context.Background())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestClient_GetBearerToken_BackendError(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	httpClient := mocks.NewMockHTTPClient(mockCtrl)

	httpClient.EXPECT().
		Post(gomock.Any(), gomock.Any(), nil, gomock.Any()).
		Return(nil, errors.New("connection refused"))

	client := auth.NewClient(httpClient, adapter.NewJSON(), adapter.NewClock(), "https://auth.example.com", "wallet-1", "key")

	_, err := client.GetBearerToken(context.Background())
	assert.Error(t, err)
}
