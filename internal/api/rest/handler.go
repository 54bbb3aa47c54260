package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openwallet/notification-services/internal/controller"
	"github.com/openwallet/notification-services/internal/domain"
)

// Service is the slice of the notification controller the REST surface
// exposes
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_service.go -package=mocks -mock_names=Service=MockAPIService
type Service interface {
	GetState() controller.State
	SelectIsNotificationsEnabled() bool
	EnableNotifications(ctx context.Context) error
	DisableNotifications(ctx context.Context) error
	FetchAndUpdateNotifications(ctx context.Context) ([]domain.Notification, error)
	MarkNotificationsAsRead(ctx context.Context, items []domain.MarkAsReadItem)
	UpdateOnChainTriggersByAccount(ctx context.Context, accounts []string) (domain.UserStorage, error)
	DeleteOnChainTriggersByAccount(ctx context.Context, accounts []string) (domain.UserStorage, error)
	CheckAccountsPresence(ctx context.Context, accounts []string) (map[string]bool, error)
	CheckTriggersPresenceByGroup(ctx context.Context) (map[domain.TriggerKindGroup]bool, error)
	SetFeatureAnnouncementsEnabled(ctx context.Context, enabled bool)
	SetFeatureSeen(ctx context.Context)
}

// Handler defines the interface for REST API handlers
type Handler interface {
	// HealthCheck returns the health status of the daemon
	// GET /health
	HealthCheck(c *gin.Context)

	// GetState returns the full observable controller state
	// GET /api/v1/state
	GetState(c *gin.Context)

	// GetEnabled reports whether notifications are enabled
	// GET /api/v1/enabled
	GetEnabled(c *gin.Context)

	// EnableNotifications turns the subsystem on
	// POST /api/v1/notifications/enable
	EnableNotifications(c *gin.Context)

	// DisableNotifications turns the subsystem off
	// POST /api/v1/notifications/disable
	DisableNotifications(c *gin.Context)

	// FetchNotifications refreshes and returns the notification list
	// POST /api/v1/notifications/fetch
	FetchNotifications(c *gin.Context)

	// MarkNotificationsAsRead marks the given notifications as read
	// POST /api/v1/notifications/mark-as-read
	MarkNotificationsAsRead(c *gin.Context)

	// UpdateAccounts ensures the given accounts have trigger sets
	// POST /api/v1/accounts/update
	UpdateAccounts(c *gin.Context)

	// DeleteAccounts removes the given accounts' triggers
	// POST /api/v1/accounts/delete
	DeleteAccounts(c *gin.Context)

	// CheckAccountsPresence reports per-account trigger presence
	// POST /api/v1/accounts/presence
	CheckAccountsPresence(c *gin.Context)

	// CheckTriggersPresenceByGroup reports per-group trigger presence
	// GET /api/v1/triggers/presence-by-group
	CheckTriggersPresenceByGroup(c *gin.Context)

	// SetFeatureAnnouncementsEnabled toggles the announcement feed
	// PUT /api/v1/features/announcements
	SetFeatureAnnouncementsEnabled(c *gin.Context)

	// SetFeatureSeen records that the notifications feature was seen
	// POST /api/v1/features/seen
	SetFeatureSeen(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	service Service
}

// NewHandler creates a new REST API handler
func NewHandler(service Service) Handler {
	return &handler{service: service}
}

type accountsRequest struct {
	Accounts []string `json:"accounts" binding:"required,min=1"`
}

type markAsReadRequest struct {
	Items []domain.MarkAsReadItem `json:"items" binding:"required,min=1"`
}

type featureAnnouncementsRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.GetState())
}

func (h *handler) GetEnabled(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"enabled": h.service.SelectIsNotificationsEnabled()})
}

func (h *handler) EnableNotifications(c *gin.Context) {
	if err := h.service.EnableNotifications(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": true})
}

func (h *handler) DisableNotifications(c *gin.Context) {
	if err := h.service.DisableNotifications(c.Request.Context()); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"enabled": false})
}

func (h *handler) FetchNotifications(c *gin.Context) {
	notifications, err := h.service.FetchAndUpdateNotifications(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *handler) MarkNotificationsAsRead(c *gin.Context) {
	var req markAsReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "items are required")
		return
	}

	h.service.MarkNotificationsAsRead(c.Request.Context(), req.Items)
	c.Status(http.StatusNoContent)
}

func (h *handler) UpdateAccounts(c *gin.Context) {
	accounts, ok := bindAccounts(c)
	if !ok {
		return
	}

	if _, err := h.service.UpdateOnChainTriggersByAccount(c.Request.Context(), accounts); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (h *handler) DeleteAccounts(c *gin.Context) {
	accounts, ok := bindAccounts(c)
	if !ok {
		return
	}

	if _, err := h.service.DeleteOnChainTriggersByAccount(c.Request.Context(), accounts); err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

func (h *handler) CheckAccountsPresence(c *gin.Context) {
	accounts, ok := bindAccounts(c)
	if !ok {
		return
	}

	presence, err := h.service.CheckAccountsPresence(c.Request.Context(), accounts)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"presence": presence})
}

func (h *handler) CheckTriggersPresenceByGroup(c *gin.Context) {
	presence, err := h.service.CheckTriggersPresenceByGroup(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"presence": presence})
}

func (h *handler) SetFeatureAnnouncementsEnabled(c *gin.Context) {
	var req featureAnnouncementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "enabled is required")
		return
	}

	h.service.SetFeatureAnnouncementsEnabled(c.Request.Context(), *req.Enabled)
	c.JSON(http.StatusOK, gin.H{"enabled": *req.Enabled})
}

func (h *handler) SetFeatureSeen(c *gin.Context) {
	h.service.SetFeatureSeen(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// bindAccounts parses and validates the shared accounts request body
func bindAccounts(c *gin.Context) ([]string, bool) {
	var req accountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "accounts are required")
		return nil, false
	}
	for _, account := range req.Accounts {
		if !domain.IsEthereumAddress(account) {
			respondBadRequest(c, "invalid account address: "+account)
			return nil, false
		}
	}
	return req.Accounts, true
}
