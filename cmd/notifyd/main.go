package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/openwallet/notification-services/internal/accounts"
	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/api/server"
	"github.com/openwallet/notification-services/internal/config"
	"github.com/openwallet/notification-services/internal/controller"
	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/logger"
	"github.com/openwallet/notification-services/internal/providers/announcements"
	"github.com/openwallet/notification-services/internal/providers/auth"
	"github.com/openwallet/notification-services/internal/providers/keyring"
	"github.com/openwallet/notification-services/internal/providers/onchain"
	"github.com/openwallet/notification-services/internal/providers/push"
	"github.com/openwallet/notification-services/internal/providers/userstorage"
	"github.com/openwallet/notification-services/internal/store"
)

const reconcileWorkers = 2

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadServiceConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "notifyd",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.Info("Starting notification daemon")

	// Open local state store
	stateStore, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		logger.Fatal("Failed to open state store", zap.Error(err), zap.String("path", cfg.Store.Path))
	}
	defer func() {
		if err := stateStore.Close(); err != nil {
			logger.Error(err, zap.String("component", "store"))
		}
	}()
	logger.Info("Opened state store", zap.String("path", cfg.Store.Path))

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Backends.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clock := adapter.NewClock()

	// Backend clients
	authClient := auth.NewClient(httpClient, jsonAdapter, clock,
		cfg.Backends.AuthURL, cfg.Wallet.Identifier, cfg.Wallet.APIKey)
	storageClient := userstorage.NewClient(httpClient, jsonAdapter, cfg.Backends.UserStorageURL)
	onChainClient := onchain.NewClient(httpClient, jsonAdapter, cfg.Backends.TriggerURL)
	announcementsClient := announcements.NewClient(httpClient, jsonAdapter, cfg.Backends.AnnouncementsURL)
	pushClient := push.NewClient(httpClient, jsonAdapter, cfg.Backends.PushURL, cfg.Wallet.RegistrationToken)

	// Wallet account source
	walletKeyring := keyring.NewKeystoreKeyring(cfg.Keystore.Path)
	reconciler := accounts.NewReconciler(walletKeyring)

	ctrl, err := controller.New(ctx, controller.Config{
		Auth:          authClient,
		Storage:       storageClient,
		Push:          pushClient,
		OnChain:       onChainClient,
		Announcements: announcementsClient,
		Accounts:      reconciler,
		Store:         stateStore,
	})
	if err != nil {
		logger.Fatal("Failed to initialize controller", zap.Error(err))
	}

	// Seed the account baseline before subscribing to keystore changes so the
	// first change event reports a genuine diff.
	if err := reconciler.Initialize(ctx); err != nil {
		logger.Fatal("Failed to read wallet accounts", zap.Error(err))
	}

	pool := pond.NewPool(reconcileWorkers, pond.WithContext(ctx))
	walletKeyring.SubscribeChanges(ctx, func() {
		pool.Submit(func() {
			reconcileAccounts(ctx, ctrl, reconciler)
		})
	})

	// Push event stream
	subscriber := push.NewSubscriber(adapter.NewNats(), jsonAdapter, cfg.NATS,
		func(raw domain.RawNotification) {
			ctrl.UpdateNotificationsList(ctx, raw)
		})
	if err := subscriber.Start(); err != nil {
		logger.Fatal("Failed to subscribe to push events", zap.Error(err))
	}
	defer subscriber.Stop()

	// Periodic notification refresh
	if cfg.FetchInterval > 0 {
		go fetchLoop(ctx, ctrl, cfg.FetchInterval)
	}

	// Create and start API server
	srv := server.New(server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}, ctrl)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error(err, zap.String("component", "server"))
	}
	cancel()

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}
	pool.StopAndWait()

	logger.Info("Notification daemon stopped")
}

// reconcileAccounts reacts to a keystore change: new accounts get trigger
// sets, removed accounts lose theirs. Failures are logged and retried on the
// next keystore change or daemon restart.
func reconcileAccounts(ctx context.Context, ctrl *controller.Controller, reconciler *accounts.Reconciler) {
	if !ctrl.SelectIsNotificationsEnabled() {
		return
	}

	result, err := reconciler.ListAccounts(ctx)
	if err != nil {
		logger.Error(err, zap.String("component", "reconciler"))
		return
	}

	if len(result.AccountsAdded) > 0 {
		if _, err := ctrl.UpdateOnChainTriggersByAccount(ctx, result.AccountsAdded); err != nil {
			logger.Error(err, zap.Strings("accounts_added", result.AccountsAdded))
		}
	}
	if len(result.AccountsRemoved) > 0 {
		if _, err := ctrl.DeleteOnChainTriggersByAccount(ctx, result.AccountsRemoved); err != nil {
			logger.Error(err, zap.Strings("accounts_removed", result.AccountsRemoved))
		}
	}
}

// fetchLoop refreshes the notification list on a fixed interval while
// notifications are enabled.
func fetchLoop(ctx context.Context, ctrl *controller.Controller, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !ctrl.SelectIsNotificationsEnabled() {
				continue
			}
			if _, err := ctrl.FetchAndUpdateNotifications(ctx); err != nil {
				logger.Error(err, zap.String("component", "fetcher"))
			}
		}
	}
}
