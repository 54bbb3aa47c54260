package push

import (
	"fmt"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/openwallet/notification-services/internal/adapter"
	"github.com/openwallet/notification-services/internal/config"
	"github.com/openwallet/notification-services/internal/domain"
	"github.com/openwallet/notification-services/internal/logger"
)

// NotificationHandler receives each pushed notification as it arrives
type NotificationHandler func(domain.RawNotification)

// Subscriber consumes pushed notification events from the push backend's
// NATS subject and hands them to the controller for append-if-new insertion.
type Subscriber struct {
	nats    adapter.Nats
	json    adapter.JSON
	cfg     config.NATSConfig
	conn    adapter.NatsConn
	sub     adapter.NatsSubscription
	handler NotificationHandler
}

// NewSubscriber creates a push event subscriber
func NewSubscriber(natsFactory adapter.Nats, json adapter.JSON, cfg config.NATSConfig, handler NotificationHandler) *Subscriber {
	return &Subscriber{
		nats:    natsFactory,
		json:    json,
		cfg:     cfg,
		handler: handler,
	}
}

// Start connects and subscribes. Malformed payloads are logged and dropped;
// one bad event never takes the subscription down.
func (s *Subscriber) Start() error {
	opts := []nats.Option{
		nats.Name(s.cfg.ConnectionName),
		nats.MaxReconnects(s.cfg.MaxReconnects),
		nats.ReconnectWait(s.cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn("push event stream disconnected", zap.Error(err))
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("push event stream reconnected")
		}),
	}

	conn, err := s.nats.Connect(s.cfg.URL, opts...)
	if err != nil {
		return fmt.Errorf("failed to connect to push event stream: %w", err)
	}
	s.conn = conn

	sub, err := conn.Subscribe(s.cfg.Subject, s.handleMessage)
	if err != nil {
		conn.Close()
		s.conn = nil
		return fmt.Errorf("failed to subscribe to %s: %w", s.cfg.Subject, err)
	}
	s.sub = sub

	logger.Info("subscribed to push events", zap.String("subject", s.cfg.Subject))
	return nil
}

func (s *Subscriber) handleMessage(data []byte) {
	var raw domain.RawNotification
	if err := s.json.Unmarshal(data, &raw); err != nil {
		logger.Warn("dropping unparseable push event", zap.Error(err))
		return
	}
	s.handler(raw)
}

// Stop drains the subscription; the connection closes itself once the drain
// completes.
func (s *Subscriber) Stop() {
	if s.sub != nil {
		if err := s.sub.Unsubscribe(); err != nil {
			logger.Warn("failed to unsubscribe from push events", zap.Error(err))
		}
	}
	if s.conn != nil {
		if err := s.conn.Drain(); err != nil {
			logger.Warn("failed to drain push event connection", zap.Error(err))
			s.conn.Close()
		}
	}
}
