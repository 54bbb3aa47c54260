package adapter

import (
	"github.com/nats-io/nats.go"
)

// MessageHandler handles the payload of one NATS message
type MessageHandler func(data []byte)

// NatsConn defines an interface for NATS connection operations to enable mocking
//
//go:generate mockgen -source=nats.go -destination=../mocks/nats.go -package=mocks -mock_names=NatsConn=MockNatsConn,NatsSubscription=MockNatsSubscription,Nats=MockNats
type NatsConn interface {
	Subscribe(subject string, handler MessageHandler) (NatsSubscription, error)
	Drain() error
	Close()
}

// NatsSubscription defines an interface for NATS subscriptions to enable mocking
type NatsSubscription interface {
	Unsubscribe() error
}

// Nats defines an interface for creating NATS connections
type Nats interface {
	Connect(url string, options ...nats.Option) (NatsConn, error)
}

// RealNats implements Nats using the standard nats package
type RealNats struct{}

// NewNats creates a new real NATS factory
func NewNats() Nats {
	return &RealNats{}
}

func (n *RealNats) Connect(url string, options ...nats.Option) (NatsConn, error) {
	nc, err := nats.Connect(url, options...)
	if err != nil {
		return nil, err
	}
	return &natsConnAdapter{nc: nc}, nil
}

// natsConnAdapter adapts *nats.Conn to the NatsConn interface
type natsConnAdapter struct {
	nc *nats.Conn
}

func (a *natsConnAdapter) Subscribe(subject string, handler MessageHandler) (NatsSubscription, error) {
	return a.nc.Subscribe(subject, func(msg *nats.Msg) {
		handler(msg.Data)
	})
}

func (a *natsConnAdapter) Drain() error {
	return a.nc.Drain()
}

func (a *natsConnAdapter) Close() {
	a.nc.Close()
}
