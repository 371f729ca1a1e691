package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/and161185/propledger/internal/model"
)

// JetStreamConfig holds the NATS connection settings.
type JetStreamConfig struct {
	URL            string
	StreamName     string
	ConnectionName string
	MaxReconnects  int
	ReconnectWait  time.Duration
}

// JetStream is the subset of jetstream.JetStream used for publishing.
type JetStream interface {
	Publish(ctx context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error)
}

// JetStreamPublisher publishes events with the event id as message id,
// so redelivery after a client retry is deduplicated by the server.
type JetStreamPublisher struct {
	nc  *nats.Conn
	js  JetStream
	log *zap.Logger
}

// NewJetStreamPublisher wraps an existing JetStream handle. Used by tests.
func NewJetStreamPublisher(js JetStream, log *zap.Logger) *JetStreamPublisher {
	return &JetStreamPublisher{js: js, log: log}
}

// ConnectJetStream dials NATS and ensures the stream covering properties.> exists.
func ConnectJetStream(ctx context.Context, cfg JetStreamConfig, log *zap.Logger) (*JetStreamPublisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				log.Warn("nats disconnected", zap.Error(err))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("nats reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
	}
	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("jetstream: %w", err)
	}
	if _, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     cfg.StreamName,
		Subjects: []string{SubjectPrefix + ">"},
	}); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream %s: %w", cfg.StreamName, err)
	}
	return &JetStreamPublisher{nc: nc, js: js, log: log}, nil
}

// Publish sends ev on properties.<type>.
func (p *JetStreamPublisher) Publish(ctx context.Context, propertyID uuid.UUID, ev model.Event) error {
	data, err := json.Marshal(NewMessage(propertyID, ev))
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	subject := Subject(ev.Type)
	if _, err := p.js.Publish(ctx, subject, data, jetstream.WithMsgID(ev.ID)); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.log.Debug("event published", zap.String("subject", subject), zap.String("event_id", ev.ID))
	return nil
}

// Close drains the connection.
func (p *JetStreamPublisher) Close() {
	if p.nc == nil {
		return
	}
	if err := p.nc.Drain(); err != nil {
		p.nc.Close()
	}
}
