package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/and161185/propledger/internal/model"
)

type fakeJS struct {
	subject string
	data    []byte
	opts    int
	err     error
}

func (f *fakeJS) Publish(_ context.Context, subject string, data []byte, opts ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
	f.subject, f.data, f.opts = subject, data, len(opts)
	if f.err != nil {
		return nil, f.err
	}
	return &jetstream.PubAck{Stream: "PROPERTIES", Sequence: 1}, nil
}

func TestJetStreamPublisher_Publish(t *testing.T) {
	js := &fakeJS{}
	p := NewJetStreamPublisher(js, zaptest.NewLogger(t))
	pid := uuid.Must(uuid.NewV4())
	to := uuid.Must(uuid.NewV4())
	ev := model.Event{
		ID:    "01HXYZ",
		Type:  model.EventTransfer,
		Price: decimal.RequireFromString("12.50"),
		From:  uuid.Must(uuid.NewV4()),
		To:    uuid.NullUUID{UUID: to, Valid: true},
	}

	require.NoError(t, p.Publish(context.Background(), pid, ev))
	require.Equal(t, "properties.transfer", js.subject)
	require.Equal(t, 1, js.opts, "want message id option")

	var msg Message
	require.NoError(t, json.Unmarshal(js.data, &msg))
	require.Equal(t, pid.String(), msg.PropertyID)
	require.Equal(t, to.String(), msg.To)
	require.True(t, msg.Price.Equal(decimal.RequireFromString("12.5")))
}

func TestJetStreamPublisher_Error(t *testing.T) {
	js := &fakeJS{err: errors.New("no responders")}
	p := NewJetStreamPublisher(js, zaptest.NewLogger(t))
	err := p.Publish(context.Background(), uuid.Must(uuid.NewV4()), model.Event{Type: model.EventBid})
	require.Error(t, err)
	p.Close()
}

func TestNop(t *testing.T) {
	var p Publisher = Nop{}
	require.NoError(t, p.Publish(context.Background(), uuid.Nil, model.Event{}))
	p.Close()
}
