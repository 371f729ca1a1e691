// Package notify fans committed ledger events out to subscribers.
//
// Publishing happens after the commit and is best-effort: callers log
// failures and never roll back a committed transition because of them.
package notify

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/and161185/propledger/internal/model"
)

// SubjectPrefix is prepended to the event type to form the subject.
const SubjectPrefix = "properties."

// Publisher delivers committed events.
type Publisher interface {
	Publish(ctx context.Context, propertyID uuid.UUID, ev model.Event) error
	Close()
}

// Message is the payload published for every appended event.
type Message struct {
	EventID         string            `json:"eventId"`
	PropertyID      string            `json:"propertyId"`
	Type            string            `json:"type"`
	Price           decimal.Decimal   `json:"price"`
	Date            time.Time         `json:"date"`
	TransactionHash string            `json:"transactionHash,omitempty"`
	From            string            `json:"from"`
	To              string            `json:"to,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// NewMessage converts a ledger event into its published form.
func NewMessage(propertyID uuid.UUID, ev model.Event) Message {
	m := Message{
		EventID:         ev.ID,
		PropertyID:      propertyID.String(),
		Type:            string(ev.Type),
		Price:           ev.Price,
		Date:            ev.Date,
		TransactionHash: ev.TransactionHash,
		From:            ev.From.String(),
		Metadata:        ev.Metadata,
	}
	if ev.To.Valid {
		m.To = ev.To.UUID.String()
	}
	return m
}

// Subject returns the subject an event of type t is published on.
func Subject(t model.EventType) string { return SubjectPrefix + string(t) }

// Nop discards events.
type Nop struct{}

func (Nop) Publish(context.Context, uuid.UUID, model.Event) error { return nil }
func (Nop) Close()                                                {}
