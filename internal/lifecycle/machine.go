// Package lifecycle implements the property state machine and the auction engine.
//
// Every function here is pure over model.Property: it takes the current
// snapshot and returns either a Mutation or an error, never touching storage.
// Ownership checks belong to the guard package and run before these steps.
package lifecycle

import (
	"strconv"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/and161185/propledger/internal/model"
)

// DefaultNetwork is recorded in event metadata when no network is configured.
const DefaultNetwork = "polygon-mumbai"

// Config is injected at construction; nothing is read from the environment.
type Config struct {
	Network     string
	FrontendURL string
	Now         func() time.Time
	NewEventID  func() string
}

// Machine applies transitions using the injected configuration.
type Machine struct {
	network     string
	frontendURL string
	now         func() time.Time
	newEventID  func() string
}

// New constructs a Machine, filling defaults for unset fields.
func New(cfg Config) *Machine {
	m := &Machine{
		network:     cfg.Network,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		now:         cfg.Now,
		newEventID:  cfg.NewEventID,
	}
	if m.network == "" {
		m.network = DefaultNetwork
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.newEventID == nil {
		m.newEventID = func() string { return ulid.Make().String() }
	}
	return m
}

// Now returns the machine clock reading.
func (m *Machine) Now() time.Time { return m.now() }

// event builds a ledger entry stamped with provenance metadata.
func (m *Machine) event(t model.EventType, p model.Property, evidence string) model.Event {
	now := m.now().UTC()
	return model.Event{
		ID:              m.newEventID(),
		Type:            t,
		Price:           p.Price,
		Date:            now,
		TransactionHash: evidence,
		From:            p.Owner,
		Metadata: map[string]string{
			model.MetaNetwork:     m.network,
			model.MetaBlockNumber: strconv.FormatInt(now.UnixMilli(), 10),
			model.MetaTimestamp:   now.Format(time.RFC3339Nano),
		},
	}
}

// touched returns a deep copy of p ready to be mutated.
func (m *Machine) touched(p model.Property) model.Property {
	next := p.Clone()
	next.UpdatedAt = m.now().UTC()
	return next
}
