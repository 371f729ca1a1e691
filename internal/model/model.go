// Package model defines domain entities used by services and repositories.
package model

import (
	"slices"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a property. Exactly one value at a time.
type Status string

const (
	StatusPending   Status = "pending"
	StatusTokenized Status = "tokenized"
	StatusListed    Status = "listed"
	StatusUnlisted  Status = "unlisted"
	StatusSold      Status = "sold"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusTokenized, StatusListed, StatusUnlisted, StatusSold:
		return true
	}
	return false
}

// EventType is the kind of a ledger entry.
type EventType string

const (
	EventMint     EventType = "mint" // reserved; creation appends nothing
	EventTokenize EventType = "tokenize"
	EventTransfer EventType = "transfer"
	EventList     EventType = "list"
	EventUnlist   EventType = "unlist"
	EventSale     EventType = "sale"
	EventBid      EventType = "bid"
)

// Valid reports whether t is a known event type.
func (t EventType) Valid() bool {
	switch t {
	case EventMint, EventTokenize, EventTransfer, EventList, EventUnlist, EventSale, EventBid:
		return true
	}
	return false
}

// Property types accepted on creation.
const (
	TypeResidential = "residential"
	TypeCommercial  = "commercial"
	TypeLand        = "land"
)

// Metadata keys recorded on ledger entries.
const (
	MetaNetwork         = "network"
	MetaBlockNumber     = "blockNumber"
	MetaTimestamp       = "timestamp"
	MetaPreviousOwner   = "previousOwner"
	MetaNewOwner        = "newOwner"
	MetaTokenID         = "tokenId"
	MetaContractAddress = "contractAddress"
)

// Location is a GeoJSON-style point.
type Location struct {
	Longitude float64
	Latitude  float64
}

// Details are the descriptive, non-lifecycle fields of a property.
type Details struct {
	Title        string
	Description  string
	Address      string
	PropertyType string
	Location     Location
	Area         float64
	Bedrooms     int
	Bathrooms    int
	YearBuilt    int // 0 when unknown
	Amenities    []string
}

// NFTAttribute is a single trait in token metadata.
type NFTAttribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// NFTMetadata is generated on tokenization and stored alongside the token fields.
type NFTMetadata struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Image       string         `json:"image,omitempty"`
	Attributes  []NFTAttribute `json:"attributes"`
	ExternalURL string         `json:"externalUrl"`
}

// Event is an immutable ledger entry.
type Event struct {
	ID              string // ULID, time ordered
	Type            EventType
	Price           decimal.Decimal
	Date            time.Time
	TransactionHash string        // opaque evidence supplied by the caller
	From            uuid.UUID     // acting user
	To              uuid.NullUUID // counterparty, transfers only
	Metadata        map[string]string
}

// Property is the aggregate root.
type Property struct {
	ID    uuid.UUID
	Owner uuid.UUID
	Details

	Images    []string
	Documents []string

	Status Status
	Price  decimal.Decimal

	IsAuctionEnabled bool
	AuctionEndTime   *time.Time
	CurrentBid       decimal.Decimal
	MinimumBid       decimal.NullDecimal

	IsTokenized     bool
	TokenID         string
	ContractAddress string
	TokenURI        string
	NFTMetadata     *NFTMetadata

	History   []Event
	Favorites []uuid.UUID
	Views     int64

	Version   int64 // +1 per accepted mutation
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so snapshots never alias stored slices or maps.
func (p Property) Clone() Property {
	c := p
	c.Amenities = slices.Clone(p.Amenities)
	c.Images = slices.Clone(p.Images)
	c.Documents = slices.Clone(p.Documents)
	c.Favorites = slices.Clone(p.Favorites)
	if p.AuctionEndTime != nil {
		t := *p.AuctionEndTime
		c.AuctionEndTime = &t
	}
	if p.NFTMetadata != nil {
		m := *p.NFTMetadata
		m.Attributes = slices.Clone(p.NFTMetadata.Attributes)
		c.NFTMetadata = &m
	}
	if p.History != nil {
		c.History = make([]Event, len(p.History))
		for i, ev := range p.History {
			c.History[i] = ev.Clone()
		}
	}
	return c
}

// Clone returns a copy of the event with its own metadata map.
func (e Event) Clone() Event {
	c := e
	if e.Metadata != nil {
		c.Metadata = make(map[string]string, len(e.Metadata))
		for k, v := range e.Metadata {
			c.Metadata[k] = v
		}
	}
	return c
}

// IsFavoritedBy reports whether user has the property in favorites.
func (p Property) IsFavoritedBy(user uuid.UUID) bool {
	return slices.Contains(p.Favorites, user)
}

// Mutation is the outcome of a state-machine step: the next state and, for
// lifecycle transitions, the single event to append. Event is nil for
// amendments that change descriptive fields only.
type Mutation struct {
	Next  Property
	Event *Event
}

// Action names an operation requested by an actor.
type Action string

const (
	ActionTokenize Action = "tokenize"
	ActionList     Action = "list"
	ActionUnlist   Action = "unlist"
	ActionTransfer Action = "transfer"
	ActionBid      Action = "bid"
	ActionAmend    Action = "amend" // details, auction settings, media
)

// Filter narrows property listings. Zero values mean "any".
type Filter struct {
	Status       Status
	PropertyType string
	Tokenized    *bool
	Owner        uuid.UUID
	Offset       int
	Limit        int
}

// HistoryQuery pages through a property's ledger in append order.
type HistoryQuery struct {
	Type   EventType // empty = all types
	Offset int
	Limit  int // 0 = no limit
}
