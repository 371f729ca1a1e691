package lifecycle

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/model"
)

// BidInput is a single bid.
type BidInput struct {
	Amount          decimal.Decimal
	TransactionHash string
}

// Validate rejects negative amounts.
func (in BidInput) Validate() error {
	if in.Amount.IsNegative() {
		return errs.Validation("negative bid amount")
	}
	return nil
}

// AuctionSettings configures the auction window.
type AuctionSettings struct {
	Enabled    bool
	MinimumBid decimal.NullDecimal
	EndTime    *time.Time
}

// Validate checks the minimum bid and end time against now.
func (in AuctionSettings) Validate(now time.Time) error {
	if in.MinimumBid.Valid && in.MinimumBid.Decimal.IsNegative() {
		return errs.Validation("negative minimum bid")
	}
	if in.Enabled && in.EndTime != nil && !in.EndTime.After(now) {
		return errs.Validation("auction end time is not in the future")
	}
	return nil
}

// PlaceBid records a bid from bidder. Expiry is evaluated against the
// machine clock at call time; nothing polls for it.
func (m *Machine) PlaceBid(p model.Property, bidder uuid.UUID, in BidInput) (model.Mutation, error) {
	if err := in.Validate(); err != nil {
		return model.Mutation{}, err
	}
	if !p.IsAuctionEnabled {
		return model.Mutation{}, errs.ErrAuctionNotEnabled
	}
	if p.AuctionEndTime != nil && m.now().After(*p.AuctionEndTime) {
		return model.Mutation{}, errs.ErrAuctionEnded
	}
	if in.Amount.LessThanOrEqual(p.CurrentBid) {
		return model.Mutation{}, errs.ErrBidTooLow
	}
	if p.MinimumBid.Valid && in.Amount.LessThan(p.MinimumBid.Decimal) {
		return model.Mutation{}, errs.ErrBelowMinimum
	}

	next := m.touched(p)
	next.CurrentBid = in.Amount

	ev := m.event(model.EventBid, p, in.TransactionHash)
	ev.Price = in.Amount
	ev.From = bidder
	return model.Mutation{Next: next, Event: &ev}, nil
}

// ConfigureAuction updates auction settings. Enabling a disabled auction opens a
// new window, so the current bid starts again from zero.
func (m *Machine) ConfigureAuction(p model.Property, in AuctionSettings) (model.Mutation, error) {
	if err := in.Validate(m.now()); err != nil {
		return model.Mutation{}, err
	}

	next := m.touched(p)
	if in.Enabled && !p.IsAuctionEnabled {
		next.CurrentBid = decimal.Zero
	}
	next.IsAuctionEnabled = in.Enabled
	next.MinimumBid = in.MinimumBid
	next.AuctionEndTime = nil
	if in.EndTime != nil {
		t := in.EndTime.UTC()
		next.AuctionEndTime = &t
	}
	return model.Mutation{Next: next}, nil
}

// auctionOpen reports whether p has an auction whose window has not elapsed.
func auctionOpen(p model.Property, now time.Time) bool {
	return p.IsAuctionEnabled && p.AuctionEndTime != nil && !now.After(*p.AuctionEndTime)
}
