package lifecycle

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"pgregory.net/rapid"

	"github.com/and161185/propledger/internal/ledger"
	"github.com/and161185/propledger/internal/model"
)

func TestPlaceBid_CurrentBidStrictlyIncreases(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		m := newMachine(&clock{now: t0})
		p := model.Property{
			ID:               uuid.Must(uuid.NewV4()),
			Owner:            uuid.Must(uuid.NewV4()),
			Status:           model.StatusListed,
			IsTokenized:      true,
			IsAuctionEnabled: true,
			History:          []model.Event{},
		}
		if rapid.Bool().Draw(rt, "hasMin") {
			p.MinimumBid = decimal.NewNullDecimal(decimal.NewFromInt(rapid.Int64Range(0, 500).Draw(rt, "min")))
		}
		bidder := uuid.Must(uuid.NewV4())

		amounts := rapid.SliceOf(rapid.Int64Range(0, 1000)).Draw(rt, "amounts")
		accepted := 0
		for _, a := range amounts {
			prev := p.CurrentBid
			mut, err := m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(a)})
			if err != nil {
				continue
			}
			if !mut.Next.CurrentBid.GreaterThan(prev) {
				rt.Fatalf("bid %d accepted without exceeding %s", a, prev)
			}
			p = ledger.Apply(mut.Next, *mut.Event)
			accepted++
		}
		if got := ledger.Count(p.History, model.EventBid); got != accepted {
			rt.Fatalf("want %d bid events, got %d", accepted, got)
		}
	})
}
