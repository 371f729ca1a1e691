package lifecycle

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/ledger"
	"github.com/and161185/propledger/internal/model"
)

var t0 = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newMachine(c *clock) *Machine {
	n := 0
	return New(Config{
		FrontendURL: "https://estate.example/",
		Now:         c.Now,
		NewEventID: func() string {
			n++
			return fmt.Sprintf("ev-%03d", n)
		},
	})
}

func pending(t *testing.T, m *Machine) model.Property {
	t.Helper()
	p, err := m.NewProperty(uuid.Must(uuid.NewV4()), CreateInput{
		Details: model.Details{
			Title:        "Loft",
			Description:  "Top floor",
			PropertyType: model.TypeResidential,
			Bedrooms:     2,
		},
		Price:  decimal.NewFromInt(500),
		Images: []string{"https://img/1"},
	})
	require.NoError(t, err)
	return p
}

// accepter mimics the store: it accepts the mutation and appends its event.
func accepter(t *testing.T) func(model.Mutation, error) model.Property {
	return func(mut model.Mutation, err error) model.Property {
		t.Helper()
		require.NoError(t, err)
		next := mut.Next
		if mut.Event != nil {
			next = ledger.Apply(next, *mut.Event)
		}
		next.Version++
		return next
	}
}

func tokenInput() TokenInput {
	return TokenInput{
		TokenID:         "7",
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TokenURI:        "ipfs://meta/7",
		TransactionHash: "0xabc",
	}
}

func TestNewProperty_PendingEmptyHistory(t *testing.T) {
	m := newMachine(&clock{now: t0})
	p := pending(t, m)
	require.Equal(t, model.StatusPending, p.Status)
	require.Empty(t, p.History)
	require.NotNil(t, p.History)
	require.Equal(t, int64(1), p.Version)
	require.NotEqual(t, uuid.Nil, p.Owner)
}

func TestNewProperty_Validation(t *testing.T) {
	m := newMachine(&clock{now: t0})
	owner := uuid.Must(uuid.NewV4())
	base := model.Details{Title: "x", PropertyType: model.TypeLand}

	_, err := m.NewProperty(uuid.Nil, CreateInput{Details: base})
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	_, err = m.NewProperty(owner, CreateInput{Details: base, Price: decimal.NewFromInt(-1)})
	require.ErrorIs(t, err, errs.ErrValidation)

	bad := base
	bad.PropertyType = "castle"
	_, err = m.NewProperty(owner, CreateInput{Details: bad})
	require.ErrorIs(t, err, errs.ErrValidation)

	bad = base
	bad.Location.Latitude = 91
	_, err = m.NewProperty(owner, CreateInput{Details: bad})
	require.ErrorIs(t, err, errs.ErrValidation)

	bad = base
	bad.YearBuilt = 1700
	_, err = m.NewProperty(owner, CreateInput{Details: bad})
	require.ErrorIs(t, err, errs.ErrValidation)

	past := t0.Add(-time.Hour)
	_, err = m.NewProperty(owner, CreateInput{Details: base, Auction: AuctionSettings{Enabled: true, EndTime: &past}})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestTokenize(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := pending(t, m)

	p = ok(m.Tokenize(p, tokenInput()))
	require.True(t, p.IsTokenized)
	require.Equal(t, model.StatusTokenized, p.Status)
	require.Equal(t, "7", p.TokenID)
	require.Len(t, p.History, 1)

	ev := p.History[0]
	require.Equal(t, model.EventTokenize, ev.Type)
	require.Equal(t, p.Owner, ev.From)
	require.Equal(t, "0xabc", ev.TransactionHash)
	require.Equal(t, DefaultNetwork, ev.Metadata[model.MetaNetwork])
	require.Equal(t, fmt.Sprint(t0.UnixMilli()), ev.Metadata[model.MetaBlockNumber])

	require.NotNil(t, p.NFTMetadata)
	require.Equal(t, "Loft", p.NFTMetadata.Name)
	require.Equal(t, "https://img/1", p.NFTMetadata.Image)
	require.Equal(t, "https://estate.example/properties/"+p.ID.String(), p.NFTMetadata.ExternalURL)
	require.Equal(t, "N/A", p.NFTMetadata.Attributes[4].Value)
}

func TestTokenize_Twice_AlreadyTokenized(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := ok(m.Tokenize(pending(t, m), tokenInput()))
	before := len(p.History)

	_, err := m.Tokenize(p, tokenInput())
	require.ErrorIs(t, err, errs.ErrAlreadyTokenized)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	require.Len(t, p.History, before)
}

func TestTokenize_BadContractAddress(t *testing.T) {
	m := newMachine(&clock{now: t0})
	in := tokenInput()
	in.ContractAddress = "not-an-address"
	_, err := m.Tokenize(pending(t, m), in)
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestList_RequiresTokenization(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := pending(t, m)

	_, err := m.List(p, ListInput{Price: decimal.NewFromInt(900)})
	require.ErrorIs(t, err, errs.ErrNotTokenized)
	require.ErrorIs(t, err, errs.ErrInvalidTransition)

	p = ok(m.Tokenize(p, tokenInput()))
	p = ok(m.List(p, ListInput{Price: decimal.NewFromInt(900), TransactionHash: "0xlist"}))
	require.Equal(t, model.StatusListed, p.Status)
	require.True(t, p.Price.Equal(decimal.NewFromInt(900)))
	require.Equal(t, model.EventList, p.History[1].Type)
	require.True(t, p.History[1].Price.Equal(decimal.NewFromInt(900)))

	_, err = m.List(p, ListInput{Price: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, errs.ErrAlreadyListed)
}

func TestUnlist(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := pending(t, m)

	_, err := m.Unlist(p, "")
	require.ErrorIs(t, err, errs.ErrNotListed)

	p = ok(m.Tokenize(p, tokenInput()))
	p = ok(m.List(p, ListInput{Price: decimal.NewFromInt(1)}))
	p = ok(m.Unlist(p, "0xun"))
	require.Equal(t, model.StatusUnlisted, p.Status)

	p = ok(m.List(p, ListInput{Price: decimal.NewFromInt(2)}))
	require.Equal(t, model.StatusListed, p.Status)
	require.Equal(t, 4, len(p.History))
}

func TestTransfer(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := pending(t, m)
	buyer := uuid.Must(uuid.NewV4())
	seller := p.Owner

	_, err := m.Transfer(p, TransferInput{To: buyer})
	require.ErrorIs(t, err, errs.ErrNotTokenized)

	p = ok(m.Tokenize(p, tokenInput()))
	_, err = m.Transfer(p, TransferInput{To: seller})
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = m.Transfer(p, TransferInput{})
	require.ErrorIs(t, err, errs.ErrValidation)

	p = ok(m.Transfer(p, TransferInput{To: buyer, Price: decimal.NewFromInt(700), TransactionHash: "0xt"}))
	require.Equal(t, buyer, p.Owner)
	require.Equal(t, model.StatusSold, p.Status)

	ev := p.History[len(p.History)-1]
	require.Equal(t, model.EventTransfer, ev.Type)
	require.Equal(t, seller, ev.From)
	require.Equal(t, uuid.NullUUID{UUID: buyer, Valid: true}, ev.To)
	require.Equal(t, seller.String(), ev.Metadata[model.MetaPreviousOwner])
	require.Equal(t, buyer.String(), ev.Metadata[model.MetaNewOwner])
	require.Equal(t, tokenInput().TokenID, ev.Metadata[model.MetaTokenID])
	require.Equal(t, tokenInput().ContractAddress, ev.Metadata[model.MetaContractAddress])

	// the new owner may relist
	p = ok(m.List(p, ListInput{Price: decimal.NewFromInt(800)}))
	require.Equal(t, model.StatusListed, p.Status)
}

func TestTransfer_DuringOpenAuction(t *testing.T) {
	ok := accepter(t)
	c := &clock{now: t0}
	m := newMachine(c)
	p := ok(m.Tokenize(pending(t, m), tokenInput()))
	end := t0.Add(time.Hour)
	p = ok(m.ConfigureAuction(p, AuctionSettings{Enabled: true, EndTime: &end}))

	_, err := m.Transfer(p, TransferInput{To: uuid.Must(uuid.NewV4())})
	require.ErrorIs(t, err, errs.ErrAuctionInProgress)

	c.now = end.Add(time.Second)
	p = ok(m.Transfer(p, TransferInput{To: uuid.Must(uuid.NewV4()), Price: decimal.NewFromInt(10)}))
	require.False(t, p.IsAuctionEnabled)
	sale := p.History[len(p.History)-1]
	require.Equal(t, model.EventSale, sale.Type)
	require.Equal(t, tokenInput().TokenID, sale.Metadata[model.MetaTokenID])
	require.Equal(t, tokenInput().ContractAddress, sale.Metadata[model.MetaContractAddress])
}

func TestPlaceBid_Sequence(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := ok(m.Tokenize(pending(t, m), tokenInput()))
	p = ok(m.ConfigureAuction(p, AuctionSettings{Enabled: true}))
	require.True(t, p.CurrentBid.IsZero())
	bidder := uuid.Must(uuid.NewV4())

	p = ok(m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(100)}))
	require.True(t, p.CurrentBid.Equal(decimal.NewFromInt(100)))
	p = ok(m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(150)}))
	require.True(t, p.CurrentBid.Equal(decimal.NewFromInt(150)))

	_, err := m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(120)})
	require.ErrorIs(t, err, errs.ErrBidTooLow)

	require.True(t, p.CurrentBid.Equal(decimal.NewFromInt(150)))
	require.Equal(t, 2, ledger.Count(p.History, model.EventBid))
	last := p.History[len(p.History)-1]
	require.Equal(t, bidder, last.From)
	require.True(t, last.Price.Equal(decimal.NewFromInt(150)))
}

func TestPlaceBid_Rejections(t *testing.T) {
	ok := accepter(t)
	c := &clock{now: t0}
	m := newMachine(c)
	p := pending(t, m)
	bidder := uuid.Must(uuid.NewV4())

	_, err := m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(1)})
	require.ErrorIs(t, err, errs.ErrAuctionNotEnabled)

	end := t0.Add(time.Minute)
	p = ok(m.ConfigureAuction(p, AuctionSettings{
		Enabled:    true,
		EndTime:    &end,
		MinimumBid: decimal.NewNullDecimal(decimal.NewFromInt(50)),
	}))

	_, err = m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(40)})
	require.ErrorIs(t, err, errs.ErrBelowMinimum)
	_, err = m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(0)})
	require.ErrorIs(t, err, errs.ErrBidTooLow)
	_, err = m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(-5)})
	require.ErrorIs(t, err, errs.ErrValidation)

	c.now = end.Add(time.Nanosecond)
	_, err = m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(60)})
	require.ErrorIs(t, err, errs.ErrAuctionEnded)
	require.ErrorIs(t, err, errs.ErrBidRejected)
}

func TestConfigureAuction_ReopenResetsBid(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := pending(t, m)
	p = ok(m.ConfigureAuction(p, AuctionSettings{Enabled: true}))
	p = ok(m.PlaceBid(p, uuid.Must(uuid.NewV4()), BidInput{Amount: decimal.NewFromInt(10)}))

	p = ok(m.ConfigureAuction(p, AuctionSettings{Enabled: true}))
	require.True(t, p.CurrentBid.Equal(decimal.NewFromInt(10)), "already enabled keeps bid")

	p = ok(m.ConfigureAuction(p, AuctionSettings{Enabled: false}))
	p = ok(m.ConfigureAuction(p, AuctionSettings{Enabled: true}))
	require.True(t, p.CurrentBid.IsZero())
	require.Equal(t, 1, len(p.History), "settings changes append nothing")
}

func TestUpdateDetails(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := ok(m.Tokenize(pending(t, m), tokenInput()))
	title := "Penthouse"
	beds := 3

	mut, err := m.UpdateDetails(p, DetailsPatch{Title: &title, Bedrooms: &beds, Amenities: []string{"pool"}})
	require.NoError(t, err)
	require.Nil(t, mut.Event)
	require.Equal(t, "Penthouse", mut.Next.Title)
	require.Equal(t, 3, mut.Next.Bedrooms)
	require.Equal(t, []string{"pool"}, mut.Next.Amenities)
	require.Equal(t, model.StatusTokenized, mut.Next.Status)
	require.Equal(t, "Loft", p.Title, "input snapshot untouched")

	empty := " "
	_, err = m.UpdateDetails(p, DetailsPatch{Title: &empty})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestMedia(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := pending(t, m)

	p = ok(m.AttachMedia(p, MediaDocument, []string{"https://doc/1", "https://doc/2"}))
	require.Equal(t, []string{"https://doc/1", "https://doc/2"}, p.Documents)

	p = ok(m.RemoveMedia(p, MediaDocument, "https://doc/1"))
	require.Equal(t, []string{"https://doc/2"}, p.Documents)

	_, err := m.RemoveMedia(p, MediaImage, "https://missing")
	require.ErrorIs(t, err, errs.ErrNotFound)
	_, err = m.AttachMedia(p, MediaKind("video"), []string{"x"})
	require.ErrorIs(t, err, errs.ErrValidation)
	require.Empty(t, p.History)
}

func TestHistoryLength_EqualsAcceptedTransitions(t *testing.T) {
	ok := accepter(t)
	m := newMachine(&clock{now: t0})
	p := pending(t, m)
	bidder := uuid.Must(uuid.NewV4())
	accepted := 0

	step := func(mut model.Mutation, err error) {
		if err != nil {
			return
		}
		p = ok(mut, nil)
		accepted++
	}
	step(m.Tokenize(p, tokenInput()))
	step(m.Tokenize(p, tokenInput()))
	step(m.Unlist(p, ""))
	step(m.List(p, ListInput{Price: decimal.NewFromInt(3)}))
	step(m.List(p, ListInput{Price: decimal.NewFromInt(3)}))
	step(m.PlaceBid(p, bidder, BidInput{Amount: decimal.NewFromInt(1)}))
	step(m.Unlist(p, ""))

	require.Equal(t, accepted, len(p.History))
	require.Equal(t, 3, accepted)
}
