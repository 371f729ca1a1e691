package convert

import (
	"testing"
	"time"

	u "github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/lifecycle"
	model "github.com/and161185/propledger/internal/model"
)

const (
	propID  = "6f1cbe8e-b2e7-4a3b-9f6e-2a2c0f2f9c11"
	ownerID = "0b7f1c0a-1111-4a3b-9f6e-2a2c0f2f9c22"
	buyerID = "0b7f1c0a-2222-4a3b-9f6e-2a2c0f2f9c33"
)

func TestParseID(t *testing.T) {
	t.Parallel()

	_, err := ParseID("id", "")
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = ParseID("id", "nope")
	require.ErrorIs(t, err, errs.ErrValidation)

	got, err := ParseID("id", propID)
	require.NoError(t, err)
	assert.Equal(t, propID, got.String())
}

func TestParseMoney(t *testing.T) {
	t.Parallel()

	d, err := ParseMoney("price", "")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	d, err = ParseMoney("price", "1250.50")
	require.NoError(t, err)
	assert.Equal(t, "1250.5", d.String())

	_, err = ParseMoney("price", "12,5")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestParseRequiredMoney(t *testing.T) {
	t.Parallel()

	_, err := ParseRequiredMoney("price", "")
	require.ErrorIs(t, err, errs.ErrValidation)
	assert.Contains(t, err.Error(), "empty price")

	d, err := ParseRequiredMoney("price", "0")
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = ParseRequiredMoney("price", "abc")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestFromProtoCreate(t *testing.T) {
	t.Parallel()

	end := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	in := &pb.CreatePropertyRequest{
		Details: &pb.Details{
			Title:        "Loft",
			PropertyType: "residential",
			Location:     &pb.Location{Longitude: 1, Latitude: 2},
			Bedrooms:     3,
		},
		Price:   "500",
		Auction: &pb.Auction{Enabled: true, MinimumBid: "10", EndTime: timestamppb.New(end)},
	}
	got, err := FromProtoCreate(in)
	require.NoError(t, err)
	assert.Equal(t, "Loft", got.Details.Title)
	assert.Equal(t, 2.0, got.Details.Location.Latitude)
	assert.Equal(t, 3, got.Details.Bedrooms)
	assert.True(t, got.Price.Equal(decimal.NewFromInt(500)))
	require.NotNil(t, got.Auction.EndTime)
	assert.True(t, got.Auction.Enabled)
	assert.True(t, got.Auction.MinimumBid.Valid)
	assert.True(t, got.Auction.EndTime.Equal(end))

	in.Auction.MinimumBid = "x"
	_, err = FromProtoCreate(in)
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = FromProtoCreate(nil)
	require.Error(t, err)
}

func TestFromProtoCreate_NilSubMessages(t *testing.T) {
	t.Parallel()

	got, err := FromProtoCreate(&pb.CreatePropertyRequest{})
	require.NoError(t, err)
	assert.False(t, got.Auction.Enabled)
	assert.Nil(t, got.Auction.EndTime)
	assert.Empty(t, got.Details.Title)
}

func TestFromProtoMediaKind(t *testing.T) {
	t.Parallel()

	k, err := FromProtoMediaKind(MediaImage)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.MediaImage, k)

	k, err = FromProtoMediaKind(MediaDocument)
	require.NoError(t, err)
	assert.Equal(t, lifecycle.MediaDocument, k)

	_, err = FromProtoMediaKind("video")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestFromProtoPatch_OnlySetFields(t *testing.T) {
	t.Parallel()

	p := FromProtoPatch(&pb.UpdateDetailsRequest{
		Title:    proto.String("New"),
		Bedrooms: proto.Int32(4),
		Location: &pb.Location{Latitude: 5},
	})
	require.NotNil(t, p.Title)
	assert.Equal(t, "New", *p.Title)
	require.NotNil(t, p.Bedrooms)
	assert.Equal(t, 4, *p.Bedrooms)
	require.NotNil(t, p.Location)
	assert.Equal(t, 5.0, p.Location.Latitude)
	assert.Nil(t, p.Description)
	assert.Nil(t, p.Area)
	assert.Nil(t, p.YearBuilt)
	assert.Nil(t, p.Amenities)
}

func TestFromProtoPatch_Amenities(t *testing.T) {
	t.Parallel()

	p := FromProtoPatch(&pb.UpdateDetailsRequest{Amenities: []string{"pool"}})
	assert.Equal(t, []string{"pool"}, p.Amenities)

	p = FromProtoPatch(&pb.UpdateDetailsRequest{ReplaceAmenities: true})
	require.NotNil(t, p.Amenities)
	assert.Empty(t, p.Amenities)
}

func TestFromProtoFilter(t *testing.T) {
	t.Parallel()

	f, err := FromProtoFilter(&pb.ListPropertiesRequest{
		Status: "listed", Tokenized: proto.Bool(true), Owner: propID, Offset: 2, Limit: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusListed, f.Status)
	require.NotNil(t, f.Tokenized)
	assert.True(t, *f.Tokenized)
	assert.Equal(t, 2, f.Offset)
	assert.Equal(t, 5, f.Limit)
	assert.Equal(t, u.Must(u.FromString(propID)), f.Owner)

	f, err = FromProtoFilter(&pb.ListPropertiesRequest{})
	require.NoError(t, err)
	assert.Nil(t, f.Tokenized)

	_, err = FromProtoFilter(&pb.ListPropertiesRequest{Owner: "bad"})
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestFromProtoListForSale_RequiresPrice(t *testing.T) {
	t.Parallel()

	_, err := FromProtoListForSale(&pb.ListForSaleRequest{Id: propID})
	require.ErrorIs(t, err, errs.ErrValidation)

	got, err := FromProtoListForSale(&pb.ListForSaleRequest{Id: propID, Price: "300000", TransactionHash: "0xaa"})
	require.NoError(t, err)
	assert.Equal(t, "300000", got.Price.String())
	assert.Equal(t, "0xaa", got.TransactionHash)
}

func TestFromProtoTransfer(t *testing.T) {
	t.Parallel()

	_, err := FromProtoTransfer(&pb.TransferRequest{Price: "1"})
	require.ErrorIs(t, err, errs.ErrValidation)

	_, err = FromProtoTransfer(&pb.TransferRequest{NewOwner: propID})
	require.ErrorIs(t, err, errs.ErrValidation, "empty price must be rejected")

	got, err := FromProtoTransfer(&pb.TransferRequest{NewOwner: propID, Price: "42.5", TransactionHash: "0xabc"})
	require.NoError(t, err)
	assert.Equal(t, "0xabc", got.TransactionHash)
	assert.Equal(t, "42.5", got.Price.String())
}

func TestFromProtoBid(t *testing.T) {
	t.Parallel()

	_, err := FromProtoBid(&pb.PlaceBidRequest{})
	require.ErrorIs(t, err, errs.ErrValidation)

	got, err := FromProtoBid(&pb.PlaceBidRequest{Amount: "150"})
	require.NoError(t, err)
	assert.Equal(t, "150", got.Amount.String())
}

func TestToProtoProperty(t *testing.T) {
	t.Parallel()

	id := u.Must(u.FromString(propID))
	owner := u.Must(u.FromString(ownerID))
	buyer := u.Must(u.FromString(buyerID))
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	end := now.Add(time.Hour)

	p := model.Property{
		ID:               id,
		Owner:            owner,
		Details:          model.Details{Title: "Loft", PropertyType: model.TypeLand, YearBuilt: 1990},
		Status:           model.StatusSold,
		Price:            decimal.RequireFromString("900.25"),
		MinimumBid:       decimal.NewNullDecimal(decimal.NewFromInt(5)),
		IsAuctionEnabled: true,
		AuctionEndTime:   &end,
		NFTMetadata: &model.NFTMetadata{
			Name: "Loft",
			Attributes: []model.NFTAttribute{
				{TraitType: "Area", Value: 10.0},
				{TraitType: "Bedrooms", Value: 2},
				{TraitType: "Year Built", Value: "N/A"},
			},
		},
		History: []model.Event{{
			ID:       "01J",
			Type:     model.EventTransfer,
			Price:    decimal.NewFromInt(900),
			Date:     now,
			From:     owner,
			To:       u.NullUUID{UUID: buyer, Valid: true},
			Metadata: map[string]string{model.MetaNetwork: "sepolia"},
		}},
		Favorites: []u.UUID{buyer},
		Version:   4,
		CreatedAt: now,
	}

	w := ToProtoProperty(p)
	assert.Equal(t, propID, w.GetId())
	assert.Equal(t, ownerID, w.GetOwner())
	assert.Equal(t, "sold", w.GetStatus())
	assert.Equal(t, "900.25", w.GetPrice())
	assert.Equal(t, "5", w.GetAuction().GetMinimumBid())
	assert.Equal(t, "0", w.GetCurrentBid())
	assert.True(t, w.GetAuction().GetEndTime().AsTime().Equal(end))
	assert.Equal(t, int32(1990), w.GetDetails().GetYearBuilt())

	require.Len(t, w.GetHistory(), 1)
	ev := w.GetHistory()[0]
	assert.Equal(t, buyerID, ev.GetTo())
	assert.Equal(t, "transfer", ev.GetType())
	assert.True(t, ev.GetDate().AsTime().Equal(now))
	assert.Equal(t, "sepolia", ev.GetMetadata()[model.MetaNetwork])

	attrs := w.GetNftMetadata().GetAttributes()
	require.Len(t, attrs, 3)
	assert.Equal(t, 10.0, attrs[0].GetValue().GetNumberValue())
	assert.Equal(t, 2.0, attrs[1].GetValue().GetNumberValue())
	assert.Equal(t, "N/A", attrs[2].GetValue().GetStringValue())

	assert.Equal(t, []string{buyerID}, w.GetFavorites())
	assert.Equal(t, int64(4), w.GetVersion())
	assert.True(t, w.GetCreatedAt().AsTime().Equal(now))
	assert.Nil(t, w.GetUpdatedAt(), "zero time maps to an unset timestamp")

	_, err := ToProtoPropertyResponse(nil)
	require.Error(t, err)
}

func TestToProtoEvent_NoCounterparty(t *testing.T) {
	t.Parallel()

	e := ToProtoEvent(model.Event{ID: "x", Type: model.EventList, Price: decimal.NewFromInt(3)})
	assert.Empty(t, e.GetTo())
	assert.Empty(t, e.GetFrom())
	assert.Equal(t, "3", e.GetPrice())
	assert.Nil(t, e.GetDate())
}

func TestToProtoProperty_WireRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	w := ToProtoProperty(model.Property{
		ID:        u.Must(u.FromString(propID)),
		Owner:     u.Must(u.FromString(ownerID)),
		Details:   model.Details{Title: "Loft", Amenities: []string{"pool"}},
		Price:     decimal.RequireFromString("1.10"),
		CreatedAt: now,
	})
	b, err := proto.Marshal(w)
	require.NoError(t, err)

	var back pb.Property
	require.NoError(t, proto.Unmarshal(b, &back))
	assert.True(t, proto.Equal(w, &back))
	assert.Equal(t, "1.1", back.GetPrice())
}

