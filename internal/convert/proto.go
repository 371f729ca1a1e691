// Package convert maps between protobuf messages and domain types.
package convert

import (
	"fmt"
	"time"

	u "github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/lifecycle"
	"github.com/and161185/propledger/internal/media"
	model "github.com/and161185/propledger/internal/model"
)

// Media kinds accepted on the wire.
const (
	MediaImage    = "image"
	MediaDocument = "document"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func tsPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return ts(*t)
}

func fromTS(t *timestamppb.Timestamp) *time.Time {
	if t == nil {
		return nil
	}
	v := t.AsTime()
	return &v
}

// ParseID parses a required uuid field.
func ParseID(field, s string) (u.UUID, error) {
	if s == "" {
		return u.Nil, errs.Validation("empty %s", field)
	}
	id, err := u.FromString(s)
	if err != nil {
		return u.Nil, errs.Validation("invalid %s: %v", field, err)
	}
	return id, nil
}

// ParseMoney parses an optional decimal string; empty means zero.
func ParseMoney(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, errs.Validation("invalid %s %q", field, s)
	}
	return d, nil
}

// ParseRequiredMoney parses a decimal string that must be present.
func ParseRequiredMoney(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, errs.Validation("empty %s", field)
	}
	return ParseMoney(field, s)
}

func idOrEmpty(id u.UUID) string {
	if id == u.Nil {
		return ""
	}
	return id.String()
}

// --- client -> server ---

// FromProtoDetails converts descriptive fields.
func FromProtoDetails(d *pb.Details) model.Details {
	return model.Details{
		Title:        d.GetTitle(),
		Description:  d.GetDescription(),
		Address:      d.GetAddress(),
		PropertyType: d.GetPropertyType(),
		Location: model.Location{
			Longitude: d.GetLocation().GetLongitude(),
			Latitude:  d.GetLocation().GetLatitude(),
		},
		Area:      d.GetArea(),
		Bedrooms:  int(d.GetBedrooms()),
		Bathrooms: int(d.GetBathrooms()),
		YearBuilt: int(d.GetYearBuilt()),
		Amenities: d.GetAmenities(),
	}
}

// FromProtoAuction converts auction settings; nil means auction disabled.
func FromProtoAuction(a *pb.Auction) (lifecycle.AuctionSettings, error) {
	out := lifecycle.AuctionSettings{Enabled: a.GetEnabled(), EndTime: fromTS(a.GetEndTime())}
	if a.GetMinimumBid() != "" {
		d, err := ParseMoney("minimum_bid", a.GetMinimumBid())
		if err != nil {
			return lifecycle.AuctionSettings{}, err
		}
		out.MinimumBid = decimal.NewNullDecimal(d)
	}
	return out, nil
}

// FromProtoCreate converts a create request; media bytes are returned separately.
func FromProtoCreate(in *pb.CreatePropertyRequest) (lifecycle.CreateInput, error) {
	if in == nil {
		return lifecycle.CreateInput{}, errs.Validation("nil request")
	}
	price, err := ParseMoney("price", in.GetPrice())
	if err != nil {
		return lifecycle.CreateInput{}, err
	}
	auction, err := FromProtoAuction(in.GetAuction())
	if err != nil {
		return lifecycle.CreateInput{}, err
	}
	return lifecycle.CreateInput{
		Details: FromProtoDetails(in.GetDetails()),
		Price:   price,
		Auction: auction,
	}, nil
}

// FromProtoFiles converts uploaded files.
func FromProtoFiles(in []*pb.MediaFile) []media.File {
	out := make([]media.File, 0, len(in))
	for _, f := range in {
		out = append(out, media.File{Name: f.GetName(), Data: f.GetData()})
	}
	return out
}

// FromProtoMediaKind validates a media kind.
func FromProtoMediaKind(kind string) (lifecycle.MediaKind, error) {
	switch kind {
	case MediaImage:
		return lifecycle.MediaImage, nil
	case MediaDocument:
		return lifecycle.MediaDocument, nil
	default:
		return "", errs.Validation("unknown media kind %q", kind)
	}
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	i := int(*v)
	return &i
}

// FromProtoPatch converts a details patch. Unset optional fields stay nil.
func FromProtoPatch(in *pb.UpdateDetailsRequest) lifecycle.DetailsPatch {
	p := lifecycle.DetailsPatch{
		Title:        in.Title,
		Description:  in.Description,
		Address:      in.Address,
		PropertyType: in.PropertyType,
		Area:         in.Area,
		Bedrooms:     intPtr(in.Bedrooms),
		Bathrooms:    intPtr(in.Bathrooms),
		YearBuilt:    intPtr(in.YearBuilt),
	}
	if loc := in.GetLocation(); loc != nil {
		p.Location = &model.Location{Longitude: loc.GetLongitude(), Latitude: loc.GetLatitude()}
	}
	switch {
	case in.GetReplaceAmenities():
		p.Amenities = append([]string{}, in.GetAmenities()...)
	case len(in.GetAmenities()) > 0:
		p.Amenities = in.GetAmenities()
	}
	return p
}

// FromProtoFilter converts listing filters. Mine is resolved by the caller.
func FromProtoFilter(in *pb.ListPropertiesRequest) (model.Filter, error) {
	f := model.Filter{
		Status:       model.Status(in.GetStatus()),
		PropertyType: in.GetPropertyType(),
		Tokenized:    in.Tokenized,
		Offset:       int(in.GetOffset()),
		Limit:        int(in.GetLimit()),
	}
	if in.GetOwner() != "" {
		owner, err := ParseID("owner", in.GetOwner())
		if err != nil {
			return model.Filter{}, err
		}
		f.Owner = owner
	}
	return f, nil
}

// FromProtoHistoryQuery converts history paging.
func FromProtoHistoryQuery(in *pb.GetHistoryRequest) model.HistoryQuery {
	return model.HistoryQuery{
		Type:   model.EventType(in.GetType()),
		Offset: int(in.GetOffset()),
		Limit:  int(in.GetLimit()),
	}
}

// FromProtoListForSale converts a listing request. The asking price is required.
func FromProtoListForSale(in *pb.ListForSaleRequest) (lifecycle.ListInput, error) {
	price, err := ParseRequiredMoney("price", in.GetPrice())
	if err != nil {
		return lifecycle.ListInput{}, err
	}
	return lifecycle.ListInput{Price: price, TransactionHash: in.GetTransactionHash()}, nil
}

// FromProtoTransfer converts a transfer request. The sale price is required.
func FromProtoTransfer(in *pb.TransferRequest) (lifecycle.TransferInput, error) {
	to, err := ParseID("new_owner", in.GetNewOwner())
	if err != nil {
		return lifecycle.TransferInput{}, err
	}
	price, err := ParseRequiredMoney("price", in.GetPrice())
	if err != nil {
		return lifecycle.TransferInput{}, err
	}
	return lifecycle.TransferInput{To: to, Price: price, TransactionHash: in.GetTransactionHash()}, nil
}

// FromProtoBid converts a bid request.
func FromProtoBid(in *pb.PlaceBidRequest) (lifecycle.BidInput, error) {
	amount, err := ParseRequiredMoney("amount", in.GetAmount())
	if err != nil {
		return lifecycle.BidInput{}, err
	}
	return lifecycle.BidInput{Amount: amount, TransactionHash: in.GetTransactionHash()}, nil
}

// --- server -> client ---

// ToProtoEvent converts a ledger entry.
func ToProtoEvent(e model.Event) *pb.Event {
	out := &pb.Event{
		Id:              e.ID,
		Type:            string(e.Type),
		Price:           e.Price.String(),
		Date:            ts(e.Date),
		TransactionHash: e.TransactionHash,
		From:            idOrEmpty(e.From),
		Metadata:        e.Metadata,
	}
	if e.To.Valid {
		out.To = e.To.UUID.String()
	}
	return out
}

// ToProtoEvents converts ledger entries preserving order.
func ToProtoEvents(es []model.Event) []*pb.Event {
	out := make([]*pb.Event, 0, len(es))
	for _, e := range es {
		out = append(out, ToProtoEvent(e))
	}
	return out
}

func toProtoValue(v any) *structpb.Value {
	pv, err := structpb.NewValue(v)
	if err != nil {
		return structpb.NewStringValue(fmt.Sprint(v))
	}
	return pv
}

func toProtoNFT(m *model.NFTMetadata) *pb.NFTMetadata {
	if m == nil {
		return nil
	}
	attrs := make([]*pb.NFTAttribute, 0, len(m.Attributes))
	for _, a := range m.Attributes {
		attrs = append(attrs, &pb.NFTAttribute{TraitType: a.TraitType, Value: toProtoValue(a.Value)})
	}
	return &pb.NFTMetadata{
		Name:        m.Name,
		Description: m.Description,
		Image:       m.Image,
		Attributes:  attrs,
		ExternalUrl: m.ExternalURL,
	}
}

// ToProtoProperty converts a property snapshot.
func ToProtoProperty(p model.Property) *pb.Property {
	favs := make([]string, 0, len(p.Favorites))
	for _, f := range p.Favorites {
		favs = append(favs, f.String())
	}
	auction := &pb.Auction{Enabled: p.IsAuctionEnabled, EndTime: tsPtr(p.AuctionEndTime)}
	if p.MinimumBid.Valid {
		auction.MinimumBid = p.MinimumBid.Decimal.String()
	}
	return &pb.Property{
		Id:    p.ID.String(),
		Owner: p.Owner.String(),
		Details: &pb.Details{
			Title:        p.Title,
			Description:  p.Description,
			Address:      p.Address,
			PropertyType: p.PropertyType,
			Location:     &pb.Location{Longitude: p.Location.Longitude, Latitude: p.Location.Latitude},
			Area:         p.Area,
			Bedrooms:     int32(p.Bedrooms),
			Bathrooms:    int32(p.Bathrooms),
			YearBuilt:    int32(p.YearBuilt),
			Amenities:    p.Amenities,
		},
		Images:          p.Images,
		Documents:       p.Documents,
		Status:          string(p.Status),
		Price:           p.Price.String(),
		Auction:         auction,
		CurrentBid:      p.CurrentBid.String(),
		IsTokenized:     p.IsTokenized,
		TokenId:         p.TokenID,
		ContractAddress: p.ContractAddress,
		TokenUri:        p.TokenURI,
		NftMetadata:     toProtoNFT(p.NFTMetadata),
		History:         ToProtoEvents(p.History),
		Favorites:       favs,
		Views:           p.Views,
		Version:         p.Version,
		CreatedAt:       ts(p.CreatedAt),
		UpdatedAt:       ts(p.UpdatedAt),
	}
}

// ToProtoProperties converts a listing.
func ToProtoProperties(ps []model.Property) []*pb.Property {
	out := make([]*pb.Property, 0, len(ps))
	for _, p := range ps {
		out = append(out, ToProtoProperty(p))
	}
	return out
}

// ToProtoPropertyResponse wraps a snapshot.
func ToProtoPropertyResponse(p *model.Property) (*pb.PropertyResponse, error) {
	if p == nil {
		return nil, fmt.Errorf("nil property")
	}
	return &pb.PropertyResponse{Property: ToProtoProperty(*p)}, nil
}
