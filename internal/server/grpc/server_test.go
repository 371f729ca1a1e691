package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
	"github.com/and161185/propledger/internal/lifecycle"
	"github.com/and161185/propledger/internal/repository/memory"
	"github.com/and161185/propledger/internal/service"
)

const bufSize = 1 << 20

var testKey = []byte("test-secret")

func newTestServer(t *testing.T) *Server {
	t.Helper()
	svc := service.NewPropertyService(service.Deps{
		Repo:    memory.New(),
		Machine: lifecycle.New(lifecycle.Config{FrontendURL: "https://estate.example"}),
		Log:     zaptest.NewLogger(t),
	})
	return New(svc, testKey, zaptest.NewLogger(t))
}

func startBufGRPC(t *testing.T, srv *Server) (pb.PropertyServiceClient, func()) {
	t.Helper()
	log := zaptest.NewLogger(t)
	lis := bufconn.Listen(bufSize)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(
		RecoverUnary(log),
		srv.AuthUnary(),
		LoggingUnary(log),
	))
	pb.RegisterPropertyServiceServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	stop := func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() }
	return pb.NewPropertyServiceClient(cc), stop
}

/************ helpers ************/
func jwtFor(t *testing.T, sub string, key []byte, ttl time.Duration) string {
	t.Helper()
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now.Add(-5 * time.Second)),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl + 5*time.Second)),
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign jwt: %v", err)
	}
	return s
}

// as returns an outgoing context authenticated as user.
func as(t *testing.T, user uuid.UUID) context.Context {
	t.Helper()
	return metadata.AppendToOutgoingContext(context.Background(),
		"authorization", "Bearer "+jwtFor(t, user.String(), testKey, time.Hour))
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if st, ok := status.FromError(err); !ok || st.Code() != code {
		t.Fatalf("want %s, got %v", code, err)
	}
}

func createProperty(t *testing.T, cl pb.PropertyServiceClient, owner uuid.UUID) *pb.Property {
	t.Helper()
	resp, err := cl.CreateProperty(as(t, owner), &pb.CreatePropertyRequest{
		Details: &pb.Details{Title: "Loft", PropertyType: "residential", Bedrooms: 2},
		Price:   "500",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return resp.Property
}

func tokenizeReq(id string, base int64) *pb.TokenizeRequest {
	return &pb.TokenizeRequest{
		Id:              id,
		BaseVersion:     base,
		TokenId:         "7",
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		TokenUri:        "ipfs://meta/7",
		TransactionHash: "0xabc",
	}
}

func TestServer_E2E_BasicFlow(t *testing.T) {
	t.Parallel()

	cl, stop := startBufGRPC(t, newTestServer(t))
	defer stop()

	owner := uuid.Must(uuid.NewV4())
	bidder := uuid.Must(uuid.NewV4())
	buyer := uuid.Must(uuid.NewV4())

	p := createProperty(t, cl, owner)
	if p.Status != "pending" || p.Version != 1 || len(p.History) != 0 || p.Owner != owner.String() {
		t.Fatalf("bad created property: %+v", p)
	}

	tok, err := cl.Tokenize(as(t, owner), tokenizeReq(p.Id, p.Version))
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if !tok.Property.IsTokenized || tok.Property.NftMetadata == nil {
		t.Fatalf("want tokenized with nft metadata: %+v", tok.Property)
	}
	if want := "https://estate.example/properties/" + p.Id; tok.Property.NftMetadata.ExternalUrl != want {
		t.Fatalf("external url: got %s want %s", tok.Property.NftMetadata.ExternalUrl, want)
	}

	if _, err := cl.ListForSale(as(t, owner), &pb.ListForSaleRequest{Id: p.Id, Price: "900"}); err != nil {
		t.Fatalf("list: %v", err)
	}

	end := time.Now().Add(time.Hour)
	if _, err := cl.ConfigureAuction(as(t, owner), &pb.ConfigureAuctionRequest{
		Id: p.Id, Auction: &pb.Auction{Enabled: true, MinimumBid: "100", EndTime: timestamppb.New(end)},
	}); err != nil {
		t.Fatalf("configure auction: %v", err)
	}
	bid, err := cl.PlaceBid(as(t, bidder), &pb.PlaceBidRequest{Id: p.Id, Amount: "150"})
	if err != nil || bid.Property.CurrentBid != "150" {
		t.Fatalf("bid: %v %+v", err, bid)
	}

	_, err = cl.Transfer(as(t, owner), &pb.TransferRequest{Id: p.Id, NewOwner: buyer.String(), Price: "150"})
	wantCode(t, err, codes.FailedPrecondition)

	if _, err := cl.ConfigureAuction(as(t, owner), &pb.ConfigureAuctionRequest{Id: p.Id}); err != nil {
		t.Fatalf("close auction: %v", err)
	}
	tr, err := cl.Transfer(as(t, owner), &pb.TransferRequest{Id: p.Id, NewOwner: buyer.String(), Price: "150"})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if tr.Property.Owner != buyer.String() || tr.Property.Status != "sold" {
		t.Fatalf("want sold to buyer: %+v", tr.Property)
	}

	// anonymous reads
	got, err := cl.GetProperty(context.Background(), &pb.GetPropertyRequest{Id: p.Id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	types := []string{}
	for _, ev := range got.Property.History {
		types = append(types, ev.Type)
	}
	want := []string{"tokenize", "list", "bid", "transfer"}
	if len(types) != len(want) {
		t.Fatalf("history types: got %v want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("history types: got %v want %v", types, want)
		}
	}
	last := got.Property.History[len(got.Property.History)-1]
	if last.To != buyer.String() || last.Metadata["previousOwner"] != owner.String() {
		t.Fatalf("transfer provenance: %+v", last)
	}
	if last.Metadata["tokenId"] != "7" || last.Metadata["contractAddress"] != "0x5FbDB2315678afecb367f032d93F642f64180aa3" {
		t.Fatalf("transfer must carry token identity: %+v", last.Metadata)
	}

	h, err := cl.GetHistory(context.Background(), &pb.GetHistoryRequest{Id: p.Id, Type: "bid"})
	if err != nil || len(h.Events) != 1 || h.Events[0].From != bidder.String() {
		t.Fatalf("history by type: %v %+v", err, h)
	}
}

func TestServer_ErrorMapping(t *testing.T) {
	t.Parallel()

	cl, stop := startBufGRPC(t, newTestServer(t))
	defer stop()

	owner := uuid.Must(uuid.NewV4())
	p := createProperty(t, cl, owner)

	_, err := cl.CreateProperty(context.Background(), &pb.CreatePropertyRequest{})
	wantCode(t, err, codes.Unauthenticated)

	bad := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer not-a-jwt")
	_, err = cl.GetProperty(bad, &pb.GetPropertyRequest{Id: p.Id})
	wantCode(t, err, codes.Unauthenticated)

	_, err = cl.GetProperty(context.Background(), &pb.GetPropertyRequest{Id: "nope"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = cl.GetProperty(context.Background(), &pb.GetPropertyRequest{Id: uuid.Must(uuid.NewV4()).String()})
	wantCode(t, err, codes.NotFound)

	_, err = cl.Tokenize(as(t, uuid.Must(uuid.NewV4())), tokenizeReq(p.Id, 0))
	wantCode(t, err, codes.PermissionDenied)

	_, err = cl.ListForSale(as(t, owner), &pb.ListForSaleRequest{Id: p.Id, Price: "1"})
	wantCode(t, err, codes.FailedPrecondition)

	_, err = cl.Tokenize(as(t, owner), tokenizeReq(p.Id, p.Version+5))
	wantCode(t, err, codes.Aborted)

	_, err = cl.CreateProperty(as(t, owner), &pb.CreatePropertyRequest{
		Details: &pb.Details{Title: "x", PropertyType: "castle"},
	})
	wantCode(t, err, codes.InvalidArgument)

	_, err = cl.AttachMedia(as(t, owner), &pb.AttachMediaRequest{Id: p.Id, Kind: "video"})
	wantCode(t, err, codes.InvalidArgument)

	_, err = cl.PlaceBid(as(t, owner), &pb.PlaceBidRequest{Id: p.Id, Amount: "10"})
	wantCode(t, err, codes.PermissionDenied)
}

func TestServer_ListAndCounters(t *testing.T) {
	t.Parallel()

	cl, stop := startBufGRPC(t, newTestServer(t))
	defer stop()

	alice := uuid.Must(uuid.NewV4())
	bob := uuid.Must(uuid.NewV4())
	a1 := createProperty(t, cl, alice)
	createProperty(t, cl, alice)
	createProperty(t, cl, bob)

	if _, err := cl.Tokenize(as(t, alice), tokenizeReq(a1.Id, 0)); err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	mine, err := cl.ListProperties(as(t, alice), &pb.ListPropertiesRequest{Mine: true})
	if err != nil || len(mine.Properties) != 2 {
		t.Fatalf("mine: %v %d", err, len(mine.Properties))
	}
	_, err = cl.ListProperties(context.Background(), &pb.ListPropertiesRequest{Mine: true})
	wantCode(t, err, codes.Unauthenticated)

	tk, err := cl.ListProperties(context.Background(), &pb.ListPropertiesRequest{Tokenized: proto.Bool(true)})
	if err != nil || len(tk.Properties) != 1 || tk.Properties[0].Id != a1.Id {
		t.Fatalf("tokenized filter: %v %+v", err, tk)
	}

	v, err := cl.RecordView(context.Background(), &pb.RecordViewRequest{Id: a1.Id})
	if err != nil || v.Views != 1 {
		t.Fatalf("view: %v %+v", err, v)
	}
	f, err := cl.ToggleFavorite(as(t, bob), &pb.ToggleFavoriteRequest{Id: a1.Id})
	if err != nil || !f.Favorited {
		t.Fatalf("favorite: %v %+v", err, f)
	}
	_, err = cl.ToggleFavorite(context.Background(), &pb.ToggleFavoriteRequest{Id: a1.Id})
	wantCode(t, err, codes.Unauthenticated)

	got, err := cl.GetProperty(context.Background(), &pb.GetPropertyRequest{Id: a1.Id})
	if err != nil || got.Property.Views != 1 || len(got.Property.Favorites) != 1 || got.Property.Version != 2 {
		t.Fatalf("counters: %v %+v", err, got)
	}
}

func TestServer_UpdateDetails(t *testing.T) {
	t.Parallel()

	cl, stop := startBufGRPC(t, newTestServer(t))
	defer stop()

	owner := uuid.Must(uuid.NewV4())
	p := createProperty(t, cl, owner)

	out, err := cl.UpdateDetails(as(t, owner), &pb.UpdateDetailsRequest{Id: p.Id, BaseVersion: p.Version, Title: proto.String("Penthouse")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if out.Property.Details.Title != "Penthouse" || out.Property.Details.Bedrooms != 2 {
		t.Fatalf("patch mismatch: %+v", out.Property.Details)
	}
	if out.Property.Version != p.Version+1 || len(out.Property.History) != 0 || out.Property.Status != "pending" {
		t.Fatalf("amendment must bump version only: %+v", out.Property)
	}
}

func TestServer_AttachMedia_NotConfigured(t *testing.T) {
	t.Parallel()

	cl, stop := startBufGRPC(t, newTestServer(t))
	defer stop()

	owner := uuid.Must(uuid.NewV4())
	p := createProperty(t, cl, owner)

	_, err := cl.AttachMedia(as(t, owner), &pb.AttachMediaRequest{
		Id: p.Id, Kind: "image", Files: []*pb.MediaFile{{Name: "a.png", Data: []byte{1}}},
	})
	wantCode(t, err, codes.InvalidArgument)
}

func TestServer_PriceRequired(t *testing.T) {
	t.Parallel()

	cl, stop := startBufGRPC(t, newTestServer(t))
	defer stop()

	owner := uuid.Must(uuid.NewV4())
	buyer := uuid.Must(uuid.NewV4())
	p := createProperty(t, cl, owner)
	if _, err := cl.Tokenize(as(t, owner), tokenizeReq(p.Id, 0)); err != nil {
		t.Fatalf("tokenize: %v", err)
	}

	_, err := cl.ListForSale(as(t, owner), &pb.ListForSaleRequest{Id: p.Id})
	wantCode(t, err, codes.InvalidArgument)

	_, err = cl.Transfer(as(t, owner), &pb.TransferRequest{Id: p.Id, NewOwner: buyer.String()})
	wantCode(t, err, codes.InvalidArgument)

	got, err := cl.GetProperty(context.Background(), &pb.GetPropertyRequest{Id: p.Id})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Property.Status != "tokenized" || got.Property.Owner != owner.String() || len(got.Property.History) != 1 {
		t.Fatalf("rejected requests must not change state: %+v", got.Property)
	}

	// zero is an explicit price
	if _, err := cl.ListForSale(as(t, owner), &pb.ListForSaleRequest{Id: p.Id, Price: "0"}); err != nil {
		t.Fatalf("list at zero: %v", err)
	}
}

func TestServiceDescriptor_MatchesServer(t *testing.T) {
	t.Parallel()

	sd := pb.File_propledger_v1_property_proto.Services().ByName("PropertyService")
	if sd == nil {
		t.Fatalf("PropertyService missing from descriptor")
	}
	if got, want := sd.Methods().Len(), len(pb.PropertyService_ServiceDesc.Methods); got != want {
		t.Fatalf("descriptor has %d methods, service desc has %d", got, want)
	}
	for _, m := range pb.PropertyService_ServiceDesc.Methods {
		if sd.Methods().ByName(protoreflect.Name(m.MethodName)) == nil {
			t.Fatalf("method %s missing from descriptor", m.MethodName)
		}
	}
	if fd := (&pb.UpdateDetailsRequest{}).ProtoReflect().Descriptor().Fields().ByName("title"); fd == nil || !fd.HasPresence() {
		t.Fatalf("update title must track presence")
	}
}
