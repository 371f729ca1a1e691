package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	u "github.com/gofrs/uuid/v5"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/encoding/protojson"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
	"github.com/and161185/propledger/internal/lifecycle"
	"github.com/and161185/propledger/internal/repository/memory"
	grpcserver "github.com/and161185/propledger/internal/server/grpc"
	"github.com/and161185/propledger/internal/service"
)

var cliKey = []byte("cli-test-key")

const contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"

func startServer(t *testing.T) pb.PropertyServiceClient {
	t.Helper()
	log := zaptest.NewLogger(t)
	svc := service.NewPropertyService(service.Deps{
		Repo:    memory.New(),
		Machine: lifecycle.New(lifecycle.Config{FrontendURL: "https://estate.example"}),
		Log:     log,
	})
	srv := grpcserver.New(svc, cliKey, log)

	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer(grpc.ChainUnaryInterceptor(srv.AuthUnary()))
	pb.RegisterPropertyServiceServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(context.Background(), "bufnet",
		grpc.WithContextDialer(dialer), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = cc.Close(); gs.Stop(); _ = lis.Close() })
	return pb.NewPropertyServiceClient(cc)
}

func userCtx(t *testing.T, user u.UUID) context.Context {
	t.Helper()
	tok, _, err := mintToken(cliKey, user.String(), time.Hour)
	if err != nil {
		t.Fatalf("mintToken: %v", err)
	}
	return metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+tok)
}

func run(t *testing.T, ctx context.Context, cli pb.PropertyServiceClient, name string, args ...string) (string, error) {
	t.Helper()
	c, ok := findCommand(name)
	if !ok {
		t.Fatalf("no command %q", name)
	}
	var out bytes.Buffer
	err := c.run(ctx, cli, args, &out)
	return out.String(), err
}

func mustProperty(t *testing.T, out string) *pb.Property {
	t.Helper()
	var p pb.Property
	if err := protojson.Unmarshal([]byte(out), &p); err != nil {
		t.Fatalf("decode property: %v\n%s", err, out)
	}
	return &p
}

func TestCommands_Lifecycle(t *testing.T) {
	cli := startServer(t)
	owner, buyer := u.Must(u.NewV4()), u.Must(u.NewV4())
	ownerCtx, buyerCtx := userCtx(t, owner), userCtx(t, buyer)

	out, err := run(t, ownerCtx, cli, "create",
		"-title", "Loft", "-type", "residential", "-price", "250000", "-amenities", "pool, gym")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p := mustProperty(t, out)
	if p.Owner != owner.String() || p.Status != "pending" || len(p.Details.Amenities) != 2 {
		t.Fatalf("created: %+v", p)
	}

	out, err = run(t, ownerCtx, cli, "update", "-id", p.Id, "-bedrooms", "3")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	upd := mustProperty(t, out)
	if upd.Details.Bedrooms != 3 || upd.Details.Title != "Loft" {
		t.Fatalf("only -bedrooms should change: %+v", upd.Details)
	}

	if _, err := run(t, ownerCtx, cli, "tokenize",
		"-id", p.Id, "-token-id", "7", "-contract", contract, "-uri", "ipfs://x", "-tx", "0xaa"); err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if _, err := run(t, ownerCtx, cli, "sell", "-id", p.Id); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("sell without -price: want InvalidArgument, got %v", err)
	}
	if _, err := run(t, ownerCtx, cli, "sell", "-id", p.Id, "-price", "300000"); err != nil {
		t.Fatalf("sell: %v", err)
	}

	out, err = run(t, ownerCtx, cli, "transfer", "-id", p.Id, "-to", buyer.String(), "-price", "300000")
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	sold := mustProperty(t, out)
	if sold.Owner != buyer.String() {
		t.Fatalf("owner after transfer: %s", sold.Owner)
	}

	out, err = run(t, buyerCtx, cli, "history", "-id", p.Id)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	var hist pb.GetHistoryResponse
	if err := protojson.Unmarshal([]byte(out), &hist); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(hist.Events) != 3 {
		t.Fatalf("history: want tokenize, list, transfer; got %d", len(hist.Events))
	}
	last := hist.Events[2]
	if last.Metadata["tokenId"] != "7" || last.Metadata["contractAddress"] != contract {
		t.Fatalf("transfer metadata: %v", last.Metadata)
	}

	out, err = run(t, buyerCtx, cli, "list", "-mine")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, p.Id) {
		t.Fatalf("buyer listing missing property: %s", out)
	}
}

func TestCommands_BidViewFav(t *testing.T) {
	cli := startServer(t)
	owner, bidder := u.Must(u.NewV4()), u.Must(u.NewV4())
	ownerCtx, bidderCtx := userCtx(t, owner), userCtx(t, bidder)

	end := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	out, err := run(t, ownerCtx, cli, "create",
		"-title", "Shop", "-type", "commercial", "-auction", "-min-bid", "100", "-end", end)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p := mustProperty(t, out)

	_, err = run(t, bidderCtx, cli, "bid", "-id", p.Id, "-amount", "50")
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("below minimum: want FailedPrecondition, got %v", err)
	}
	out, err = run(t, bidderCtx, cli, "bid", "-id", p.Id, "-amount", "150")
	if err != nil {
		t.Fatalf("bid: %v", err)
	}
	if got := mustProperty(t, out).CurrentBid; got != "150" {
		t.Fatalf("current bid: %s", got)
	}

	out, err = run(t, context.Background(), cli, "view", "-id", p.Id)
	if err != nil || strings.TrimSpace(out) != "1" {
		t.Fatalf("view: %q %v", out, err)
	}

	out, err = run(t, bidderCtx, cli, "fav", "-id", p.Id)
	if err != nil || strings.TrimSpace(out) != "true" {
		t.Fatalf("fav: %q %v", out, err)
	}
	_, err = run(t, context.Background(), cli, "fav", "-id", p.Id)
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("anonymous fav: want Unauthenticated, got %v", err)
	}
}

func TestCommands_FlagErrors(t *testing.T) {
	cli := startServer(t)
	ctx := userCtx(t, u.Must(u.NewV4()))

	for _, name := range []string{"get", "history", "update", "tokenize", "sell", "unlist", "transfer", "bid", "view", "fav", "detach", "auction"} {
		if _, err := run(t, ctx, cli, name); err == nil || !strings.Contains(err.Error(), "-id") {
			t.Fatalf("%s without -id: %v", name, err)
		}
	}
	if _, err := run(t, ctx, cli, "attach", "-id", "x"); err == nil {
		t.Fatalf("attach without -file should fail")
	}
	if _, err := run(t, ctx, cli, "list", "-tokenized", "maybe"); err == nil {
		t.Fatalf("bad -tokenized should fail")
	}
	if _, err := run(t, ctx, cli, "create", "-title", "x", "-end", "tomorrow"); err == nil {
		t.Fatalf("bad -end should fail")
	}
	if _, err := run(t, ctx, cli, "create", "-title", "x", "-image", filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatalf("missing image should fail")
	}
}

func Test_loadFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := filepath.Join(dir, "deed.pdf")
	_ = os.WriteFile(p, []byte("%PDF-1.4"), 0o600)

	files, err := loadFiles([]string{p})
	if err != nil {
		t.Fatalf("loadFiles: %v", err)
	}
	if len(files) != 1 || files[0].GetName() != "deed.pdf" || string(files[0].GetData()) != "%PDF-1.4" {
		t.Fatalf("files: %+v", files)
	}
}

func Test_splitList(t *testing.T) {
	t.Parallel()

	if splitList("") != nil {
		t.Fatalf("empty should be nil")
	}
	got := splitList(" pool , ,gym")
	if len(got) != 2 || got[0] != "pool" || got[1] != "gym" {
		t.Fatalf("splitList: %q", got)
	}
}
