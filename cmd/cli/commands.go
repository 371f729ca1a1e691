package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
	"github.com/and161185/propledger/internal/convert"
)

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error
}

var commands = []command{
	{"create", "-title T -type residential|commercial|land [-price P] [-image f]... [-doc f]... [-auction -min-bid B -end RFC3339]", cmdCreate},
	{"get", "-id <uuid>", cmdGet},
	{"list", "[-status S] [-type T] [-tokenized true|false] [-owner <uuid> | -mine] [-offset N] [-limit N]", cmdList},
	{"history", "-id <uuid> [-type T] [-offset N] [-limit N]", cmdHistory},
	{"update", "-id <uuid> [-base V] [-title T] [-desc D] [-address A] [-type T] [-area N] ...", cmdUpdate},
	{"auction", "-id <uuid> [-base V] [-enable] [-min-bid B] [-end RFC3339]", cmdAuction},
	{"attach", "-id <uuid> [-base V] -kind image|document -file f [-file f]...", cmdAttach},
	{"detach", "-id <uuid> [-base V] -kind image|document -url U", cmdDetach},
	{"tokenize", "-id <uuid> [-base V] -token-id T -contract 0x... -uri U [-tx H]", cmdTokenize},
	{"sell", "-id <uuid> [-base V] -price P [-tx H]", cmdSell},
	{"unlist", "-id <uuid> [-base V] [-tx H]", cmdUnlist},
	{"transfer", "-id <uuid> [-base V] -to <uuid> -price P [-tx H]", cmdTransfer},
	{"bid", "-id <uuid> [-base V] -amount A [-tx H]", cmdBid},
	{"view", "-id <uuid>", cmdView},
	{"fav", "-id <uuid>", cmdFav},
}

func findCommand(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

// fileList is a repeatable -file flag.
type fileList []string

func (f *fileList) String() string     { return strings.Join(*f, ",") }
func (f *fileList) Set(v string) error { *f = append(*f, v); return nil }

func loadFiles(paths []string) ([]*pb.MediaFile, error) {
	out := make([]*pb.MediaFile, 0, len(paths))
	for _, p := range paths {
		b, err := readAll(p)
		if err != nil {
			return nil, err
		}
		out = append(out, &pb.MediaFile{Name: filepath.Base(p), Data: b})
	}
	return out, nil
}

func parseEnd(s string) (*timestamppb.Timestamp, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("bad -end: %w", err)
	}
	return timestamppb.New(t), nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func needID(id string) error {
	if id == "" {
		return errors.New("need -id")
	}
	return nil
}

func cmdCreate(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	title := fs.String("title", "", "title")
	typ := fs.String("type", "residential", "property type")
	desc := fs.String("desc", "", "description")
	address := fs.String("address", "", "address")
	lon := fs.Float64("lon", 0, "longitude")
	lat := fs.Float64("lat", 0, "latitude")
	area := fs.Float64("area", 0, "area")
	bedrooms := fs.Int("bedrooms", 0, "bedrooms")
	bathrooms := fs.Int("bathrooms", 0, "bathrooms")
	year := fs.Int("year", 0, "year built")
	amenities := fs.String("amenities", "", "comma separated amenities")
	price := fs.String("price", "0", "asking price")
	auction := fs.Bool("auction", false, "enable auction")
	minBid := fs.String("min-bid", "", "minimum bid")
	end := fs.String("end", "", "auction end (RFC3339)")
	var images, docs fileList
	fs.Var(&images, "image", "image file (repeatable)")
	fs.Var(&docs, "doc", "document file (repeatable)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	endTime, err := parseEnd(*end)
	if err != nil {
		return err
	}
	imgs, err := loadFiles(images)
	if err != nil {
		return err
	}
	dcs, err := loadFiles(docs)
	if err != nil {
		return err
	}
	resp, err := cli.CreateProperty(ctx, &pb.CreatePropertyRequest{
		Details: &pb.Details{
			Title:        *title,
			Description:  *desc,
			Address:      *address,
			PropertyType: *typ,
			Location:     &pb.Location{Longitude: *lon, Latitude: *lat},
			Area:         *area,
			Bedrooms:     int32(*bedrooms),
			Bathrooms:    int32(*bathrooms),
			YearBuilt:    int32(*year),
			Amenities:    splitList(*amenities),
		},
		Price:     *price,
		Auction:   &pb.Auction{Enabled: *auction, MinimumBid: *minBid, EndTime: endTime},
		Images:    imgs,
		Documents: dcs,
	})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdGet(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.GetProperty(ctx, &pb.GetPropertyRequest{Id: *id})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdList(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	st := fs.String("status", "", "status filter")
	typ := fs.String("type", "", "property type filter")
	tok := fs.String("tokenized", "", "true|false")
	owner := fs.String("owner", "", "owner uuid")
	mine := fs.Bool("mine", false, "only my properties")
	offset := fs.Int("offset", 0, "offset")
	limit := fs.Int("limit", 0, "limit (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	req := &pb.ListPropertiesRequest{
		Status: *st, PropertyType: *typ, Owner: *owner, Mine: *mine, Offset: int32(*offset), Limit: int32(*limit),
	}
	if *tok != "" {
		b, err := strconv.ParseBool(*tok)
		if err != nil {
			return fmt.Errorf("bad -tokenized: %w", err)
		}
		req.Tokenized = proto.Bool(b)
	}
	resp, err := cli.ListProperties(ctx, req)
	if err != nil {
		return err
	}

	type row struct{ ID, Title, Status, Owner, Price string }
	rows := []row{}
	for _, p := range resp.Properties {
		rows = append(rows, row{ID: p.GetId(), Title: p.GetDetails().GetTitle(), Status: p.GetStatus(), Owner: p.GetOwner(), Price: p.GetPrice()})
	}
	printJSON(w, rows)
	return nil
}

func cmdHistory(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	typ := fs.String("type", "", "event type filter")
	offset := fs.Int("offset", 0, "offset")
	limit := fs.Int("limit", 0, "limit (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.GetHistory(ctx, &pb.GetHistoryRequest{Id: *id, Type: *typ, Offset: int32(*offset), Limit: int32(*limit)})
	if err != nil {
		return err
	}
	printProto(w, resp)
	return nil
}

func cmdUpdate(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	title := fs.String("title", "", "title")
	desc := fs.String("desc", "", "description")
	address := fs.String("address", "", "address")
	typ := fs.String("type", "", "property type")
	area := fs.Float64("area", 0, "area")
	bedrooms := fs.Int("bedrooms", 0, "bedrooms")
	bathrooms := fs.Int("bathrooms", 0, "bathrooms")
	year := fs.Int("year", 0, "year built")
	amenities := fs.String("amenities", "", "comma separated amenities")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}

	req := &pb.UpdateDetailsRequest{Id: *id, BaseVersion: *base}
	// only flags given on the command line are sent
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			req.Title = title
		case "desc":
			req.Description = desc
		case "address":
			req.Address = address
		case "type":
			req.PropertyType = typ
		case "area":
			req.Area = area
		case "bedrooms":
			req.Bedrooms = proto.Int32(int32(*bedrooms))
		case "bathrooms":
			req.Bathrooms = proto.Int32(int32(*bathrooms))
		case "year":
			req.YearBuilt = proto.Int32(int32(*year))
		case "amenities":
			req.Amenities = splitList(*amenities)
			req.ReplaceAmenities = true
		}
	})
	resp, err := cli.UpdateDetails(ctx, req)
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdAuction(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("auction", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	enable := fs.Bool("enable", false, "enable auction (omit to disable)")
	minBid := fs.String("min-bid", "", "minimum bid")
	end := fs.String("end", "", "auction end (RFC3339)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	endTime, err := parseEnd(*end)
	if err != nil {
		return err
	}
	resp, err := cli.ConfigureAuction(ctx, &pb.ConfigureAuctionRequest{
		Id: *id, BaseVersion: *base,
		Auction: &pb.Auction{Enabled: *enable, MinimumBid: *minBid, EndTime: endTime},
	})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdAttach(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("attach", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	kind := fs.String("kind", convert.MediaImage, "image|document")
	var files fileList
	fs.Var(&files, "file", "file to upload (repeatable, - for stdin)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	if len(files) == 0 {
		return errors.New("need -file")
	}
	mf, err := loadFiles(files)
	if err != nil {
		return err
	}
	resp, err := cli.AttachMedia(ctx, &pb.AttachMediaRequest{Id: *id, BaseVersion: *base, Kind: *kind, Files: mf})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdDetach(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("detach", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	kind := fs.String("kind", convert.MediaImage, "image|document")
	url := fs.String("url", "", "media url")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.RemoveMedia(ctx, &pb.RemoveMediaRequest{Id: *id, BaseVersion: *base, Kind: *kind, Url: *url})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdTokenize(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	tokenID := fs.String("token-id", "", "token id")
	contract := fs.String("contract", "", "contract address")
	uri := fs.String("uri", "", "token uri")
	tx := fs.String("tx", "", "transaction hash")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.Tokenize(ctx, &pb.TokenizeRequest{
		Id: *id, BaseVersion: *base, TokenId: *tokenID, ContractAddress: *contract, TokenUri: *uri, TransactionHash: *tx,
	})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdSell(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("sell", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	price := fs.String("price", "", "asking price")
	tx := fs.String("tx", "", "transaction hash")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.ListForSale(ctx, &pb.ListForSaleRequest{Id: *id, BaseVersion: *base, Price: *price, TransactionHash: *tx})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdUnlist(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("unlist", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	tx := fs.String("tx", "", "transaction hash")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.Unlist(ctx, &pb.UnlistRequest{Id: *id, BaseVersion: *base, TransactionHash: *tx})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdTransfer(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("transfer", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	to := fs.String("to", "", "new owner uuid")
	price := fs.String("price", "", "sale price")
	tx := fs.String("tx", "", "transaction hash")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.Transfer(ctx, &pb.TransferRequest{
		Id: *id, BaseVersion: *base, NewOwner: *to, Price: *price, TransactionHash: *tx,
	})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdBid(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("bid", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	base := fs.Int64("base", 0, "base version (0 = latest)")
	amount := fs.String("amount", "", "bid amount")
	tx := fs.String("tx", "", "transaction hash")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.PlaceBid(ctx, &pb.PlaceBidRequest{Id: *id, BaseVersion: *base, Amount: *amount, TransactionHash: *tx})
	if err != nil {
		return err
	}
	printProto(w, resp.GetProperty())
	return nil
}

func cmdView(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.RecordView(ctx, &pb.RecordViewRequest{Id: *id})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, resp.GetViews())
	return nil
}

func cmdFav(ctx context.Context, cli pb.PropertyServiceClient, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("fav", flag.ContinueOnError)
	id := fs.String("id", "", "property id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := needID(*id); err != nil {
		return err
	}
	resp, err := cli.ToggleFavorite(ctx, &pb.ToggleFavoriteRequest{Id: *id})
	if err != nil {
		return err
	}
	fmt.Fprintln(w, resp.GetFavorited())
	return nil
}
