// Package grpcserver exposes the property ledger gRPC API handlers.
package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
	"github.com/and161185/propledger/internal/convert"
	"github.com/and161185/propledger/internal/errs"
	"github.com/and161185/propledger/internal/lifecycle"
	"github.com/and161185/propledger/internal/model"
	"github.com/and161185/propledger/internal/service"
)

// Server wires the property service into gRPC handlers.
type Server struct {
	pb.UnimplementedPropertyServiceServer

	props   service.PropertyService
	signKey []byte
	log     *zap.Logger
}

var _ pb.PropertyServiceServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(props service.PropertyService, signKey []byte, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{props: props, signKey: signKey, log: log}
}

// --- Reads (anonymous allowed) ---

// GetProperty returns a snapshot including history.
func (s *Server) GetProperty(ctx context.Context, req *pb.GetPropertyRequest) (*pb.PropertyResponse, error) {
	id, err := convert.ParseID("id", req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.Get(ctx, id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.respond(p)
}

// ListProperties returns filtered properties. Mine requires authentication.
func (s *Server) ListProperties(ctx context.Context, req *pb.ListPropertiesRequest) (*pb.ListPropertiesResponse, error) {
	f, err := convert.FromProtoFilter(req)
	if err != nil {
		return nil, s.toStatus(err)
	}
	if req.GetMine() {
		actor, err := actorFromCtx(ctx)
		if err != nil {
			return nil, err
		}
		ps, err := s.props.ListByOwner(ctx, actor, f.Offset, f.Limit)
		if err != nil {
			return nil, s.toStatus(err)
		}
		return &pb.ListPropertiesResponse{Properties: convert.ToProtoProperties(ps)}, nil
	}
	ps, err := s.props.List(ctx, f)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.ListPropertiesResponse{Properties: convert.ToProtoProperties(ps)}, nil
}

// GetHistory returns a page of ledger entries in append order.
func (s *Server) GetHistory(ctx context.Context, req *pb.GetHistoryRequest) (*pb.GetHistoryResponse, error) {
	id, err := convert.ParseID("id", req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	evs, err := s.props.History(ctx, id, convert.FromProtoHistoryQuery(req))
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.GetHistoryResponse{Events: convert.ToProtoEvents(evs)}, nil
}

// RecordView increments the view counter.
func (s *Server) RecordView(ctx context.Context, req *pb.RecordViewRequest) (*pb.RecordViewResponse, error) {
	id, err := convert.ParseID("id", req.GetId())
	if err != nil {
		return nil, s.toStatus(err)
	}
	n, err := s.props.RecordView(ctx, id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.RecordViewResponse{Views: n}, nil
}

// --- Authenticated ---

// CreateProperty stores a new pending property owned by the caller.
func (s *Server) CreateProperty(ctx context.Context, req *pb.CreatePropertyRequest) (*pb.PropertyResponse, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoCreate(req)
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.Create(ctx, actor, service.CreateRequest{
		Input:     in,
		Images:    convert.FromProtoFiles(req.GetImages()),
		Documents: convert.FromProtoFiles(req.GetDocuments()),
	})
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.respond(p)
}

// UpdateDetails amends descriptive fields.
func (s *Server) UpdateDetails(ctx context.Context, req *pb.UpdateDetailsRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	p, err := s.props.UpdateDetails(ctx, actor, id, req.GetBaseVersion(), convert.FromProtoPatch(req))
	return s.result(p, err)
}

// ConfigureAuction amends auction settings.
func (s *Server) ConfigureAuction(ctx context.Context, req *pb.ConfigureAuctionRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoAuction(req.GetAuction())
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.ConfigureAuction(ctx, actor, id, req.GetBaseVersion(), in)
	return s.result(p, err)
}

// AttachMedia uploads files and attaches their URLs.
func (s *Server) AttachMedia(ctx context.Context, req *pb.AttachMediaRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	kind, err := convert.FromProtoMediaKind(req.GetKind())
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.AttachMedia(ctx, actor, id, req.GetBaseVersion(), kind, convert.FromProtoFiles(req.GetFiles()))
	return s.result(p, err)
}

// RemoveMedia detaches a media URL.
func (s *Server) RemoveMedia(ctx context.Context, req *pb.RemoveMediaRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	kind, err := convert.FromProtoMediaKind(req.GetKind())
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.RemoveMedia(ctx, actor, id, req.GetBaseVersion(), kind, req.GetUrl())
	return s.result(p, err)
}

// Tokenize records token issuance.
func (s *Server) Tokenize(ctx context.Context, req *pb.TokenizeRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	p, err := s.props.Tokenize(ctx, actor, id, req.GetBaseVersion(), lifecycle.TokenInput{
		TokenID:         req.GetTokenId(),
		ContractAddress: req.GetContractAddress(),
		TokenURI:        req.GetTokenUri(),
		TransactionHash: req.GetTransactionHash(),
	})
	return s.result(p, err)
}

// ListForSale lists a tokenized property.
func (s *Server) ListForSale(ctx context.Context, req *pb.ListForSaleRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoListForSale(req)
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.ListForSale(ctx, actor, id, req.GetBaseVersion(), in)
	return s.result(p, err)
}

// Unlist withdraws a listing.
func (s *Server) Unlist(ctx context.Context, req *pb.UnlistRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	p, err := s.props.Unlist(ctx, actor, id, req.GetBaseVersion(), req.GetTransactionHash())
	return s.result(p, err)
}

// Transfer moves ownership to the requested user.
func (s *Server) Transfer(ctx context.Context, req *pb.TransferRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoTransfer(req)
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.Transfer(ctx, actor, id, req.GetBaseVersion(), in)
	return s.result(p, err)
}

// PlaceBid records a bid by the caller.
func (s *Server) PlaceBid(ctx context.Context, req *pb.PlaceBidRequest) (*pb.PropertyResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	in, err := convert.FromProtoBid(req)
	if err != nil {
		return nil, s.toStatus(err)
	}
	p, err := s.props.PlaceBid(ctx, actor, id, req.GetBaseVersion(), in)
	return s.result(p, err)
}

// ToggleFavorite flips the caller's favorite flag.
func (s *Server) ToggleFavorite(ctx context.Context, req *pb.ToggleFavoriteRequest) (*pb.ToggleFavoriteResponse, error) {
	actor, id, err := s.target(ctx, req.GetId())
	if err != nil {
		return nil, err
	}
	on, err := s.props.ToggleFavorite(ctx, actor, id)
	if err != nil {
		return nil, s.toStatus(err)
	}
	return &pb.ToggleFavoriteResponse{Favorited: on}, nil
}

// --- helpers ---

// target resolves the authenticated actor and the property id.
func (s *Server) target(ctx context.Context, rawID string) (uuid.UUID, uuid.UUID, error) {
	actor, err := actorFromCtx(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	id, err := convert.ParseID("id", rawID)
	if err != nil {
		return uuid.Nil, uuid.Nil, s.toStatus(err)
	}
	return actor, id, nil
}

func (s *Server) result(p *model.Property, err error) (*pb.PropertyResponse, error) {
	if err != nil {
		return nil, s.toStatus(err)
	}
	return s.respond(p)
}

func (s *Server) respond(p *model.Property) (*pb.PropertyResponse, error) {
	resp, err := convert.ToProtoPropertyResponse(p)
	if err != nil {
		return nil, status.Error(codes.Internal, "internal")
	}
	return resp, nil
}

// toStatus maps domain errors onto gRPC codes. Unknown errors are logged and hidden.
func (s *Server) toStatus(err error) error {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "no auth")
	case errors.Is(err, errs.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, errs.ErrVersionConflict):
		return status.Error(codes.Aborted, "version conflict")
	case errors.Is(err, errs.ErrInvalidTransition), errors.Is(err, errs.ErrBidRejected):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "store timeout")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	default:
		s.log.Error("unhandled error", zap.Error(err))
		return status.Error(codes.Internal, "internal")
	}
}

// userIDFromCtx: extract "authorization: Bearer <JWT>", verify HS256, return sub as UUID.
func (s *Server) userIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	tok, err := bearerTokenFromMD(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return uuid.Nil, errors.New("invalid token")
	}

	v := jwt.NewValidator(jwt.WithLeeway(30 * time.Second))
	if err := v.Validate(&claims); err != nil {
		return uuid.Nil, errors.New("token expired or not valid yet")
	}

	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, errors.New("bad subject")
	}
	return id, nil
}

var errNoBearer = errors.New("no bearer token")

func bearerTokenFromMD(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errNoBearer
	}
	for _, v := range md.Get("authorization") {
		v = strings.TrimSpace(v)
		if len(v) >= 7 && strings.EqualFold(v[:7], "bearer ") {
			t := strings.TrimSpace(v[7:])
			if t != "" {
				return t, nil
			}
		}
	}
	return "", errNoBearer
}
