package grpcserver

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "propledger.actor"

// WithUserID stores authenticated user ID in context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx fetches user ID from context.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// actorFromCtx returns the caller or an Unauthenticated status.
func actorFromCtx(ctx context.Context) (uuid.UUID, error) {
	id, ok := UserIDFromCtx(ctx)
	if !ok || id == uuid.Nil {
		return uuid.Nil, status.Error(codes.Unauthenticated, "no auth")
	}
	return id, nil
}

// AuthUnary resolves the bearer token into the caller's id. Calls without a
// token pass through anonymously; handlers that need an actor reject them.
// A token that is present but invalid is rejected here.
func (s *Server) AuthUnary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		id, err := s.userIDFromCtx(ctx)
		switch {
		case err == nil:
			ctx = WithUserID(ctx, id)
		case errors.Is(err, errNoBearer):
		default:
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return next(ctx, req)
	}
}
