package grpcserver

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func Test_actorFromCtx(t *testing.T) {
	t.Parallel()

	if _, err := actorFromCtx(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("anonymous: want Unauthenticated, got %v", err)
	}
	if _, err := actorFromCtx(WithUserID(context.Background(), uuid.Nil)); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("nil actor: want Unauthenticated, got %v", err)
	}
	bad := context.WithValue(context.Background(), userIDKey, "not-uuid")
	if _, err := actorFromCtx(bad); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("wrong typed value: want Unauthenticated, got %v", err)
	}

	want := uuid.Must(uuid.NewV4())
	got, err := actorFromCtx(WithUserID(context.Background(), want))
	if err != nil || got != want {
		t.Fatalf("actor: got %s err=%v", got, err)
	}
}
