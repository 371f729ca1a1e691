package grpcserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// chain runs interceptors in the order the server installs them.
func chain(ics ...grpc.UnaryServerInterceptor) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, h grpc.UnaryHandler) (any, error) {
		next := h
		for i := len(ics) - 1; i >= 0; i-- {
			ic, inner := ics[i], next
			next = func(ctx context.Context, req any) (any, error) { return ic(ctx, req, info, inner) }
		}
		return next(ctx, req)
	}
}

func observed() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func onlyEntry(t *testing.T, logs *observer.ObservedLogs, msg string) map[string]any {
	t.Helper()
	entries := logs.FilterMessage(msg).TakeAll()
	if len(entries) != 1 {
		t.Fatalf("want one %q entry, got %d", msg, len(entries))
	}
	return entries[0].ContextMap()
}

func TestLoggingUnary_AuthenticatedField(t *testing.T) {
	t.Parallel()

	log, logs := observed()
	s := &Server{signKey: []byte("secret"), log: log}
	ic := chain(s.AuthUnary(), LoggingUnary(log))
	info := &grpc.UnaryServerInfo{FullMethod: "/propledger.v1.PropertyService/GetProperty"}
	ok := func(context.Context, any) (any, error) { return "ok", nil }

	sub := uuid.Must(uuid.NewV4())
	j := makeJWT(t, sub.String(), s.signKey, jwt.SigningMethodHS256, time.Now().UTC(), time.Hour)
	ctx := peer.NewContext(ctxWithAuth(j), &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 7), Port: 4242}})
	if _, err := ic(ctx, nil, info, ok); err != nil {
		t.Fatalf("authed call: %v", err)
	}
	f := onlyEntry(t, logs, "grpc")
	if f["authenticated"] != true {
		t.Fatalf("bearer call must log authenticated=true: %v", f)
	}
	if f["method"] != info.FullMethod || f["code"] != codes.OK.String() || f["peer"] != "10.0.0.7:4242" {
		t.Fatalf("request fields: %v", f)
	}

	if _, err := ic(context.Background(), nil, info, ok); err != nil {
		t.Fatalf("anonymous call: %v", err)
	}
	f = onlyEntry(t, logs, "grpc")
	if f["authenticated"] != false || f["peer"] != "" {
		t.Fatalf("anonymous read must log authenticated=false: %v", f)
	}
}

func TestLoggingUnary_LogsStatusCodeNotPayload(t *testing.T) {
	t.Parallel()

	log, logs := observed()
	ic := LoggingUnary(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/propledger.v1.PropertyService/Transfer"}
	fail := func(context.Context, any) (any, error) { return nil, status.Error(codes.Aborted, "version conflict") }

	_, err := ic(context.Background(), "secret-payload", info, fail)
	if status.Code(err) != codes.Aborted {
		t.Fatalf("handler error must pass through, got %v", err)
	}
	f := onlyEntry(t, logs, "grpc")
	if f["code"] != codes.Aborted.String() {
		t.Fatalf("code field: %v", f)
	}
	for k, v := range f {
		if v == "secret-payload" {
			t.Fatalf("request payload leaked into field %q", k)
		}
	}
}

func TestAuthUnary_RejectedTokenIsNotLogged(t *testing.T) {
	t.Parallel()

	log, logs := observed()
	s := &Server{signKey: []byte("secret"), log: log}
	ic := chain(s.AuthUnary(), LoggingUnary(log))
	info := &grpc.UnaryServerInfo{FullMethod: "/propledger.v1.PropertyService/GetProperty"}

	called := false
	h := func(context.Context, any) (any, error) {
		called = true
		return nil, nil
	}
	_, err := ic(ctxWithAuth("garbage"), nil, info, h)
	if status.Code(err) != codes.Unauthenticated || called {
		t.Fatalf("bad token: err=%v handler called=%v", err, called)
	}
	if n := logs.FilterMessage("grpc").Len(); n != 0 {
		t.Fatalf("rejected call reached the logging interceptor %d times", n)
	}
}

func TestRecoverUnary_CatchesPanic(t *testing.T) {
	t.Parallel()

	log, logs := observed()
	ic := RecoverUnary(log)
	info := &grpc.UnaryServerInfo{FullMethod: "/propledger.v1.PropertyService/PlaceBid"}

	_, err := ic(context.Background(), nil, info, func(context.Context, any) (any, error) { panic("oh no") })
	if status.Code(err) != codes.Internal {
		t.Fatalf("want Internal, got %v", err)
	}
	f := onlyEntry(t, logs, "panic")
	if f["method"] != info.FullMethod || f["reason"] != "oh no" {
		t.Fatalf("panic fields: %v", f)
	}
	if logs.All()[0].Level != zapcore.ErrorLevel {
		t.Fatalf("panic must log at error level")
	}
}
