// Command propctl is a CLI client for the property ledger service.
package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	u "github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	pb "github.com/and161185/propledger/gen/go/propledger/v1"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "propledger")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "propledger")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.OpenFile(tokenPath(), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// ---- tokens ----

// tokenClaims reads claims without verifying the signature; the server verifies.
func tokenClaims(tok string) (jwt.RegisteredClaims, error) {
	var claims jwt.RegisteredClaims
	_, _, err := jwt.NewParser().ParseUnverified(tok, &claims)
	return claims, err
}

// mintToken signs an HS256 token for sub. Used against dev servers that share the key.
func mintToken(key []byte, sub string, ttl time.Duration) (string, time.Time, error) {
	if len(key) == 0 {
		return "", time.Time{}, errors.New("empty signing key")
	}
	if _, err := u.FromString(sub); err != nil {
		return "", time.Time{}, fmt.Errorf("subject must be a uuid: %w", err)
	}
	now := time.Now().UTC()
	exp := now.Add(ttl)
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}).SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, exp, nil
}

func cmdLogin(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	tok := fs.String("token", "", "bearer token issued by the identity provider")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *tok == "" {
		return errors.New("need -token")
	}
	claims, err := tokenClaims(*tok)
	if err != nil {
		return fmt.Errorf("parse token: %w", err)
	}
	exp := time.Now().Add(15 * time.Minute)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	if err := saveToken(*tok, exp); err != nil {
		return err
	}
	fmt.Fprintln(w, "ok")
	return nil
}

func cmdDevToken(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("devtoken", flag.ContinueOnError)
	key := fs.String("key", os.Getenv("PROPLEDGER_AUTH_JWT_KEY"), "HS256 signing key")
	sub := fs.String("sub", "", "user uuid (random when empty)")
	ttl := fs.Duration("ttl", time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *sub == "" {
		*sub = u.Must(u.NewV4()).String()
	}
	tok, exp, err := mintToken([]byte(*key), *sub, *ttl)
	if err != nil {
		return err
	}
	if err := saveToken(tok, exp); err != nil {
		return err
	}
	fmt.Fprintln(w, *sub)
	return nil
}

func cmdWhoami(w io.Writer) error {
	tok, err := loadToken()
	if err != nil {
		return err
	}
	claims, err := tokenClaims(tok)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, claims.Subject)
	return nil
}

// ---- grpc dial ----

type bearerCreds struct{ token string }

func (b bearerCreds) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + b.token}, nil
}
func (b bearerCreds) RequireTransportSecurity() bool { return true }

func loadTLS(caPath string, insecure bool) (credentials.TransportCredentials, error) {
	if insecure {
		return credentials.NewTLS(&tls.Config{InsecureSkipVerify: true}), nil
	}
	if caPath == "" {
		return credentials.NewClientTLSFromCert(nil, ""), nil
	}
	pem, err := os.ReadFile(caPath)
	if err != nil {
		return nil, err
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, errors.New("bad CA cert")
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

func dial(ctx context.Context, addr, caPath string, insecure bool, bearer string) (*grpc.ClientConn, pb.PropertyServiceClient, error) {
	creds, err := loadTLS(caPath, insecure)
	if err != nil {
		return nil, nil, err
	}
	opts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if bearer != "" {
		opts = append(opts, grpc.WithPerRPCCredentials(bearerCreds{token: bearer}))
	}
	//nolint:staticcheck // DialContext is supported through 1.x; migrate when grpc.NewClient is stable
	cc, err := grpc.DialContext(ctx, addr, opts...)
	if err != nil {
		return nil, nil, err
	}
	return cc, pb.NewPropertyServiceClient(cc), nil
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

var protoOut = protojson.MarshalOptions{Multiline: true, Indent: "  ", EmitUnpopulated: true}

func printProto(w io.Writer, m proto.Message) {
	b, err := protoOut.Marshal(m)
	if err != nil {
		fmt.Fprintln(os.Stderr, "encode:", err)
		return
	}
	_, _ = w.Write(append(b, '\n'))
}

func usage() {
	fmt.Fprintf(os.Stderr, `propctl CLI
Usage:
  propctl -addr HOST:PORT [-cacert file | -insecure] <cmd> [args]

Commands:
  version
  login      -token <jwt>                            (saves token)
  devtoken   -key <hs256 key> [-sub <uuid>] [-ttl 1h] (mints and saves a dev token)
  whoami
`)
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %-10s %s\n", c.name, c.usage)
	}
	os.Exit(2)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands and configures TLS/auth for RPC calls.
func main() {
	// global flags
	addr := flag.String("addr", "localhost:8443", "server addr")
	caPath := flag.String("cacert", "", "CA cert (PEM)")
	insecure := flag.Bool("insecure", false, "skip cert verify (dev)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd, args := flag.Arg(0), flag.Args()[1:]

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	var err error
	switch cmd {
	case "version":
		fmt.Printf("propctl %s (%s)\n", version, buildDate)
	case "login":
		err = cmdLogin(args, os.Stdout)
	case "devtoken":
		err = cmdDevToken(args, os.Stdout)
	case "whoami":
		err = cmdWhoami(os.Stdout)
	default:
		c, ok := findCommand(cmd)
		if !ok {
			usage()
		}
		// reads work anonymously, so a missing token is not fatal here
		token, _ := loadToken()
		cc, cli, derr := dial(ctx, *addr, *caPath, *insecure, token)
		if derr != nil {
			fail(derr)
		}
		err = c.run(ctx, cli, args, os.Stdout)
		_ = cc.Close()
	}
	if err != nil {
		fail(err)
	}
}

// ---- helpers ----

func fail(err error) {
	if s, ok := status.FromError(err); ok {
		fmt.Fprintf(os.Stderr, "rpc error: code=%s msg=%s\n", s.Code(), s.Message())
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
