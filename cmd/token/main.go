package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/yanqian/ai-stylist/internal/domain/auth"
	"github.com/yanqian/ai-stylist/internal/infra/config"
)

// token mints an API bearer token signed with the configured auth secret.
// The token goes to stdout, logs go to stderr.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil)).With("service", "ai-stylist-token")
	if err := run(os.Args[1:], os.Stdout, logger); err != nil {
		logger.Error("token not issued", "error", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer, logger *slog.Logger) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	subject := fs.String("subject", "", "token subject, e.g. the calling frontend")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.Auth.Secret == "" {
		return errors.New("auth.secret is not set; export AUTH_SECRET with the value the service uses")
	}

	svc := auth.NewService(auth.Config{
		Secret:   cfg.Auth.Secret,
		Issuer:   cfg.Auth.Issuer,
		TokenTTL: *ttl,
	}, logger)
	token, err := svc.IssueToken(context.Background(), *subject)
	if err != nil {
		return err
	}
	logger.Info("token issued", "subject", *subject, "ttl", ttl.String())
	_, err = fmt.Fprintln(out, token)
	return err
}
