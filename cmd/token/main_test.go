package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/ai-stylist/internal/domain/auth"
)

func TestRunIssuesVerifiableToken(t *testing.T) {
	useEmptyConfig(t)
	t.Setenv("AUTH_SECRET", "shared-secret")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-subject", "studio-frontend", "-ttl", "1h"}, &out, discardLogger()))

	token := strings.TrimSpace(out.String())
	require.NotEmpty(t, token)

	svc := auth.NewService(auth.Config{Secret: "shared-secret", Issuer: "ai-stylist"}, discardLogger())
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "studio-frontend", claims.Subject)
}

func TestRunRequiresSecret(t *testing.T) {
	useEmptyConfig(t)
	t.Setenv("AUTH_SECRET", "")

	var out bytes.Buffer
	err := run([]string{"-subject", "studio-frontend"}, &out, discardLogger())
	require.ErrorContains(t, err, "auth.secret")
	require.Empty(t, out.String())
}

func TestRunRequiresSubject(t *testing.T) {
	useEmptyConfig(t)
	t.Setenv("AUTH_SECRET", "shared-secret")

	var out bytes.Buffer
	require.Error(t, run(nil, &out, discardLogger()))
	require.Empty(t, out.String())
}

func useEmptyConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
	t.Setenv("CONFIG_PATH", path)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
