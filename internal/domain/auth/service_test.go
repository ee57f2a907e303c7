package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/ai-stylist/pkg/errors"
)

func TestService_IssueAndValidate(t *testing.T) {
	svc := NewService(Config{Secret: "test-secret", Issuer: "ai-stylist", TokenTTL: time.Hour}, newTestLogger())

	token, err := svc.IssueToken(context.Background(), "studio-frontend")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, "studio-frontend", claims.Subject)
	require.Equal(t, tokenTypeAccess, claims.TokenType)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, time.Minute)
}

func TestService_Enabled(t *testing.T) {
	require.False(t, NewService(Config{}, newTestLogger()).Enabled())
	require.True(t, NewService(Config{Secret: "test-secret"}, newTestLogger()).Enabled())
}

func TestService_RejectsBadTokens(t *testing.T) {
	svc := NewService(Config{Secret: "test-secret", TokenTTL: time.Hour}, newTestLogger())
	other := NewService(Config{Secret: "other-secret", TokenTTL: time.Hour}, newTestLogger())
	foreign, err := other.IssueToken(context.Background(), "someone")
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{TokenType: tokenTypeAccess}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	wrongType, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		TokenType: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := map[string]string{
		"empty":          " ",
		"garbage":        "not-a-jwt",
		"wrong secret":   foreign,
		"missing expiry": noExpiry,
		"wrong type":     wrongType,
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ValidateToken(context.Background(), token)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, CodeInvalidToken))
		})
	}
}

func TestService_RejectsExpiredToken(t *testing.T) {
	impl := NewService(Config{Secret: "test-secret", TokenTTL: time.Minute}, newTestLogger()).(*service)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := impl.IssueToken(context.Background(), "client")
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(context.Background(), token)
	require.True(t, apperrors.IsCode(err, CodeInvalidToken))
}

func TestService_IssueRequiresSecretAndSubject(t *testing.T) {
	_, err := NewService(Config{}, newTestLogger()).IssueToken(context.Background(), "client")
	require.Error(t, err)

	_, err = NewService(Config{Secret: "s"}, newTestLogger()).IssueToken(context.Background(), "")
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
