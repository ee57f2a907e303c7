package auth

import "time"

// Config drives bearer token verification. An empty Secret disables auth.
type Config struct {
	Secret   string
	Issuer   string
	TokenTTL time.Duration
}

// Enabled reports whether API requests must carry a bearer token.
func (c Config) Enabled() bool {
	return c.Secret != ""
}

// Claims are extracted from the JWT token.
type Claims struct {
	Subject   string
	TokenType string
	ExpiresAt time.Time
}
