package google

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// buildIDToken assembles an unsigned JWT carrying the given claims. Signature
// verification is out of scope here because the token arrives straight from
// Google's token endpoint.
func buildIDToken(t *testing.T, claims idTokenClaims) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	assert.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".signature"
}

func validClaims(now time.Time) idTokenClaims {
	return idTokenClaims{
		Iss:           "https://accounts.google.com",
		Sub:           "google-subject-123",
		Aud:           "test_client_id",
		Exp:           now.Add(time.Hour).Unix(),
		Iat:           now.Unix(),
		Email:         "writer@example.com",
		EmailVerified: true,
		Name:          "Test Writer",
		GivenName:     "Test",
		FamilyName:    "Writer",
		Picture:       "https://example.com/avatar.png",
	}
}

func TestParseIDToken(t *testing.T) {
	now := time.Now()
	token := buildIDToken(t, validClaims(now))

	claims, err := parseIDToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, "google-subject-123", claims.Sub)
	assert.Equal(t, "writer@example.com", claims.Email)
	assert.Equal(t, "Test Writer", claims.Name)
	assert.Equal(t, "test_client_id", claims.Aud)
	assert.Equal(t, "https://accounts.google.com", claims.Iss)
	assert.True(t, claims.EmailVerified)
}

func TestParseIDToken_InvalidFormat(t *testing.T) {
	claims, err := parseIDToken("not-a-jwt")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "invalid JWT format")
}

func TestVerifyTokenClaims(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		mutate  func(c *idTokenClaims)
		wantErr string
	}{
		{
			name:   "valid claims",
			mutate: func(c *idTokenClaims) {},
		},
		{
			name:    "wrong issuer",
			mutate:  func(c *idTokenClaims) { c.Iss = "https://evil.example.com" },
			wantErr: "invalid issuer",
		},
		{
			name:    "wrong audience",
			mutate:  func(c *idTokenClaims) { c.Aud = "someone_else" },
			wantErr: "invalid audience",
		},
		{
			name:    "expired",
			mutate:  func(c *idTokenClaims) { c.Exp = now.Add(-time.Hour).Unix() },
			wantErr: "token expired",
		},
		{
			name:    "unverified email",
			mutate:  func(c *idTokenClaims) { c.EmailVerified = false },
			wantErr: "email not verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims(now)
			tt.mutate(&claims)

			err := verifyTokenClaims(&claims, "test_client_id", now)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestVerifyTokenClaims_LegacyIssuer(t *testing.T) {
	now := time.Now()
	claims := validClaims(now)
	claims.Iss = "accounts.google.com"

	assert.NoError(t, verifyTokenClaims(&claims, "test_client_id", now))
}
