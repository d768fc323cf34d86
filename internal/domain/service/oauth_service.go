package service

import (
	"context"

	"epicblogs/internal/domain/entity"
)

// ProviderAssertion represents verified identity information from an OAuth provider.
// It is only constructed after the provider's signature on the ID token has been checked.
type ProviderAssertion struct {
	Provider      entity.ProviderType // The OAuth provider (google, etc.)
	SubjectID     string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	EmailVerified bool                // Whether the email is verified by the provider
	Name          string              // User's display name
	GivenName     string              // User's given name, may be empty
	FamilyName    string              // User's family name, may be empty
	AvatarURL     string              // URL to user's profile picture
}

// OAuthService defines the interface for the provider side of the login handoff.
// It covers the authorization redirect, state tracking, and code exchange.
type OAuthService interface {
	// NewState issues and remembers an opaque single-use state value for CSRF protection.
	NewState() (string, error)

	// ConsumeState checks and invalidates a previously issued state value.
	// It returns false for unknown, expired, or already consumed states.
	ConsumeState(state string) bool

	// AuthorizationURL builds the provider consent page URL carrying the given state.
	AuthorizationURL(state string) string

	// FetchAssertion exchanges an authorization code for tokens and verifies the
	// resulting ID token, returning the asserted identity.
	FetchAssertion(ctx context.Context, code string) (*ProviderAssertion, error)

	// Provider returns the OAuth provider type.
	Provider() entity.ProviderType
}
