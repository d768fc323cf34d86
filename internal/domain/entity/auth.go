// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies the origin of an authentication credential.
type ProviderType string

const (
	// ProviderTypeEmail is the direct email/password registration credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is the Google Sign-In external-identity binding.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the ProviderType.
func (p ProviderType) String() string {
	return string(p)
}

// Authentication represents a single method of logging in (a credential).
// An email/password registration is one record, a linked Google account is
// another. (Provider, ProviderUserID) is unique across all accounts.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record.
	UserID         uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider       ProviderType // The authentication provider, e.g. "email" or "google".
	ProviderUserID string       // The provider-issued subject id (Google's 'sub'), or the email for direct registration.
	PasswordHash   string       // The bcrypt-hashed password, only set when Provider is "email".
	CreatedAt      time.Time    // Timestamp of when this method was linked to the account.
}
