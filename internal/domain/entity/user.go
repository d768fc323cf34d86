// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity of the system, representing a single blog account.
// An account always owns at least one Authentication record: a password
// credential, an external-identity binding, or both after linking.
type User struct {
	ID        uuid.UUID `json:"id"`                  // The unique identifier for the account.
	Email     string    `json:"email"`               // The account's email, unique and stored lowercase.
	FirstName string    `json:"firstName"`           // Given name.
	LastName  string    `json:"lastName"`            // Family name.
	Username  string    `json:"username"`            // Unique handle, derived from the email local-part at creation.
	AvatarURL string    `json:"avatarUrl,omitempty"` // URL of the profile picture, empty when never set.
	CreatedAt time.Time `json:"createdAt"`           // Timestamp of when this account was created.
	UpdatedAt time.Time `json:"updatedAt"`           // Timestamp of the last modification to this account.
}

// AccountSummary is the fixed-field projection of a User that crosses the
// login handoff boundary and is embedded in API responses. It is constructed
// once from the resolved account and passed around opaquely afterwards.
type AccountSummary struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
}

// Summary builds the AccountSummary projection for the user.
func (u *User) Summary() *AccountSummary {
	if u == nil {
		return nil
	}

	return &AccountSummary{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		AvatarURL: u.AvatarURL,
	}
}
