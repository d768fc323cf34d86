package entity

import "time"

// HandoffTicket bridges the provider's redirect back to the backend and the
// client's follow-up request for its session credential. The browser only
// ever sees the opaque ID; the account summary and signed token stay server
// side until the client exchanges the ticket over a direct channel.
//
// A ticket is single-use: the first successful retrieval consumes it, and an
// unclaimed ticket simply expires.
type HandoffTicket struct {
	ID        string          // Opaque random identifier carried in the redirect query string.
	Account   *AccountSummary // The resolved account.
	Token     string          // The minted session credential.
	ExpiresAt time.Time       // Absolute expiry instant, checked at retrieval time.
}

// Expired reports whether the ticket is past its expiry at the given instant.
func (t *HandoffTicket) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
