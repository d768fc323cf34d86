package usecase

import (
	"context"

	"epicblogs/internal/domain/entity"
)

// --- Output DTOs ---

// BeginLoginOutput carries the provider consent page URL to redirect the browser to.
type BeginLoginOutput struct {
	AuthorizationURL string
}

// CompleteLoginOutput carries the client redirect after a finished provider
// dance. The ticket ID is the only secret in the URL, and it is single-use
// with a short expiry.
type CompleteLoginOutput struct {
	TicketID    string
	RedirectURL string
}

// SessionOutput returns the session credential and account snapshot after a
// ticket is redeemed.
type SessionOutput struct {
	Token string                 `json:"token"`
	User  *entity.AccountSummary `json:"account"`
}

// HandoffUsecase drives the browser login handoff: the redirect to the
// provider, the callback that parks a session credential behind a single-use
// ticket, and the ticket redemption by the client.
type HandoffUsecase interface {
	// BeginGoogleLogin starts the provider dance and returns the consent page URL.
	BeginGoogleLogin(ctx context.Context) (*BeginLoginOutput, error)

	// CompleteGoogleLogin handles the provider callback: it validates state,
	// resolves the asserted identity to a local account, issues a session
	// credential, and parks it behind a fresh ticket.
	CompleteGoogleLogin(ctx context.Context, state, code string) (*CompleteLoginOutput, error)

	// RedeemTicket trades a single-use ticket for the parked session credential.
	// A ticket redeems at most once; expired or unknown tickets fail the same way.
	RedeemTicket(ctx context.Context, ticketID string) (*SessionOutput, error)

	// FailureRedirectURL is where the browser is sent when any callback step
	// fails. The marker it carries is deliberately opaque.
	FailureRedirectURL() string
}
