package service

import (
	"context"
	"errors"

	"epicblogs/internal/domain/entity"
)

// ErrTicketNotFound is returned when a handoff ticket is unknown, expired, or already taken.
var ErrTicketNotFound = errors.New("handoff ticket not found")

// TicketStore defines the interface for single-use login handoff tickets.
// A ticket parks a freshly issued session credential between the OAuth callback
// and the client's redemption request.
type TicketStore interface {
	// Put stores a ticket under its ID until it expires or is taken.
	Put(ctx context.Context, ticket *entity.HandoffTicket) error

	// Take atomically removes and returns the ticket with the given ID.
	// A given ticket can be taken at most once; concurrent takers race and
	// exactly one wins. Expired tickets are treated as not found.
	Take(ctx context.Context, id string) (*entity.HandoffTicket, error)
}
