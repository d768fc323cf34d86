// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"epicblogs/internal/domain/entity"
	"epicblogs/internal/domain/service"
)

// IdentityUsecase resolves a verified provider assertion to a local account.
// Given the same assertion it always lands on the same account: it reuses an
// existing link, links the provider to an account that shares the verified
// email, or provisions a fresh account.
type IdentityUsecase interface {
	// Resolve maps the assertion to a local user, creating or linking as needed.
	// The whole operation is atomic; a failure leaves no partial account behind.
	Resolve(ctx context.Context, assertion *service.ProviderAssertion) (*entity.User, error)
}
