// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"math/rand"
	"strconv"
	"strings"

	deliverycontext "epicblogs/internal/delivery/context"
	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/repository"
	"epicblogs/internal/domain/service"
	"epicblogs/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxUsernameAttempts = 5

// identityService implements the IdentityUsecase interface.
type identityService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	return &identityService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve maps a verified provider assertion to a local account. The three
// paths, in order: reuse an existing provider link, link the provider to the
// account holding the same verified email, or provision a fresh account.
// Everything runs in one transaction so a failure leaves no partial account.
func (srv *identityService) Resolve(ctx context.Context, assertion *service.ProviderAssertion) (*entity.User, error) {
	if err := validateAssertion(assertion); err != nil {
		srv.log(ctx).Warn("Rejected provider assertion", slog.Any("error", err))

		return nil, err
	}

	email := normalizeEmail(assertion.Email)

	var resolved *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		// Path 1: the provider subject is already linked.
		auth, err := authRepo.FindAuthentication(ctx, assertion.Provider, assertion.SubjectID)
		if err == nil {
			user, err := userRepo.FindByID(ctx, auth.UserID)
			if err != nil {
				return errors.Wrap(err, "failed to load linked user")
			}
			resolved = user

			return nil
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to look up provider link")
		}

		// Path 2: an account already owns the asserted email, so link it.
		user, err := userRepo.FindByEmail(ctx, email)
		if err == nil {
			return srv.linkProvider(ctx, userRepo, authRepo, user, assertion, &resolved)
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to look up user by email")
		}

		// Path 3: first sight of this identity, provision an account.
		return srv.provisionAccount(ctx, userRepo, authRepo, assertion, email, &resolved)
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Resolved provider assertion",
		slog.String("provider", assertion.Provider.String()),
		slog.Any("userID", resolved.ID))

	return resolved, nil
}

// linkProvider attaches the provider subject to an existing account that owns
// the asserted email, backfilling profile fields the account is missing.
func (srv *identityService) linkProvider(
	ctx context.Context,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	user *entity.User,
	assertion *service.ProviderAssertion,
	resolved **entity.User,
) error {
	// The account may already carry a link for this provider under a different
	// subject. That is a conflict, not an occasion to overwrite the link.
	existing, err := authRepo.FindAuthenticationByUser(ctx, user.ID, assertion.Provider)
	if err == nil {
		if existing.ProviderUserID != assertion.SubjectID {
			srv.log(ctx).Warn("Provider already linked under a different subject",
				slog.Any("userID", user.ID),
				slog.String("provider", assertion.Provider.String()))

			return domainerrors.ErrAccountConflict.WrapMessage("provider already linked to this account")
		}
		*resolved = user

		return nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return errors.Wrap(err, "failed to check existing provider link")
	}

	newAuth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       assertion.Provider,
		ProviderUserID: assertion.SubjectID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to link provider to existing account")
	}

	// Backfill the avatar and any missing names from the assertion.
	changed := false
	if assertion.AvatarURL != "" && assertion.AvatarURL != user.AvatarURL {
		user.AvatarURL = assertion.AvatarURL
		changed = true
	}
	firstName, lastName := deriveNames(assertion)
	if user.FirstName == "" && firstName != "" {
		user.FirstName = firstName
		changed = true
	}
	if user.LastName == "" && lastName != "" {
		user.LastName = lastName
		changed = true
	}
	if changed {
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to backfill profile from assertion")
		}
	}

	srv.log(ctx).Info("Linked provider to existing account",
		slog.Any("userID", user.ID),
		slog.String("provider", assertion.Provider.String()))
	*resolved = user

	return nil
}

// provisionAccount creates a fresh user plus provider link from the assertion.
func (srv *identityService) provisionAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	assertion *service.ProviderAssertion,
	email string,
	resolved **entity.User,
) error {
	firstName, lastName := deriveNames(assertion)

	username, err := pickUsername(ctx, userRepo, email)
	if err != nil {
		return err
	}

	newUser := &entity.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Username:  username,
		AvatarURL: assertion.AvatarURL,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user from assertion")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       assertion.Provider,
		ProviderUserID: assertion.SubjectID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to create provider link")
	}

	srv.log(ctx).Info("Provisioned account from provider assertion",
		slog.Any("userID", newUser.ID),
		slog.String("provider", assertion.Provider.String()))
	*resolved = newUser

	return nil
}

// pickUsername derives a username from the email local part, suffixing a
// random number while the candidate is taken.
func pickUsername(ctx context.Context, userRepo repository.UserRepository, email string) (string, error) {
	base := email[:strings.Index(email, "@")]

	candidate := base
	for range maxUsernameAttempts {
		_, err := userRepo.FindByUsername(ctx, candidate)
		if errors.Is(err, repository.ErrUserNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", errors.Wrap(err, "failed to check username availability")
		}
		candidate = base + strconv.Itoa(rand.Intn(10000))
	}

	return "", domainerrors.ErrUserCreationFailed.WrapMessage("could not find a free username")
}

// validateAssertion rejects assertions that cannot safely drive account resolution.
func validateAssertion(assertion *service.ProviderAssertion) error {
	if assertion == nil {
		return domainerrors.ErrInvalidAssertion.WrapMessage("missing assertion")
	}
	if assertion.SubjectID == "" {
		return domainerrors.ErrInvalidAssertion.WrapMessage("missing subject")
	}
	if assertion.Email == "" {
		return domainerrors.ErrInvalidAssertion.WrapMessage("missing email")
	}
	if !assertion.EmailVerified {
		return domainerrors.ErrInvalidAssertion.WrapMessage("email not verified by provider")
	}
	if !strings.Contains(assertion.Email, "@") {
		return domainerrors.ErrInvalidAssertion.WrapMessage("malformed email")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// deriveNames picks first and last names from the assertion. The structured
// name fields win; otherwise the display name splits on whitespace, and a
// single-token display name doubles as both names.
func deriveNames(assertion *service.ProviderAssertion) (firstName, lastName string) {
	if assertion.GivenName != "" {
		lastName = assertion.FamilyName
		if lastName == "" {
			lastName = assertion.GivenName
		}

		return assertion.GivenName, lastName
	}

	fields := strings.Fields(assertion.Name)
	switch len(fields) {
	case 0:
		base := normalizeEmail(assertion.Email)
		local := base[:strings.Index(base, "@")]

		return local, local
	case 1:
		return fields[0], fields[0]
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}
