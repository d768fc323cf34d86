package impl

import (
	"context"
	"log/slog"

	deliverycontext "epicblogs/internal/delivery/context"
	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/repository"
	"epicblogs/internal/domain/service"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete email/password registration process.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*usecase.SessionResult, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to check existing authentication")
		}

		username, err := pickUsername(ctx, userRepo, email)
		if err != nil {
			return err
		}

		newUser := &entity.User{
			Email:     email,
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Username:  username,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		registeredUser = newUser

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.issueSession(ctx, registeredUser)
}

// Login checks email/password credentials and returns a fresh session.
// Unknown email and wrong password fail identically.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SessionResult, error) {
	email := normalizeEmail(input.Email)

	auth, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email")

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to look up credentials")
	}

	if !srv.hasher.Check(input.Password, auth.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Any("userID", auth.UserID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, auth.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for login")
	}

	return srv.issueSession(ctx, user)
}

// GetProfile returns the full profile of a single user.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// UpdateProfile applies the requested changes to a user's own account.
// A password change requires the current password to check out first.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to load user for update")
		}

		if input.FirstName != nil {
			user.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			user.LastName = *input.LastName
		}
		if input.AvatarURL != nil {
			user.AvatarURL = *input.AvatarURL
		}
		if input.Username != nil && *input.Username != user.Username {
			if _, err := userRepo.FindByUsername(ctx, *input.Username); err == nil {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("username already taken")
			} else if !errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(err, "failed to check username availability")
			}
			user.Username = *input.Username
		}

		if input.NewPassword != nil {
			if err := srv.changePassword(ctx, authRepo, user, input); err != nil {
				return err
			}
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		updated = user

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Profile updated", slog.Any("userID", userID))

	return updated, nil
}

// changePassword verifies the current password against the stored hash before
// replacing it. The stored hash is the only thing compared, never plaintext.
func (srv *userService) changePassword(
	ctx context.Context,
	authRepo repository.AuthRepository,
	user *entity.User,
	input usecase.UpdateProfileInput,
) error {
	if input.CurrentPassword == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("current password required")
	}

	auth, err := authRepo.FindAuthenticationByUser(ctx, user.ID, entity.ProviderTypeEmail)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return domainerrors.ErrValidationFailed.WrapMessage("account has no password login")
		}

		return errors.Wrap(err, "failed to load credentials for password change")
	}

	if !srv.hasher.Check(*input.CurrentPassword, auth.PasswordHash) {
		srv.log(ctx).Warn("Password change with wrong current password", slog.Any("userID", user.ID))

		return domainerrors.ErrInvalidCredentials.WrapMessage("current password mismatch")
	}

	newHash, err := srv.hasher.Hash(*input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	auth.PasswordHash = newHash

	return errors.Wrap(authRepo.UpdateAuthentication(ctx, auth), "failed to store new password")
}

// ListUsers returns account summaries for every user. Credentials never leave
// this layer.
func (srv *userService) ListUsers(ctx context.Context) ([]*entity.AccountSummary, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	summaries := make([]*entity.AccountSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, user.Summary())
	}

	return summaries, nil
}

// issueSession mints a session credential for the given user.
func (srv *userService) issueSession(ctx context.Context, user *entity.User) (*usecase.SessionResult, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to mint session credential", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mint session credential")
	}

	return &usecase.SessionResult{
		Token: token,
		User:  user.Summary(),
	}, nil
}
