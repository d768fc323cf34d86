package impl

import (
	"context"
	"strings"
	"testing"

	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/repository"
	"epicblogs/internal/domain/service"
	mockRepo "epicblogs/internal/mocks/repository"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service   usecase.IdentityUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	svc := NewIdentityService(IdentityServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})

	return identityServiceFixtures{
		service:   svc,
		txManager: txManager,
	}
}

func TestIdentityService_Resolve_ExistingLink(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	assertion := newGoogleAssertion()
	userID := uuid.New()
	existing := &entity.User{
		ID:       userID,
		Email:    "jane.doe@example.com",
		Username: "jane.doe",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, assertion.SubjectID).
				Return(&entity.Authentication{UserID: userID, Provider: entity.ProviderTypeGoogle}, nil)

			mockUserRepo.EXPECT().
				FindByID(ctx, userID).
				Return(existing, nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.Resolve(ctx, assertion)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestIdentityService_Resolve_LinksByVerifiedEmail(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	assertion := newGoogleAssertion()
	userID := uuid.New()
	account := &entity.User{
		ID:       userID,
		Email:    "jane.doe@example.com",
		Username: "jane.doe",
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, assertion.SubjectID).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "jane.doe@example.com").
				Return(account, nil)

			mockAuthRepo.EXPECT().
				FindAuthenticationByUser(ctx, userID, entity.ProviderTypeGoogle).
				Return(nil, repository.ErrAuthNotFound)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, userID, auth.UserID)
					assert.Equal(t, assertion.SubjectID, auth.ProviderUserID)
				}).
				Return(nil)

			// Backfill of avatar and missing names.
			mockUserRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, assertion.AvatarURL, user.AvatarURL)
					assert.Equal(t, "Jane", user.FirstName)
					assert.Equal(t, "Doe", user.LastName)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.Resolve(ctx, assertion)

	require.NoError(t, err)
	assert.Equal(t, userID, user.ID)
}

func TestIdentityService_Resolve_SameProviderDifferentSubject(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	assertion := newGoogleAssertion()
	userID := uuid.New()
	account := &entity.User{ID: userID, Email: "jane.doe@example.com"}

	expectedErr := domainerrors.ErrAccountConflict.WrapMessage("provider already linked to this account")

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, assertion.SubjectID).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "jane.doe@example.com").
				Return(account, nil)

			// The account already carries a Google link under another subject.
			mockAuthRepo.EXPECT().
				FindAuthenticationByUser(ctx, userID, entity.ProviderTypeGoogle).
				Return(&entity.Authentication{
					UserID:         userID,
					Provider:       entity.ProviderTypeGoogle,
					ProviderUserID: "another-google-sub",
				}, nil)

			err := fn(mockFactory)
			assert.True(t, errors.Is(err, domainerrors.ErrAccountConflict))
		}).
		Return(expectedErr)

	user, err := fx.service.Resolve(ctx, assertion)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrAccountConflict))
}

func TestIdentityService_Resolve_ProvisionsAccount(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	assertion := newGoogleAssertion()
	newID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, assertion.SubjectID).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "jane.doe@example.com").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				FindByUsername(ctx, "jane.doe").
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.Equal(t, "jane.doe@example.com", user.Email)
					assert.Equal(t, "Jane", user.FirstName)
					assert.Equal(t, "Doe", user.LastName)
					assert.Equal(t, "jane.doe", user.Username)
					assert.Equal(t, assertion.AvatarURL, user.AvatarURL)
					user.ID = newID
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Run(func(ctx context.Context, auth *entity.Authentication) {
					assert.Equal(t, newID, auth.UserID)
					assert.Equal(t, entity.ProviderTypeGoogle, auth.Provider)
					assert.Equal(t, assertion.SubjectID, auth.ProviderUserID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	user, err := fx.service.Resolve(ctx, assertion)

	require.NoError(t, err)
	assert.Equal(t, newID, user.ID)
}

func TestIdentityService_Resolve_UsernameCollision(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	assertion := newGoogleAssertion()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockAuthRepo := mockRepo.NewMockAuthRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewAuthRepository().Return(mockAuthRepo)

			mockAuthRepo.EXPECT().
				FindAuthentication(ctx, entity.ProviderTypeGoogle, assertion.SubjectID).
				Return(nil, repository.ErrAuthNotFound)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, "jane.doe@example.com").
				Return(nil, repository.ErrUserNotFound)

			// The plain local part is taken; the suffixed retry is free.
			mockUserRepo.EXPECT().
				FindByUsername(ctx, "jane.doe").
				Return(&entity.User{ID: uuid.New(), Username: "jane.doe"}, nil)
			mockUserRepo.EXPECT().
				FindByUsername(ctx, mock.MatchedBy(func(candidate string) bool {
					return candidate != "jane.doe" && strings.HasPrefix(candidate, "jane.doe")
				})).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					assert.NotEqual(t, "jane.doe", user.Username)
					assert.True(t, strings.HasPrefix(user.Username, "jane.doe"))
					user.ID = uuid.New()
				}).
				Return(nil)

			mockAuthRepo.EXPECT().
				CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	_, err := fx.service.Resolve(ctx, assertion)

	require.NoError(t, err)
}

func TestIdentityService_Resolve_RejectsBadAssertions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *service.ProviderAssertion)
	}{
		{
			name:   "missing subject",
			mutate: func(a *service.ProviderAssertion) { a.SubjectID = "" },
		},
		{
			name:   "missing email",
			mutate: func(a *service.ProviderAssertion) { a.Email = "" },
		},
		{
			name:   "unverified email",
			mutate: func(a *service.ProviderAssertion) { a.EmailVerified = false },
		},
		{
			name:   "malformed email",
			mutate: func(a *service.ProviderAssertion) { a.Email = "not-an-email" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestIdentityService(t)

			assertion := newGoogleAssertion()
			tt.mutate(assertion)

			user, err := fx.service.Resolve(context.Background(), assertion)

			assert.Error(t, err)
			assert.Nil(t, user)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidAssertion))
		})
	}
}

func TestIdentityService_Resolve_NilAssertion(t *testing.T) {
	fx := createTestIdentityService(t)

	user, err := fx.service.Resolve(context.Background(), nil)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAssertion))
}

func TestDeriveNames(t *testing.T) {
	tests := []struct {
		name      string
		assertion service.ProviderAssertion
		wantFirst string
		wantLast  string
	}{
		{
			name: "structured names win",
			assertion: service.ProviderAssertion{
				Name: "Someone Else", GivenName: "Jane", FamilyName: "Doe",
			},
			wantFirst: "Jane",
			wantLast:  "Doe",
		},
		{
			name: "given name doubles when family missing",
			assertion: service.ProviderAssertion{
				GivenName: "Cher",
			},
			wantFirst: "Cher",
			wantLast:  "Cher",
		},
		{
			name: "display name splits on whitespace",
			assertion: service.ProviderAssertion{
				Name: "Jane Van Der Berg",
			},
			wantFirst: "Jane",
			wantLast:  "Van Der Berg",
		},
		{
			name: "single token display name doubles",
			assertion: service.ProviderAssertion{
				Name: "Madonna",
			},
			wantFirst: "Madonna",
			wantLast:  "Madonna",
		},
		{
			name: "falls back to the email local part",
			assertion: service.ProviderAssertion{
				Email: "Jane.Doe@Example.com",
			},
			wantFirst: "jane.doe",
			wantLast:  "jane.doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := deriveNames(&tt.assertion)

			assert.Equal(t, tt.wantFirst, first)
			assert.Equal(t, tt.wantLast, last)
		})
	}
}
