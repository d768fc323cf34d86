package impl

import (
	"context"
	"testing"
	"time"

	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/service"
	mockSvc "epicblogs/internal/mocks/service"
	mockUc "epicblogs/internal/mocks/usecase"
	"epicblogs/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// handoffServiceFixtures holds all test dependencies for handoff service tests.
type handoffServiceFixtures struct {
	service      usecase.HandoffUsecase
	oauth        *mockSvc.MockOAuthService
	identity     *mockUc.MockIdentityUsecase
	tokenService *mockSvc.MockTokenService
	tickets      *mockSvc.MockTicketStore
}

func createTestHandoffService(t *testing.T) handoffServiceFixtures {
	oauth := mockSvc.NewMockOAuthService(t)
	identity := mockUc.NewMockIdentityUsecase(t)
	tokenService := mockSvc.NewMockTokenService(t)
	tickets := mockSvc.NewMockTicketStore(t)

	svc := NewHandoffService(HandoffServiceParams{
		OAuth:        oauth,
		Identity:     identity,
		TokenService: tokenService,
		Tickets:      tickets,
		Config:       newHandoffTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return handoffServiceFixtures{
		service:      svc,
		oauth:        oauth,
		identity:     identity,
		tokenService: tokenService,
		tickets:      tickets,
	}
}

func TestHandoffService_BeginGoogleLogin(t *testing.T) {
	fx := createTestHandoffService(t)

	fx.oauth.EXPECT().NewState().Return("state-abc", nil)
	fx.oauth.EXPECT().
		AuthorizationURL("state-abc").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=state-abc")

	output, err := fx.service.BeginGoogleLogin(context.Background())

	require.NoError(t, err)
	assert.Contains(t, output.AuthorizationURL, "state=state-abc")
}

func TestHandoffService_BeginGoogleLogin_StateFailure(t *testing.T) {
	fx := createTestHandoffService(t)

	fx.oauth.EXPECT().NewState().Return("", errors.New("entropy exhausted"))

	output, err := fx.service.BeginGoogleLogin(context.Background())

	assert.Error(t, err)
	assert.Nil(t, output)
}

func TestHandoffService_CompleteGoogleLogin_Success(t *testing.T) {
	fx := createTestHandoffService(t)

	ctx := context.Background()
	assertion := newGoogleAssertion()
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "jane.doe@example.com",
		Username: "jane.doe",
	}

	fx.oauth.EXPECT().ConsumeState("state-abc").Return(true)
	fx.oauth.EXPECT().FetchAssertion(ctx, "auth-code").Return(assertion, nil)
	fx.identity.EXPECT().Resolve(ctx, assertion).Return(user, nil)
	fx.tokenService.EXPECT().GenerateToken(user.ID, user.Email).Return("signed.jwt.token", nil)

	var stored *entity.HandoffTicket
	fx.tickets.EXPECT().
		Put(ctx, mock.AnythingOfType("*entity.HandoffTicket")).
		Run(func(ctx context.Context, ticket *entity.HandoffTicket) {
			stored = ticket
		}).
		Return(nil)

	output, err := fx.service.CompleteGoogleLogin(ctx, "state-abc", "auth-code")

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, stored.ID, output.TicketID)
	assert.Len(t, output.TicketID, 32)
	assert.Equal(t, "https://blog.example.com/auth/complete?ticket="+output.TicketID, output.RedirectURL)
	assert.Equal(t, "signed.jwt.token", stored.Token)
	assert.Equal(t, user.ID, stored.Account.ID)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), stored.ExpiresAt, 5*time.Second)
}

func TestHandoffService_CompleteGoogleLogin_TicketsAreUnique(t *testing.T) {
	fx := createTestHandoffService(t)

	ctx := context.Background()
	assertion := newGoogleAssertion()
	user := &entity.User{ID: uuid.New(), Email: "jane.doe@example.com"}

	fx.oauth.EXPECT().ConsumeState(mock.AnythingOfType("string")).Return(true)
	fx.oauth.EXPECT().FetchAssertion(ctx, "auth-code").Return(assertion, nil)
	fx.identity.EXPECT().Resolve(ctx, assertion).Return(user, nil)
	fx.tokenService.EXPECT().GenerateToken(user.ID, user.Email).Return("signed.jwt.token", nil)
	fx.tickets.EXPECT().Put(ctx, mock.AnythingOfType("*entity.HandoffTicket")).Return(nil)

	first, err := fx.service.CompleteGoogleLogin(ctx, "state-1", "auth-code")
	require.NoError(t, err)
	second, err := fx.service.CompleteGoogleLogin(ctx, "state-2", "auth-code")
	require.NoError(t, err)

	assert.NotEqual(t, first.TicketID, second.TicketID)
}

func TestHandoffService_CompleteGoogleLogin_UnknownState(t *testing.T) {
	fx := createTestHandoffService(t)

	fx.oauth.EXPECT().ConsumeState("stale-state").Return(false)

	output, err := fx.service.CompleteGoogleLogin(context.Background(), "stale-state", "auth-code")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAssertion))
}

func TestHandoffService_CompleteGoogleLogin_EmptyState(t *testing.T) {
	fx := createTestHandoffService(t)

	output, err := fx.service.CompleteGoogleLogin(context.Background(), "", "auth-code")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAssertion))
}

func TestHandoffService_CompleteGoogleLogin_MissingCode(t *testing.T) {
	fx := createTestHandoffService(t)

	fx.oauth.EXPECT().ConsumeState("state-abc").Return(true)

	output, err := fx.service.CompleteGoogleLogin(context.Background(), "state-abc", "")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAssertion))
}

func TestHandoffService_CompleteGoogleLogin_AssertionFailure(t *testing.T) {
	fx := createTestHandoffService(t)

	ctx := context.Background()

	fx.oauth.EXPECT().ConsumeState("state-abc").Return(true)
	fx.oauth.EXPECT().
		FetchAssertion(ctx, "bad-code").
		Return(nil, errors.New("token endpoint rejected the code"))

	output, err := fx.service.CompleteGoogleLogin(ctx, "state-abc", "bad-code")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAssertion))
}

func TestHandoffService_RedeemTicket_Success(t *testing.T) {
	fx := createTestHandoffService(t)

	ctx := context.Background()
	account := &entity.AccountSummary{
		ID:       uuid.New(),
		Email:    "jane.doe@example.com",
		Username: "jane.doe",
	}

	fx.tickets.EXPECT().
		Take(ctx, "ticket-id").
		Return(&entity.HandoffTicket{
			ID:        "ticket-id",
			Account:   account,
			Token:     "signed.jwt.token",
			ExpiresAt: time.Now().Add(time.Minute),
		}, nil)

	output, err := fx.service.RedeemTicket(ctx, "ticket-id")

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, account.ID, output.User.ID)
}

func TestHandoffService_RedeemTicket_Unknown(t *testing.T) {
	fx := createTestHandoffService(t)

	ctx := context.Background()

	fx.tickets.EXPECT().
		Take(ctx, "gone-ticket").
		Return(nil, service.ErrTicketNotFound)

	output, err := fx.service.RedeemTicket(ctx, "gone-ticket")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTicketNotFound))
}

func TestHandoffService_RedeemTicket_EmptyID(t *testing.T) {
	fx := createTestHandoffService(t)

	output, err := fx.service.RedeemTicket(context.Background(), "")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTicketNotFound))
}

func TestHandoffService_FailureRedirectURL(t *testing.T) {
	fx := createTestHandoffService(t)

	assert.Equal(t, "https://blog.example.com/login?error=auth_failed", fx.service.FailureRedirectURL())
}
