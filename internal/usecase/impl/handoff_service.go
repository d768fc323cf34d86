package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"epicblogs/config"
	deliverycontext "epicblogs/internal/delivery/context"
	"epicblogs/internal/domain/entity"
	domainerrors "epicblogs/internal/domain/errors"
	"epicblogs/internal/domain/service"
	"epicblogs/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultTicketTTL = 5 * time.Minute

// handoffService implements the HandoffUsecase interface.
type handoffService struct {
	oauth         service.OAuthService
	identity      usecase.IdentityUsecase
	tokenService  service.TokenService
	tickets       service.TicketStore
	ticketTTL     time.Duration
	clientBaseURL string
	logger        *slog.Logger
}

// HandoffServiceParams holds dependencies for handoffService, injected by Fx.
type HandoffServiceParams struct {
	fx.In

	OAuth        service.OAuthService
	Identity     usecase.IdentityUsecase
	TokenService service.TokenService
	Tickets      service.TicketStore
	Config       *config.Config
	Logger       *slog.Logger
}

// NewHandoffService is the constructor for handoffService.
func NewHandoffService(params HandoffServiceParams) usecase.HandoffUsecase {
	ticketTTL := defaultTicketTTL
	if params.Config.Handoff != nil && params.Config.Handoff.TicketTTL > 0 {
		ticketTTL = params.Config.Handoff.TicketTTL
	}

	clientBaseURL := ""
	if params.Config.Client != nil {
		clientBaseURL = strings.TrimRight(params.Config.Client.BaseURL, "/")
	}

	return &handoffService{
		oauth:         params.OAuth,
		identity:      params.Identity,
		tokenService:  params.TokenService,
		tickets:       params.Tickets,
		ticketTTL:     ticketTTL,
		clientBaseURL: clientBaseURL,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *handoffService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginGoogleLogin starts the provider dance and returns the consent page URL.
func (srv *handoffService) BeginGoogleLogin(ctx context.Context) (*usecase.BeginLoginOutput, error) {
	state, err := srv.oauth.NewState()
	if err != nil {
		srv.log(ctx).Error("Failed to issue login state", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to begin login")
	}

	return &usecase.BeginLoginOutput{
		AuthorizationURL: srv.oauth.AuthorizationURL(state),
	}, nil
}

// CompleteGoogleLogin handles the provider callback. On success the browser is
// sent back to the client with a fresh single-use ticket; every failure path
// sends it back with the same opaque error marker, the detail stays in logs.
func (srv *handoffService) CompleteGoogleLogin(ctx context.Context, state, code string) (*usecase.CompleteLoginOutput, error) {
	if state == "" || !srv.oauth.ConsumeState(state) {
		srv.log(ctx).Warn("Login callback with unknown or expired state")

		return nil, domainerrors.ErrInvalidAssertion.WrapMessage("invalid state")
	}
	if code == "" {
		srv.log(ctx).Warn("Login callback without authorization code")

		return nil, domainerrors.ErrInvalidAssertion.WrapMessage("missing authorization code")
	}

	assertion, err := srv.oauth.FetchAssertion(ctx, code)
	if err != nil {
		srv.log(ctx).Warn("Failed to verify provider assertion", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidAssertion.WrapMessage("assertion verification failed")
	}

	user, err := srv.identity.Resolve(ctx, assertion)
	if err != nil {
		return nil, err
	}

	token, err := srv.tokenService.GenerateToken(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to mint session credential", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to mint session credential")
	}

	ticketID, err := newTicketID()
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue ticket")
	}

	ticket := &entity.HandoffTicket{
		ID:        ticketID,
		Account:   user.Summary(),
		Token:     token,
		ExpiresAt: time.Now().Add(srv.ticketTTL),
	}
	if err := srv.tickets.Put(ctx, ticket); err != nil {
		srv.log(ctx).Error("Failed to park session behind ticket", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store ticket")
	}

	srv.log(ctx).Info("Login handoff ticket issued", slog.Any("userID", user.ID))

	return &usecase.CompleteLoginOutput{
		TicketID:    ticketID,
		RedirectURL: srv.clientBaseURL + "/auth/complete?ticket=" + ticketID,
	}, nil
}

// FailureRedirectURL is where the browser lands when any callback step fails.
// The marker is deliberately opaque.
func (srv *handoffService) FailureRedirectURL() string {
	return srv.clientBaseURL + "/login?error=auth_failed"
}

// RedeemTicket trades a single-use ticket for the parked session credential.
func (srv *handoffService) RedeemTicket(ctx context.Context, ticketID string) (*usecase.SessionOutput, error) {
	if ticketID == "" {
		return nil, domainerrors.ErrTicketNotFound.WrapMessage("empty ticket id")
	}

	ticket, err := srv.tickets.Take(ctx, ticketID)
	if err != nil {
		if errors.Is(err, service.ErrTicketNotFound) {
			srv.log(ctx).Warn("Ticket redemption failed")

			return nil, domainerrors.ErrTicketNotFound.WrapMessage("unknown or expired ticket")
		}

		return nil, errors.Wrap(err, "failed to take ticket")
	}

	return &usecase.SessionOutput{
		Token: ticket.Token,
		User:  ticket.Account,
	}, nil
}

// newTicketID generates a cryptographically random ticket identifier.
func newTicketID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate ticket id")
	}

	return hex.EncodeToString(bytes), nil
}
