package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "epicblogs/internal/domain/errors"
	mockUc "epicblogs/internal/mocks/usecase"
	"epicblogs/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUc.MockHandoffUsecase) {
	uc := mockUc.NewMockHandoffUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthHandler(uc, logger), uc
}

func newEchoContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthHandler_GoogleLogin_RedirectsToConsentPage(t *testing.T) {
	h, uc := newTestAuthHandler(t)
	c, rec := newEchoContext(http.MethodGet, "/auth/google")

	uc.EXPECT().BeginGoogleLogin(mock.Anything).Return(&usecase.BeginLoginOutput{
		AuthorizationURL: "https://accounts.google.com/o/oauth2/v2/auth?state=abc",
	}, nil)

	err := h.GoogleLogin(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/v2/auth?state=abc", rec.Header().Get("Location"))
}

func TestAuthHandler_GoogleCallback_RedirectsWithTicket(t *testing.T) {
	h, uc := newTestAuthHandler(t)
	c, rec := newEchoContext(http.MethodGet, "/auth/google/callback?state=st&code=co")

	uc.EXPECT().CompleteGoogleLogin(mock.Anything, "st", "co").Return(&usecase.CompleteLoginOutput{
		TicketID:    "deadbeef",
		RedirectURL: "https://blog.example.com/auth/complete?ticket=deadbeef",
	}, nil)

	err := h.GoogleCallback(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://blog.example.com/auth/complete?ticket=deadbeef", rec.Header().Get("Location"))
}

func TestAuthHandler_GoogleCallback_FailureRedirectsOpaquely(t *testing.T) {
	h, uc := newTestAuthHandler(t)
	c, rec := newEchoContext(http.MethodGet, "/auth/google/callback?state=bad&code=co")

	uc.EXPECT().CompleteGoogleLogin(mock.Anything, "bad", "co").
		Return(nil, errors.New("state unknown"))
	uc.EXPECT().FailureRedirectURL().Return("https://blog.example.com/login?error=auth_failed")

	err := h.GoogleCallback(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusFound, rec.Code)
	location := rec.Header().Get("Location")
	assert.Equal(t, "https://blog.example.com/login?error=auth_failed", location)
	assert.NotContains(t, location, "state unknown")
}

func TestAuthHandler_RedeemTicket_ReturnsSession(t *testing.T) {
	h, uc := newTestAuthHandler(t)
	c, rec := newEchoContext(http.MethodGet, "/auth/ticket/deadbeef")
	c.SetParamNames("id")
	c.SetParamValues("deadbeef")

	uc.EXPECT().RedeemTicket(mock.Anything, "deadbeef").Return(&usecase.SessionOutput{
		Token: "signed.jwt.token",
	}, nil)

	err := h.RedeemTicket(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed.jwt.token")
}

func TestAuthHandler_RedeemTicket_UnknownTicket(t *testing.T) {
	h, uc := newTestAuthHandler(t)
	c, _ := newEchoContext(http.MethodGet, "/auth/ticket/unknown")
	c.SetParamNames("id")
	c.SetParamValues("unknown")

	uc.EXPECT().RedeemTicket(mock.Anything, "unknown").
		Return(nil, domainerrors.ErrTicketNotFound.WrapMessage("ticket not found"))

	err := h.RedeemTicket(c)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTicketNotFound))
}
