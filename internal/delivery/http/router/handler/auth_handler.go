package handler

import (
	"log/slog"
	"net/http"

	"epicblogs/internal/delivery/http/response"
	"epicblogs/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the browser login handoff.
type AuthHandler struct {
	uc     usecase.HandoffUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.HandoffUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// GoogleLogin redirects the browser to the Google consent page.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	output, err := h.uc.BeginGoogleLogin(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, output.AuthorizationURL)
}

// GoogleCallback handles the provider redirect back from Google. The browser
// always ends up on the client app: with a ticket on success, with an opaque
// error marker on any failure.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")

	output, err := h.uc.CompleteGoogleLogin(c.Request().Context(), state, code)
	if err != nil {
		h.logger.Warn("google callback failed", slog.Any("error", err))

		return c.Redirect(http.StatusFound, h.uc.FailureRedirectURL())
	}

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// RedeemTicket trades a single-use ticket for the parked session credential.
func (h *AuthHandler) RedeemTicket(c echo.Context) error {
	ticketID := c.Param("id")

	output, err := h.uc.RedeemTicket(c.Request().Context(), ticketID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output)
}
