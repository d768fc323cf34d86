package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"epicblogs/internal/domain/service"
	mockSvc "epicblogs/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newAuthTestContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID}, nil)

	c, _ := newAuthTestContext("Bearer good-token")

	var seenID uuid.UUID
	next := func(c echo.Context) error {
		id, ok := UserID(c)
		assert.True(t, ok)
		seenID = id

		return nil
	}

	err := m.Authenticate(next)(c)

	assert.NoError(t, err)
	assert.Equal(t, userID, seenID)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("")

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext("Basic dXNlcjpwYXNz")

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))

	c, rec := newAuthTestContext("Bearer expired")

	err := m.Authenticate(func(echo.Context) error {
		t.Fatal("next should not run")

		return nil
	})(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestOptionalAuthenticate_AnonymousPassesThrough(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, _ := newAuthTestContext("")

	called := false
	err := m.OptionalAuthenticate(func(c echo.Context) error {
		called = true
		_, ok := UserID(c)
		assert.False(t, ok)

		return nil
	})(c)

	assert.NoError(t, err)
	assert.True(t, called)
}
