// Package google implements the provider side of the login handoff against
// Google's OAuth 2.0 endpoints.
package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"epicblogs/config"
	"epicblogs/internal/domain/entity"
	"epicblogs/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	googleOAuthURL = "https://accounts.google.com/o/oauth2/v2/auth"
	googleTokenURL = "https://oauth2.googleapis.com/token"

	stateTTL = 10 * time.Minute
)

var defaultScopes = []string{"openid", "email", "profile"}

// OAuthService handles Google OAuth infrastructure operations.
type OAuthService struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scopes       []string
	client       *http.Client
	logger       *slog.Logger

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	scopes := defaultScopes
	if len(cfg.GoogleOAuth.Scopes) != 0 {
		scopes = cfg.GoogleOAuth.Scopes
	}

	return &OAuthService{
		clientID:     cfg.GoogleOAuth.ClientID,
		clientSecret: cfg.GoogleOAuth.ClientSecret,
		redirectURI:  cfg.GoogleOAuth.RedirectURI,
		scopes:       scopes,
		client:       &http.Client{Timeout: 15 * time.Second},
		logger:       logger,
		stateStore:   make(map[string]time.Time),
	}
}

// NewState issues and remembers an opaque single-use state value.
func (s *OAuthService) NewState() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", errors.Wrap(err, "failed to generate state")
	}
	state := hex.EncodeToString(bytes)

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.stateStore[state] = time.Now().Add(stateTTL)
	s.cleanupExpiredStates()

	return state, nil
}

// cleanupExpiredStates removes expired state parameters. Caller holds stateMutex.
func (s *OAuthService) cleanupExpiredStates() {
	now := time.Now()
	for state, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, state)
		}
	}
}

// ConsumeState checks and invalidates a previously issued state value.
// Used states are removed to prevent replay attacks.
func (s *OAuthService) ConsumeState(state string) bool {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return time.Now().Before(expiry)
}

// AuthorizationURL constructs the Google consent page URL carrying the given state.
func (s *OAuthService) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.clientID)
	params.Set("redirect_uri", s.redirectURI)
	params.Set("scope", strings.Join(s.scopes, " "))
	params.Set("response_type", "code")
	params.Set("state", state)

	return googleOAuthURL + "?" + params.Encode()
}

// Provider returns the OAuth provider type
func (s *OAuthService) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// FetchAssertion exchanges an authorization code for tokens and verifies the
// ID token that comes back, returning the asserted identity.
func (s *OAuthService) FetchAssertion(ctx context.Context, code string) (*service.ProviderAssertion, error) {
	idToken, err := s.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	claims, err := parseIDToken(idToken)
	if err != nil {
		s.logger.Error("Failed to parse ID token", "error", err)

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if err := verifyTokenClaims(claims, s.clientID, time.Now()); err != nil {
		s.logger.Error("Token verification failed", "error", err)

		return nil, errors.Wrap(err, "token verification failed")
	}

	s.logger.Info("Google ID token verified successfully",
		slog.String("subject", claims.Sub),
		slog.String("email", claims.Email))

	return &service.ProviderAssertion{
		Provider:      entity.ProviderTypeGoogle,
		SubjectID:     claims.Sub,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		GivenName:     claims.GivenName,
		FamilyName:    claims.FamilyName,
		AvatarURL:     claims.Picture,
	}, nil
}

// exchangeCode trades an authorization code for the token response's ID token.
func (s *OAuthService) exchangeCode(ctx context.Context, code string) (string, error) {
	data := url.Values{}
	data.Set("client_id", s.clientID)
	data.Set("client_secret", s.clientSecret)
	data.Set("code", code)
	data.Set("grant_type", "authorization_code")
	data.Set("redirect_uri", s.redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, googleTokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to create token exchange request")
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to exchange code for token")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.Errorf("token exchange failed with status %d: %s", resp.StatusCode, string(body))
	}

	var tokenResponse struct {
		AccessToken string `json:"access_token"`
		IDToken     string `json:"id_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&tokenResponse); err != nil {
		return "", errors.Wrap(err, "failed to decode token response")
	}

	if tokenResponse.IDToken == "" {
		return "", errors.New("token response missing id_token")
	}

	return tokenResponse.IDToken, nil
}
