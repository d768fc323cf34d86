package impl

import (
	"io"
	"log/slog"
	"time"

	"epicblogs/config"
	"epicblogs/internal/domain/entity"
	"epicblogs/internal/domain/service"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newHandoffTestConfig() *config.Config {
	return &config.Config{
		Client: &config.ClientConfig{
			BaseURL: "https://blog.example.com",
		},
		Handoff: &config.HandoffConfig{
			TicketTTL: 10 * time.Minute,
		},
	}
}

// newGoogleAssertion builds a verified assertion the way the Google callback would.
func newGoogleAssertion() *service.ProviderAssertion {
	return &service.ProviderAssertion{
		Provider:      entity.ProviderTypeGoogle,
		SubjectID:     "google-sub-12345",
		Email:         "jane.doe@example.com",
		EmailVerified: true,
		Name:          "Jane Doe",
		GivenName:     "Jane",
		FamilyName:    "Doe",
		AvatarURL:     "https://lh3.example.com/avatar.png",
	}
}
