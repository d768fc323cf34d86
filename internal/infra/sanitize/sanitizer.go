// Package sanitize cleans user-submitted HTML before it is stored.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"epicblogs/internal/domain/service"
)

// htmlSanitizer implements ContentSanitizer on top of bluemonday policies.
type htmlSanitizer struct {
	rich  *bluemonday.Policy
	plain *bluemonday.Policy
}

// NewSanitizer builds the sanitizer used for post bodies and comments.
// The rich policy keeps the formatting tags emitted by the editor and
// allows images, since posts embed uploaded cover figures inline.
func NewSanitizer() service.ContentSanitizer {
	rich := bluemonday.UGCPolicy()
	rich.AllowAttrs("class").OnElements("pre", "code", "span")
	rich.AllowDataURIImages()

	return &htmlSanitizer{
		rich:  rich,
		plain: bluemonday.StrictPolicy(),
	}
}

// SanitizeHTML removes unsafe markup while keeping common formatting tags.
func (s *htmlSanitizer) SanitizeHTML(content string) string {
	return s.rich.Sanitize(content)
}

// SanitizeText strips all markup, leaving plain text only.
func (s *htmlSanitizer) SanitizeText(content string) string {
	return strings.TrimSpace(s.plain.Sanitize(content))
}
