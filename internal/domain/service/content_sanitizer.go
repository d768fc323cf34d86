package service

// ContentSanitizer defines the interface for cleaning user-submitted rich text.
// Post bodies arrive as HTML from the editor and must be stripped of anything
// that could execute in a reader's browser before being stored.
type ContentSanitizer interface {
	// SanitizeHTML removes unsafe markup while keeping common formatting tags.
	SanitizeHTML(content string) string

	// SanitizeText strips all markup, leaving plain text only.
	SanitizeText(content string) string
}
