package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML_KeepsFormatting(t *testing.T) {
	s := NewSanitizer()

	in := `<p>Hello <strong>world</strong></p><ul><li>first</li></ul>`
	out := s.SanitizeHTML(in)

	assert.Contains(t, out, "<strong>world</strong>")
	assert.Contains(t, out, "<li>first</li>")
}

func TestSanitizeHTML_StripsScripts(t *testing.T) {
	s := NewSanitizer()

	tests := []struct {
		name string
		in   string
		bad  string
	}{
		{name: "script tag", in: `<p>hi</p><script>alert(1)</script>`, bad: "<script"},
		{name: "event handler", in: `<img src="x" onerror="alert(1)">`, bad: "onerror"},
		{name: "javascript url", in: `<a href="javascript:alert(1)">x</a>`, bad: "javascript:"},
		{name: "iframe", in: `<iframe src="https://evil.example.com"></iframe>`, bad: "<iframe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotContains(t, s.SanitizeHTML(tt.in), tt.bad)
		})
	}
}

func TestSanitizeText_StripsAllMarkup(t *testing.T) {
	s := NewSanitizer()

	out := s.SanitizeText(`  <p>plain <em>text</em> only</p> `)
	assert.Equal(t, "plain text only", out)
}
