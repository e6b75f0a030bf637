package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeTextStripsMarkup(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text untouched", "Great service", "Great service"},
		{"trims whitespace", "  Sara  ", "Sara"},
		{"drops script tags", `<script>alert(1)</script>hello`, "hello"},
		{"drops inline markup", `<b>bold</b> claim`, "bold claim"},
		{"drops img onerror", `<img src=x onerror=alert(1)>car wax`, "car wax"},
		{"keeps plain punctuation", "wax & polish", "wax & polish"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SanitizeText(tc.input))
		})
	}
}

func TestIsProfane(t *testing.T) {
	assert.True(t, IsProfane("what the fuck"))
	assert.True(t, IsProfane("SHIT happens"))
	assert.False(t, IsProfane("Great service"))
	// word-boundary match only
	assert.False(t, IsProfane("shiitake mushrooms"))
}
