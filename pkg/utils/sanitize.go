package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all HTML/script markup from user-supplied text.
// The strict policy escapes what it cannot drop, so unescape once to keep
// plain-text punctuation (e.g. "&") readable in stored reviews.
func SanitizeText(s string) string {
	return html.UnescapeString(strictPolicy.Sanitize(strings.TrimSpace(s)))
}

var profanityPatterns = func() []*regexp.Regexp {
	// very simple word list; swap for a real list/service if moderation load grows
	words := []string{"fuck", "shit", "bitch"}
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile(`(?i)\b`+w+`\b`))
	}
	return patterns
}()

// IsProfane reports whether the text trips the profanity word list. The
// submission path records the flag but never blocks on it.
func IsProfane(s string) bool {
	for _, re := range profanityPatterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
