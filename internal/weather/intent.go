package weather

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// stopWordsV1 is the fixed vocabulary stripped from queries before treating
// the remainder as a location name. The list is versioned: changing it changes
// observable extraction results, so revisions get a new constant.
const stopWordsV1 = "weather|forecast|temperature|humidity|rain|sunny|cloudy|wind|hot|cold|in|at|for|of|the"

var (
	stopWordsRe  = regexp.MustCompile(stopWordsV1)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ExtractLocation strips weather vocabulary from a raw query and returns the
// residual text as a candidate location name. It is a heuristic, not a parser:
// matching is by substring, not by word boundary. Returns ok=false when the
// residual is too short to be a plausible place name.
func ExtractLocation(query string) (string, bool) {
	cleaned := stopWordsRe.ReplaceAllString(strings.ToLower(query), " ")
	cleaned = whitespaceRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	// Character count, not bytes: a two-character name is too short no
	// matter how many bytes it encodes to.
	if utf8.RuneCountInString(cleaned) <= 2 {
		return "", false
	}
	return cleaned, true
}
