// Package query turns raw user questions into retrieval queries.
package query

import (
	"regexp"
	"strings"
)

// maxQueryLength bounds the retrieval query; embedding and search
// backends do not need more than the leading phrase of a question.
const maxQueryLength = 100

var (
	disallowedChars = regexp.MustCompile(`[^\w\s.-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases, strips punctuation (word characters, whitespace,
// '.' and '-' are kept), collapses whitespace and truncates to 100
// characters. Pure and total; the result is used only as a retrieval
// query, never as a cache key.
func Normalize(question string) string {
	q := strings.ToLower(strings.TrimSpace(question))
	q = disallowedChars.ReplaceAllString(q, " ")
	q = whitespaceRuns.ReplaceAllString(q, " ")
	if len(q) > maxQueryLength {
		q = q[:maxQueryLength]
	}
	return q
}
