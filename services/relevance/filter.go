// Package relevance decides whether retrieved text is usable context
// for a given question.
package relevance

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// minContextLength rejects snippets too short to ground an answer.
	minContextLength = 20
	// minOverlapRatio is the required fraction of significant question
	// tokens that must also appear in the context.
	minOverlapRatio = 0.1
	// minTokenLength filters out stopword-sized question tokens.
	minTokenLength = 3
)

// TermSets holds the keyword lists the filter matches against. Static
// configuration data, injectable for tests.
type TermSets struct {
	// Ocean terms that an ocean-flavored question expects to see in
	// its context.
	Ocean []string
	// Coordinate terms that mark a question as geographic.
	Coordinate []string
}

// DefaultTermSets returns the ocean/geography term lists.
func DefaultTermSets() TermSets {
	return TermSets{
		Ocean: []string{
			"ocean", "sea", "marine", "water", "salinity", "temperature", "depth",
			"current", "tide", "wave", "coastal", "atlantic", "pacific", "indian", "arctic",
		},
		Coordinate: []string{
			"lat", "latitude", "lon", "longitude", "degree", "coordinate",
		},
	}
}

// Filter scores candidate context against the question.
type Filter struct {
	terms  TermSets
	logger *zap.Logger
}

// NewFilter creates a filter over the given term sets.
func NewFilter(terms TermSets, logger *zap.Logger) *Filter {
	return &Filter{
		terms:  terms,
		logger: logger,
	}
}

// IsRelevant reports whether the context is usable for the question.
// Context shorter than 20 characters is always rejected. An ocean- or
// coordinate-flavored question requires at least one ocean term in the
// context. Finally, at least 10% of the question's significant tokens
// must appear verbatim in the context.
func (f *Filter) IsRelevant(question, context string) bool {
	if len(strings.TrimSpace(context)) < minContextLength {
		return false
	}

	questionLower := strings.ToLower(question)
	contextLower := strings.ToLower(context)

	hasOceanTerms := containsAny(questionLower, f.terms.Ocean)
	hasCoordinateTerms := containsAny(questionLower, f.terms.Coordinate)

	if hasOceanTerms || hasCoordinateTerms {
		if !containsAny(contextLower, f.terms.Ocean) {
			f.logger.Debug("question is about the ocean but context is not")
			return false
		}
	}

	ratio := overlapRatio(questionLower, contextLower)
	if ratio < minOverlapRatio {
		f.logger.Debug("low keyword overlap", zap.Float64("ratio", ratio))
		return false
	}

	return true
}

// overlapRatio computes the fraction of question tokens longer than
// three characters that also appear as context tokens. Exact match, no
// stemming.
func overlapRatio(questionLower, contextLower string) float64 {
	questionTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(questionLower) {
		if len(tok) > minTokenLength {
			questionTokens[tok] = struct{}{}
		}
	}

	contextTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(contextLower) {
		contextTokens[tok] = struct{}{}
	}

	common := 0
	for tok := range questionTokens {
		if _, ok := contextTokens[tok]; ok {
			common++
		}
	}

	denom := len(questionTokens)
	if denom < 1 {
		denom = 1
	}
	return float64(common) / float64(denom)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
