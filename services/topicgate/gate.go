// Package topicgate classifies incoming questions before any retrieval
// or model call is made.
package topicgate

import (
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Decision is the outcome of classifying a question.
type Decision int

const (
	// OnTopic questions proceed through retrieval and generation.
	OnTopic Decision = iota
	// Greeting questions short-circuit with the fixed greeting reply.
	Greeting
	// OffTopic questions short-circuit with the fixed decline reply.
	OffTopic
)

// Fixed replies for the short-circuit paths.
const (
	GreetingReply = "Hello! I am ARGO, your Oceanography Assistant. How can I help you with marine data today?"
	DeclineReply  = "I am an oceanography assistant. My knowledge is focused on marine science, so I can only respond to questions related to the ocean. Please ask me something about a marine topic."
)

// Gate classifies questions as greeting, off-topic or on-topic using
// keyword heuristics over a fixed vocabulary.
type Gate struct {
	vocab      Vocabulary
	greetingRe *regexp.Regexp
	logger     *zap.Logger
}

// NewGate creates a gate over the given vocabulary.
func NewGate(vocab Vocabulary, logger *zap.Logger) *Gate {
	alternatives := make([]string, len(Greetings()))
	for i, g := range Greetings() {
		alternatives[i] = regexp.QuoteMeta(g)
	}
	re := regexp.MustCompile(`(?i)\b(` + strings.Join(alternatives, "|") + `)\b`)

	return &Gate{
		vocab:      vocab,
		greetingRe: re,
		logger:     logger,
	}
}

// Classify evaluates the greeting check first, then the topic check.
func (g *Gate) Classify(question string) Decision {
	if g.isGreeting(question) {
		return Greeting
	}
	if !g.isOceanRelated(question) {
		return OffTopic
	}
	return OnTopic
}

// isGreeting matches any greeting as a whole word anywhere in the
// question, case-insensitively.
func (g *Gate) isGreeting(question string) bool {
	return g.greetingRe.MatchString(strings.TrimSpace(question))
}

// isOceanRelated applies the disambiguation rule: an ambiguous term
// without ocean context rejects the question outright; otherwise any
// term from the combined vocabulary accepts it.
func (g *Gate) isOceanRelated(question string) bool {
	q := strings.ToLower(question)

	hasAmbiguous := containsAny(q, g.vocab.Ambiguous)
	hasContext := containsAny(q, g.vocab.OceanContext)

	if hasAmbiguous && !hasContext {
		g.logger.Debug("ambiguous term without ocean context, rejecting",
			zap.String("question", question))
		return false
	}

	return hasAmbiguous || hasContext || containsAny(q, g.vocab.Extended)
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
