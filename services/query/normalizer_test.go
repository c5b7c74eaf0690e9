package query

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Lowercases(t *testing.T) {
	assert.Equal(t, "pacific ocean salinity", Normalize("Pacific Ocean SALINITY"))
}

func TestNormalize_StripsPunctuation(t *testing.T) {
	got := Normalize("What's the pH of the ocean?!")
	assert.Equal(t, "what s the ph of the ocean ", got)
}

func TestNormalize_KeepsDotsAndDashes(t *testing.T) {
	got := Normalize("argo float 3.5 deep-sea data")
	assert.Equal(t, "argo float 3.5 deep-sea data", got)
}

func TestNormalize_CollapsesWhitespace(t *testing.T) {
	got := Normalize("tides   and \t\n currents")
	assert.Equal(t, "tides and currents", got)
	assert.NotContains(t, got, "  ")
}

func TestNormalize_TruncatesTo100(t *testing.T) {
	long := strings.Repeat("ocean currents ", 20)
	got := Normalize(long)
	assert.LessOrEqual(t, len(got), 100)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"what is the salinity of the pacific ocean",
		"deep-sea trench depth 10.9",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestNormalize_OutputAlphabet(t *testing.T) {
	got := Normalize(`"El Niño"? (effects) on [currents]; cost: $5!`)
	for _, r := range got {
		ok := r == ' ' || r == '.' || r == '-' || r == '_' ||
			(r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r > 127
		assert.True(t, ok, "unexpected rune %q in %q", r, got)
	}
}
