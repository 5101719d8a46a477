package enhance

import (
	"strings"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// encodingName is the tiktoken encoding used for counting.
	encodingName = "cl100k_base"

	// DefaultSafetyMargin is the fraction added to estimates to absorb
	// drift between the local tokenizer and the service's own counting.
	DefaultSafetyMargin = 0.05
)

// punctuation marks counted as structural tokens by the fallback heuristic.
const structuralPunctuation = ".,;:!?()[]{}"

// Estimator counts tokens in prompt text. It prefers the cl100k_base
// encoding and falls back to a structural heuristic when the encoding
// cannot be loaded (for example, offline environments).
type Estimator struct {
	enc *tiktoken.Tiktoken
}

// NewEstimator creates an Estimator, probing the encoding once.
// Estimators never fail to construct: if the encoding is unavailable
// the heuristic fallback is used for all counts.
func NewEstimator() *Estimator {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return &Estimator{}
	}
	return &Estimator{enc: enc}
}

// NewHeuristicEstimator creates an Estimator that always uses the
// fallback heuristic, regardless of encoding availability.
func NewHeuristicEstimator() *Estimator {
	return &Estimator{}
}

// UsingEncoding reports whether counts come from the cl100k_base
// encoding rather than the heuristic.
func (e *Estimator) UsingEncoding() bool {
	return e.enc != nil
}

// Count returns the token count for text. Empty text counts as zero.
// Count never fails; unusual input degrades to an approximation.
func (e *Estimator) Count(text string) int {
	if text == "" {
		return 0
	}
	if e.enc != nil {
		return len(e.enc.Encode(text, nil, nil))
	}
	return heuristicCount(text)
}

// CountWithMargin returns the token count inflated by margin and
// rounded down. A margin of 0.05 adds five percent headroom.
func (e *Estimator) CountWithMargin(text string, margin float64) int {
	return int(float64(e.Count(text)) * (1 + margin))
}

// heuristicCount approximates a token count without an encoding.
// It takes the larger of a character-based estimate and a structural
// count of words, line breaks, and punctuation. Words longer than ten
// characters get an extra token since they usually split in BPE.
func heuristicCount(text string) int {
	charEstimate := utf8.RuneCountInString(text) / 4

	words := strings.Fields(text)
	structural := len(words) + strings.Count(text, "\n")
	for _, r := range text {
		if strings.ContainsRune(structuralPunctuation, r) {
			structural++
		}
	}
	for _, w := range words {
		if utf8.RuneCountInString(w) > 10 {
			structural++
		}
	}

	if charEstimate > structural {
		return charEstimate
	}
	return structural
}

// TokenStats holds token counts surrounding an enhancement.
type TokenStats struct {
	Original int
	Enhanced int
	Limit    int
}

// WithinLimit reports whether the enhanced prompt fits the limit.
func (s TokenStats) WithinLimit() bool {
	return s.Enhanced <= s.Limit
}

// Ratio returns the enhanced-to-original token ratio, or zero when the
// original count is zero.
func (s TokenStats) Ratio() float64 {
	if s.Original == 0 {
		return 0
	}
	return float64(s.Enhanced) / float64(s.Original)
}

// Headroom returns how many tokens remain under the limit. Negative
// values indicate the enhanced prompt exceeds the limit.
func (s TokenStats) Headroom() int {
	return s.Limit - s.Enhanced
}
