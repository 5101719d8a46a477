package integration

import (
	"math"
	"strings"
	"testing"

	"github.com/HartBrook/burnish/internal/enhance"
)

// Asserter provides assertion helpers over an enhancement result and
// the scripted service that produced it.
type Asserter struct {
	t      *testing.T
	result *enhance.Result
	svc    *Service
}

// NewAsserter creates an asserter for the given result.
func NewAsserter(t *testing.T, result *enhance.Result, svc *Service) *Asserter {
	return &Asserter{t: t, result: result, svc: svc}
}

// EnhancedContains checks the enhanced prompt for a substring.
func (a *Asserter) EnhancedContains(text string) bool {
	return strings.Contains(a.result.EnhancedText, text)
}

// WasCompressed reports whether the result went through compression.
func (a *Asserter) WasCompressed() bool {
	return a.result.Compressed
}

// RunExpectations runs all success-path expectations from a fixture.
func (a *Asserter) RunExpectations(expect FixtureExpect) {
	a.t.Helper()

	if a.result.Compressed != expect.Compressed {
		a.t.Errorf("compressed = %v, want %v", a.result.Compressed, expect.Compressed)
	}

	if expect.APICalls > 0 {
		if got := a.svc.CallCount(); got != expect.APICalls {
			a.t.Errorf("service saw %d calls, want %d", got, expect.APICalls)
		}
	}

	if len(expect.Temperatures) > 0 {
		got := a.svc.Temperatures()
		if len(got) != len(expect.Temperatures) {
			a.t.Errorf("temperatures = %v, want %v", got, expect.Temperatures)
		} else {
			for i, want := range expect.Temperatures {
				if math.Abs(got[i]-want) > 1e-6 {
					a.t.Errorf("temperature[%d] = %v, want %v", i, got[i], want)
				}
			}
		}
	}

	for _, text := range expect.EnhancedContains {
		if !a.EnhancedContains(text) {
			a.t.Errorf("expected enhanced prompt to contain %q, but not found", text)
		}
	}

	// Results that come back without an error always fit the budget.
	if !a.result.Stats.WithinLimit() {
		a.t.Errorf("enhanced prompt is %d tokens, above the %d token limit",
			a.result.Stats.Enhanced, a.result.Stats.Limit)
	}
}
