// Package fallback provides the deterministic, network-independent
// suggestion path used when no AI backend produces a usable command.
package fallback

import (
	"fmt"
	"strings"

	"github.com/siahcodes/quickcmd/pkg/model"
)

// HeuristicWarning marks every matched fallback suggestion as a non-AI
// heuristic result.
const HeuristicWarning = "Enhanced fallback suggestion - AI service not available"

// UnmatchedWarning marks the placeholder returned when no rule matches.
const UnmatchedWarning = "No matching pattern found - try being more specific"

// Matcher scores requests against a static rule table. The zero-cost
// constructor takes the table explicitly so scoring stays pure.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a matcher over the given rule table.
func NewMatcher(rules []Rule) *Matcher {
	return &Matcher{rules: rules}
}

// Match scores the request against every rule and returns the template
// of the best one. A rule's score is the summed character length of its
// trigger phrases that appear as substrings of the lower-cased request;
// only a strictly higher score displaces the current best, so ties keep
// the first rule in table order. When nothing matches, Match
// synthesizes a renderable placeholder rather than failing. The result
// is fully determined by the request and the table.
func (m *Matcher) Match(request string) model.Suggestion {
	lower := strings.ToLower(request)

	var best *Rule
	bestScore := 0
	for i := range m.rules {
		score := 0
		for _, trigger := range m.rules[i].Triggers {
			if strings.Contains(lower, trigger) {
				score += len(trigger)
			}
		}
		if score > bestScore {
			bestScore = score
			best = &m.rules[i]
		}
	}

	if best == nil {
		return model.Suggestion{
			Command:     fmt.Sprintf("# No specific pattern found for: %q", request),
			Description: `Try commands like "list services", "disk space", "system info", or "network adapters"`,
			Shell:       model.ShellPowerShell,
			Warning:     UnmatchedWarning,
		}
	}

	s := best.Suggestion
	s.Warning = HeuristicWarning
	return s
}
