package carousel

import (
	"fmt"
	"strings"
)

// Policy decides how an out-of-range navigation target is resolved.
type Policy int

const (
	// Wrap resolves targets below zero to the last slide and targets past
	// the end to the first slide.
	Wrap Policy = iota
	// Clamp ignores targets outside the deck, producing hard stops at the
	// first and last slides.
	Clamp
)

// DefaultPolicy is used when no policy is configured.
const DefaultPolicy = Wrap

// ParsePolicy converts a policy name into a Policy.
// An empty string yields DefaultPolicy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultPolicy, nil
	case "wrap":
		return Wrap, nil
	case "clamp":
		return Clamp, nil
	default:
		return DefaultPolicy, fmt.Errorf("unknown navigation policy %q", s)
	}
}

// String returns the policy name as used in settings files.
func (p Policy) String() string {
	switch p {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// Normalize resolves target into a valid index for a deck of n slides.
// The second result is false when the request must be ignored.
func (p Policy) Normalize(target, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}

	if target >= 0 && target < n {
		return target, true
	}

	if p == Clamp {
		return 0, false
	}

	if target < 0 {
		return n - 1, true
	}

	return 0, true
}
