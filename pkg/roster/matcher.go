package roster

import (
	"sort"
	"strings"
)

// Outcome describes how a candidate key was (or was not) resolved.
type Outcome int

const (
	// Exact means the key matched a roster entry directly.
	Exact Outcome = iota

	// Fuzzy means the surname fallback found exactly one containing key.
	Fuzzy

	// Ambiguous means the surname fallback found two or more containing
	// keys. No match is returned; attribution would be a guess.
	Ambiguous

	// Miss means no roster key matched at all.
	Miss
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Exact:
		return "exact"
	case Fuzzy:
		return "fuzzy"
	case Ambiguous:
		return "ambiguous"
	default:
		return "miss"
	}
}

// Ambiguity records a candidate whose surname matched multiple roster keys.
// These carry a different risk than misses: a naive first-match pick would
// silently misattribute activity between legislators sharing a surname.
type Ambiguity struct {
	Key        string
	Candidates []string
}

// Matcher resolves candidate keys against a roster and accumulates the
// unmatched and ambiguous names seen along the way. Not safe for concurrent
// use; a scoring pass owns one matcher.
type Matcher struct {
	roster *Roster
	fuzzy  bool

	unmatched map[string]int
	ambiguous map[string][]string
}

// MatcherOption configures a Matcher.
type MatcherOption func(*Matcher)

// WithFuzzy enables or disables the surname-containment fallback. Strict
// runs disable it to trade recall for precision.
func WithFuzzy(enabled bool) MatcherOption {
	return func(m *Matcher) { m.fuzzy = enabled }
}

// NewMatcher returns a matcher over the given roster. The fuzzy fallback is
// on by default.
func NewMatcher(r *Roster, opts ...MatcherOption) *Matcher {
	m := &Matcher{
		roster:    r,
		fuzzy:     true,
		unmatched: make(map[string]int),
		ambiguous: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match resolves a normalized candidate key. Step one is an exact lookup;
// on a miss the last whitespace-delimited token is treated as a surname and
// scanned for as a substring of every roster key, in sorted key order. A
// unique containment is a fuzzy match; more than one is ambiguous and
// resolves to nothing. Misses and ambiguities are recorded for the report —
// the caller must never fabricate a match.
func (m *Matcher) Match(key string) (Legislator, Outcome) {
	if key == "" {
		return Legislator{}, Miss
	}

	if leg, ok := m.roster.Get(key); ok {
		return leg, Exact
	}

	if m.fuzzy {
		surname := key
		if i := strings.LastIndexByte(key, ' '); i >= 0 {
			surname = key[i+1:]
		}

		var candidates []string
		for _, rosterKey := range m.roster.sortedKeys {
			if strings.Contains(rosterKey, surname) {
				candidates = append(candidates, rosterKey)
			}
		}

		switch len(candidates) {
		case 0:
			// fall through to miss
		case 1:
			leg, _ := m.roster.Get(candidates[0])
			return leg, Fuzzy
		default:
			if _, seen := m.ambiguous[key]; !seen {
				m.ambiguous[key] = candidates
			}
			return Legislator{}, Ambiguous
		}
	}

	m.unmatched[key]++
	return Legislator{}, Miss
}

// Report summarizes the names a matcher could not resolve.
type Report struct {
	// Unmatched maps each unresolved key to the number of times it was seen.
	Unmatched map[string]int

	// Ambiguities lists surname collisions in sorted key order.
	Ambiguities []Ambiguity
}

// TotalUnmatched sums the occurrence counts of unmatched names.
func (r *Report) TotalUnmatched() int {
	total := 0
	for _, n := range r.Unmatched {
		total += n
	}
	return total
}

// Report returns the accumulated unmatched and ambiguous names.
func (m *Matcher) Report() *Report {
	rep := &Report{Unmatched: make(map[string]int, len(m.unmatched))}
	for k, n := range m.unmatched {
		rep.Unmatched[k] = n
	}

	keys := make([]string, 0, len(m.ambiguous))
	for k := range m.ambiguous {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rep.Ambiguities = append(rep.Ambiguities, Ambiguity{Key: k, Candidates: m.ambiguous[k]})
	}
	return rep
}
