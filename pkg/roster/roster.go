// Package roster holds the canonical legislator list and resolves extracted
// candidate names against it.
package roster

import (
	"sort"

	"github.com/meclisdata/vekil/pkg/turkish"
)

// Legislator is one roster entry. The roster is the single source of truth
// for legislator identity.
type Legislator struct {
	// Name is the canonical display string, diacritics intact.
	Name string

	// Party is the free-text party label.
	Party string

	// City is the constituency. Informational only.
	City string

	// Key is the normalized name key derived from Name. Not unique by
	// construction; see Collision.
	Key string
}

// Collision records a roster entry whose key was already taken by an
// earlier entry. The earlier entry wins; collisions are surfaced for
// operator review instead of failing the load.
type Collision struct {
	Key  string
	Kept string
	Lost string
}

// Roster is an immutable, key-indexed legislator list.
type Roster struct {
	byKey      map[string]Legislator
	sortedKeys []string
	collisions []Collision
}

// New indexes legislators by their normalized key. Entries with empty names
// are skipped. Iteration order over keys is sorted, so every lookup path is
// deterministic regardless of input order.
func New(legislators []Legislator) *Roster {
	r := &Roster{byKey: make(map[string]Legislator, len(legislators))}

	for _, leg := range legislators {
		leg.Key = turkish.NormalizeKey(leg.Name)
		if leg.Key == "" {
			continue
		}
		if kept, exists := r.byKey[leg.Key]; exists {
			r.collisions = append(r.collisions, Collision{Key: leg.Key, Kept: kept.Name, Lost: leg.Name})
			continue
		}
		r.byKey[leg.Key] = leg
		r.sortedKeys = append(r.sortedKeys, leg.Key)
	}

	sort.Strings(r.sortedKeys)
	return r
}

// Len returns the number of indexed legislators.
func (r *Roster) Len() int { return len(r.byKey) }

// Get looks up a legislator by exact normalized key.
func (r *Roster) Get(key string) (Legislator, bool) {
	leg, ok := r.byKey[key]
	return leg, ok
}

// Keys returns the sorted normalized keys.
func (r *Roster) Keys() []string { return r.sortedKeys }

// All returns the legislators in sorted key order.
func (r *Roster) All() []Legislator {
	out := make([]Legislator, 0, len(r.sortedKeys))
	for _, k := range r.sortedKeys {
		out = append(out, r.byKey[k])
	}
	return out
}

// Collisions returns display names that collapsed onto an already-taken key.
func (r *Roster) Collisions() []Collision { return r.collisions }
