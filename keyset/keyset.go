// Package keyset holds sets of translation keys and assembles the
// canonical key sets for application and component-library source.
package keyset

import (
	"sort"

	"github.com/samber/lo"
)

// Set is a case-sensitive set of keys.
type Set map[string]struct{}

// New returns a set holding items.
func New(items ...string) Set {
	s := make(Set, len(items))
	s.Add(items...)
	return s
}

// Add inserts items.
func (s Set) Add(items ...string) {
	for _, item := range items {
		s[item] = struct{}{}
	}
}

// AddSet inserts every member of other.
func (s Set) AddSet(other Set) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Remove deletes items.
func (s Set) Remove(items ...string) {
	for _, item := range items {
		delete(s, item)
	}
}

// RemoveSet deletes every member of other.
func (s Set) RemoveSet(other Set) {
	for k := range other {
		delete(s, k)
	}
}

// Has reports whether key is a member.
func (s Set) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s)
}

// Clone returns an independent copy.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	out.AddSet(s)
	return out
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	keys := lo.Keys(s)
	sort.Strings(keys)
	return keys
}

// Union returns a new set holding the members of all sets. Nil sets are
// treated as empty.
func Union(sets ...Set) Set {
	out := New()
	for _, s := range sets {
		out.AddSet(s)
	}
	return out
}
