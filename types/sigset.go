package types

import (
	"github.com/benbjohnson/immutable"
)

var emptySet = immutable.NewSortedMap(nil)

// sigSet is an immutable multiset of unit tokens, stored as token -> count.
// Counts are always positive; the zero sigSet is the empty multiset.
type sigSet struct {
	m *immutable.SortedMap
}

func (s sigSet) root() *immutable.SortedMap {
	if s.m == nil {
		return emptySet
	}
	return s.m
}

func (s sigSet) isEmpty() bool { return s.root().Len() == 0 }

func (s sigSet) count(tok string) int {
	n, ok := s.root().Get(tok)
	if !ok {
		return 0
	}
	return n.(int)
}

// Iterate over tokens in sorted order, with multiplicities.
// If f returns false, iteration will be stopped.
func (s sigSet) each(f func(string, int) bool) {
	iter := s.root().Iterator()
	for !iter.Done() {
		k, v := iter.Next()
		if !f(k.(string), v.(int)) {
			return
		}
	}
}

func (s sigSet) equal(o sigSet) bool {
	if s.root().Len() != o.root().Len() {
		return false
	}
	eq := true
	s.each(func(tok string, n int) bool {
		eq = o.count(tok) == n
		return eq
	})
	return eq
}

// counts copies the multiset into a mutable map.
func (s sigSet) counts() map[string]int {
	m := make(map[string]int, s.root().Len())
	s.each(func(tok string, n int) bool {
		m[tok] = n
		return true
	})
	return m
}

// tokens expands the multiset into a slice, repeating each token by its
// multiplicity. Tokens are in sorted order.
func (s sigSet) tokens() []string {
	out := make([]string, 0, s.root().Len())
	s.each(func(tok string, n int) bool {
		for i := 0; i < n; i++ {
			out = append(out, tok)
		}
		return true
	})
	return out
}

// makeSigSet freezes a count map, dropping non-positive entries.
func makeSigSet(counts map[string]int) sigSet {
	b := immutable.NewSortedMapBuilder(emptySet)
	for tok, n := range counts {
		if n > 0 {
			b.Set(tok, n)
		}
	}
	return sigSet{b.Map()}
}
