package bvfa

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// stateSet represents a set of states.
type stateSet map[State]struct{}

// singleton wraps a single value into a map used as a set.
func singleton[K comparable](k K) map[K]struct{} {
	return map[K]struct{}{k: {}}
}

func (s stateSet) add(x State) { s[x] = struct{}{} }

func (s stateSet) has(x State) bool {
	_, ok := s[x]
	return ok
}

// addAll adds every member of t to s.
func (s stateSet) addAll(t stateSet) {
	for x := range t {
		s[x] = struct{}{}
	}
}

func (s stateSet) clone() stateSet {
	c := make(stateSet, len(s))
	c.addAll(s)
	return c
}

// sorted returns the members of s in ascending order.
func (s stateSet) sorted() []State {
	xs := maps.Keys(s)
	slices.Sort(xs)
	return xs
}

// intersects reports if s and t have a member in common.
func (s stateSet) intersects(t stateSet) bool {
	if len(t) < len(s) {
		s, t = t, s
	}
	for x := range s {
		if t.has(x) {
			return true
		}
	}
	return false
}

// sortedKeys returns the label keys of arcs in ascending order.
func sortedKeys(arcs map[string]*arc) []string {
	ks := maps.Keys(arcs)
	slices.Sort(ks)
	return ks
}
