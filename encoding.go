package bvfa

import (
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// encoder assigns fresh states to sets and tuples of states during a single
// construction. Equal sets (by value) always get the same state. States are
// handed out contiguously from 0 in order of first encoding.
type encoder struct {
	ids    map[string]State
	tuples [][]State
}

func newEncoder() *encoder {
	return &encoder{ids: make(map[string]State)}
}

// encode returns the state standing for the set.
func (e *encoder) encode(set stateSet) State {
	return e.encodeTuple(set.sorted())
}

// encodeTuple returns the state standing for the ordered tuple.
func (e *encoder) encodeTuple(tuple []State) State {
	var sb strings.Builder
	for i, s := range tuple {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(s)))
	}
	k := sb.String()
	if id, ok := e.ids[k]; ok {
		return id
	}
	id := State(len(e.tuples))
	e.ids[k] = id
	e.tuples = append(e.tuples, slices.Clone(tuple))
	return id
}

// decode returns the tuple (or sorted set) that id was encoded from, or nil
// if id was not produced by this encoder.
func (e *encoder) decode(id State) []State {
	if id < 0 || int(id) >= len(e.tuples) {
		return nil
	}
	return slices.Clone(e.tuples[id])
}

// size returns the number of states handed out so far.
func (e *encoder) size() int { return len(e.tuples) }

// Restate renumbers the states to 0, 1, ..., n-1, preserving their order.
// Initial, final and current states and all transitions are renumbered
// consistently.
func (a *Automaton) Restate() {
	old := a.states.sorted()
	renum := make(map[State]State, len(old))
	for i, s := range old {
		renum[s] = State(i)
	}
	remap := func(set stateSet) stateSet {
		out := make(stateSet, len(set))
		for s := range set {
			out.add(renum[s])
		}
		return out
	}

	transitions := make(map[State]map[string]*arc, len(a.transitions))
	for from, arcs := range a.transitions {
		m := make(map[string]*arc, len(arcs))
		for k, e := range arcs {
			m[k] = &arc{Label: e.Label, To: remap(e.To)}
		}
		transitions[renum[from]] = m
	}

	a.states = remap(a.states)
	a.initial = remap(a.initial)
	a.final = remap(a.final)
	a.current = remap(a.current)
	a.transitions = transitions
	a.logf("restate: renumbered %d states\n", len(old))
}
