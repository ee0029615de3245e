package bvfa

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// clear empties all of the automaton's containers.
func (a *Automaton) clear() {
	a.states = make(stateSet)
	a.initial = make(stateSet)
	a.final = make(stateSet)
	a.current = make(stateSet)
	a.transitions = make(map[State]map[string]*arc)
	a.alphabet = make(map[uint]struct{})
}

// assign replaces the contents of a with those of b. b must not be used
// afterwards. a keeps its own options.
func (a *Automaton) assign(b *Automaton) {
	a.states = b.states
	a.initial = b.initial
	a.final = b.final
	a.current = b.current
	a.transitions = b.transitions
	a.alphabet = b.alphabet
}

// Clone returns a deep copy of the automaton, including its options and
// simulation state.
func (a *Automaton) Clone() *Automaton {
	c := &Automaton{
		cfg:         a.cfg,
		states:      a.states.clone(),
		initial:     a.initial.clone(),
		final:       a.final.clone(),
		current:     a.current.clone(),
		transitions: make(map[State]map[string]*arc, len(a.transitions)),
		alphabet:    make(map[uint]struct{}, len(a.alphabet)),
	}
	for from, arcs := range a.transitions {
		m := make(map[string]*arc, len(arcs))
		for k, e := range arcs {
			m[k] = &arc{Label: e.Label, To: e.To.clone()}
		}
		c.transitions[from] = m
	}
	for v := range a.alphabet {
		c.alphabet[v] = struct{}{}
	}
	return c
}

// AddState adds the state s to the automaton.
func (a *Automaton) AddState(s State) {
	a.states.add(s)
}

// AddTransition adds a transition from one state to another, labelled with
// label. If the alphabet is empty, it becomes the domain of label. Otherwise
// the domain of label must equal the alphabet. Both states must already have
// been added.
func (a *Automaton) AddTransition(from State, label BitVector, to State) {
	if len(a.alphabet) == 0 {
		for v := range label {
			a.alphabet[v] = struct{}{}
		}
	}
	label = label.clone()
	a.addArc(from, label.key(), label, to)
}

// AddEpsilonTransition adds a transition from one state to another that is
// taken without reading any input. Both states must already have been added.
func (a *Automaton) AddEpsilonTransition(from, to State) {
	a.addArc(from, epsilonKey, nil, to)
}

// addArc records a transition. label must not be modified afterwards.
func (a *Automaton) addArc(from State, key string, label BitVector, to State) {
	arcs := a.transitions[from]
	if arcs == nil {
		arcs = make(map[string]*arc)
		a.transitions[from] = arcs
	}
	e := arcs[key]
	if e == nil {
		e = &arc{Label: label, To: make(stateSet, 1)}
		arcs[key] = e
	}
	e.To.add(to)
}

// MarkInitial marks s as an initial state. s must already have been added.
// Until the next Run, s is also a current state.
func (a *Automaton) MarkInitial(s State) {
	a.initial.add(s)
	a.current.add(s)
}

// MarkFinal marks s as a final (accepting) state. s must already have been
// added.
func (a *Automaton) MarkFinal(s State) {
	a.final.add(s)
}

// Contains reports if s is a state of the automaton.
func (a *Automaton) Contains(s State) bool {
	return a.states.has(s)
}

// States returns all states in ascending order.
func (a *Automaton) States() []State { return a.states.sorted() }

// Initial returns the initial states in ascending order.
func (a *Automaton) Initial() []State { return a.initial.sorted() }

// Final returns the final states in ascending order.
func (a *Automaton) Final() []State { return a.final.sorted() }

// Current returns the current states of the simulation in ascending order.
func (a *Automaton) Current() []State { return a.current.sorted() }

// Alphabet returns the variables of the alphabet in ascending order.
func (a *Automaton) Alphabet() []uint {
	vs := maps.Keys(a.alphabet)
	slices.Sort(vs)
	return vs
}

// Labels returns the labels of the non-epsilon transitions leaving from, in
// a fixed order.
func (a *Automaton) Labels(from State) []BitVector {
	var out []BitVector
	for _, k := range sortedKeys(a.transitions[from]) {
		if k == epsilonKey {
			continue
		}
		out = append(out, a.transitions[from][k].Label.clone())
	}
	return out
}

// Targets returns the states reachable from from by reading exactly label,
// in ascending order.
func (a *Automaton) Targets(from State, label BitVector) []State {
	e := a.transitions[from][label.key()]
	if e == nil {
		return nil
	}
	return e.To.sorted()
}

// EpsilonTargets returns the targets of epsilon transitions leaving from,
// in ascending order.
func (a *Automaton) EpsilonTargets(from State) []State {
	e := a.transitions[from][epsilonKey]
	if e == nil {
		return nil
	}
	return e.To.sorted()
}

// NumTransitions returns the number of (from, label, to) triples, counting
// epsilon transitions.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, arcs := range a.transitions {
		for _, e := range arcs {
			n += len(e.To)
		}
	}
	return n
}

// hasEpsilon reports if any epsilon transition exists.
func (a *Automaton) hasEpsilon() bool {
	for _, arcs := range a.transitions {
		if e := arcs[epsilonKey]; e != nil && len(e.To) > 0 {
			return true
		}
	}
	return false
}

// IsDeterministic reports if the automaton has at most one initial state, no
// epsilon transitions, and at most one target for each state and label.
func (a *Automaton) IsDeterministic() bool {
	if len(a.initial) > 1 || a.hasEpsilon() {
		return false
	}
	for _, arcs := range a.transitions {
		for _, e := range arcs {
			if len(e.To) > 1 {
				return false
			}
		}
	}
	return true
}

// Validate checks the structural invariants: every state referred to is a
// member of the automaton, and every non-epsilon label is a total assignment
// over the alphabet. It reports the first violation found. It never alters
// the automaton.
func (a *Automaton) Validate() error {
	for _, set := range []struct {
		name string
		set  stateSet
	}{
		{"initial", a.initial},
		{"final", a.final},
		{"current", a.current},
	} {
		for _, s := range set.set.sorted() {
			if !a.states.has(s) {
				return fmt.Errorf("%s state %d is not a state of the automaton", set.name, s)
			}
		}
	}

	froms := maps.Keys(a.transitions)
	slices.Sort(froms)
	for _, from := range froms {
		arcs := a.transitions[from]
		if len(arcs) > 0 && !a.states.has(from) {
			return fmt.Errorf("transition source %d is not a state of the automaton", from)
		}
		for _, k := range sortedKeys(arcs) {
			e := arcs[k]
			if k != epsilonKey && !e.Label.hasDomain(a.alphabet) {
				return fmt.Errorf("label %v from state %d does not match alphabet %v", e.Label, from, a.Alphabet())
			}
			for _, to := range e.To.sorted() {
				if !a.states.has(to) {
					return fmt.Errorf("transition target %d (from %d) is not a state of the automaton", to, from)
				}
			}
		}
	}
	return nil
}

// freshState returns a state not yet in the automaton.
func (a *Automaton) freshState() State {
	if len(a.states) == 0 {
		return 0
	}
	ss := a.states.sorted()
	return ss[len(ss)-1] + 1
}
