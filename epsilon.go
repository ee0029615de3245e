package bvfa

import "github.com/bits-and-blooms/bitset"

// EliminateEpsilon removes all epsilon transitions without changing the
// language of the automaton.
//
// Each state that can reach a final state using only epsilon transitions
// becomes final, and gains every non-epsilon transition of every state in its
// epsilon closure. Cycles of epsilon transitions are fine.
func (a *Automaton) EliminateEpsilon() {
	if !a.hasEpsilon() {
		return
	}

	// Number the states densely so the closure search can use a bitset.
	order := a.states.sorted()
	index := make(map[State]uint, len(order))
	for i, s := range order {
		index[s] = uint(i)
	}

	// Compute every closure before changing any transitions.
	closures := make([][]State, len(order))
	for i, s := range order {
		closures[i] = a.epsilonReach(s, index)
	}

	for i, s := range order {
		for _, t := range closures[i] {
			if t == s {
				continue
			}
			if a.final.has(t) {
				a.final.add(s)
			}
			for k, e := range a.transitions[t] {
				if k == epsilonKey {
					continue
				}
				for u := range e.To {
					a.addArc(s, k, e.Label, u)
				}
			}
		}
	}

	removed := 0
	for _, arcs := range a.transitions {
		if e := arcs[epsilonKey]; e != nil {
			removed += len(e.To)
			delete(arcs, epsilonKey)
		}
	}
	a.logf("eliminate epsilon: removed %d epsilon transitions from %d states\n", removed, len(order))
}

// epsilonReach returns s followed by every state reachable from s using only
// epsilon transitions. It searches depth-first with an explicit stack, and
// the visited set stops it at back edges.
func (a *Automaton) epsilonReach(s State, index map[State]uint) []State {
	visited := bitset.New(uint(len(index)))
	visited.Set(index[s])
	stack := []State{s}
	var out []State
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n)

		e := a.transitions[n][epsilonKey]
		if e == nil {
			continue
		}
		for _, t := range e.To.sorted() {
			i, ok := index[t]
			if !ok || visited.Test(i) {
				continue
			}
			visited.Set(i)
			stack = append(stack, t)
		}
	}
	return out
}
