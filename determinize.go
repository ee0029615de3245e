package bvfa

import "github.com/bits-and-blooms/bitset"

// Determinize replaces the contents of a with a deterministic automaton
// accepting the same inputs as src, using the subset construction. Epsilon
// transitions of src are eliminated first (on a copy; src is not changed).
// src may be a itself.
//
// Each state of the result stands for a set of states of src, and is final
// if that set contains a final state of src. Only sets reachable from the
// set of initial states are built. The result has at most one transition for
// each state and label, but is not necessarily complete: a label that no
// member of a set can read has no transition. See Complete.
func (a *Automaton) Determinize(src *Automaton) {
	nfa := src.Clone()
	nfa.EliminateEpsilon()

	a.clear()
	for v := range nfa.alphabet {
		a.alphabet[v] = struct{}{}
	}
	if len(nfa.initial) == 0 {
		a.logf("determinize: no initial states\n")
		return
	}

	enc := newEncoder()
	seen := bitset.New(0)
	var queue []State

	// visit returns the state for the subset, adding it to the queue the
	// first time it is seen.
	visit := func(subset stateSet) State {
		id := enc.encode(subset)
		if seen.Test(uint(id)) {
			return id
		}
		seen.Set(uint(id))
		a.AddState(id)
		if subset.intersects(nfa.final) {
			a.MarkFinal(id)
		}
		queue = append(queue, id)
		return id
	}

	a.MarkInitial(visit(nfa.initial))

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		// Union the targets of every member, label by label.
		next := make(map[string]*arc)
		for _, s := range enc.decode(id) {
			for k, e := range nfa.transitions[s] {
				n := next[k]
				if n == nil {
					n = &arc{Label: e.Label, To: make(stateSet, len(e.To))}
					next[k] = n
				}
				n.To.addAll(e.To)
			}
		}

		for _, k := range sortedKeys(next) {
			n := next[k]
			if len(n.To) == 0 {
				continue
			}
			a.addArc(id, k, n.Label, visit(n.To))
		}
	}

	a.logf("determinize: %d states -> %d subset states\n", len(nfa.states), enc.size())
}
