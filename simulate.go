package bvfa

// Run resets the current states to the initial states, then reads each input
// in order. Only transitions whose label equals the input exactly are taken.
// Epsilon transitions are followed after every step. Once the set of current
// states is empty it stays empty, and the input is rejected.
func (a *Automaton) Run(inputs []BitVector) {
	cur := a.initial.clone()
	next := make(stateSet, len(cur))
	a.epsilonClosure(cur)

	for _, in := range inputs {
		if len(cur) == 0 {
			break
		}
		a.step(cur, next, in.key())
		cur, next = next, cur
		clear(next)
	}
	a.current = cur
}

// Step reads a single input, moving from the current states to the next.
func (a *Automaton) Step(input BitVector) {
	next := make(stateSet, len(a.current))
	a.step(a.current, next, input.key())
	a.current = next
}

// Accepts reports if any current state is a final state.
func (a *Automaton) Accepts() bool {
	return a.current.intersects(a.final)
}

// step adds to next the epsilon closure of the targets of transitions
// labelled key from states in cur.
func (a *Automaton) step(cur, next stateSet, key string) {
	for s := range cur {
		if e := a.transitions[s][key]; e != nil {
			next.addAll(e.To)
		}
	}
	a.epsilonClosure(next)
}

// epsilonClosure adds any states reachable through epsilon transitions to the
// same set.
func (a *Automaton) epsilonClosure(states stateSet) {
	q := make([]State, 0, len(states))
	for s := range states {
		q = append(q, s)
	}
	for len(q) > 0 {
		s := q[0]
		q = q[1:]

		e := a.transitions[s][epsilonKey]
		if e == nil {
			continue
		}
		for t := range e.To {
			if states.has(t) {
				continue
			}
			states.add(t)
			q = append(q, t)
		}
	}
}
