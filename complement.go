package bvfa

// Complete makes a deterministic automaton complete: afterwards every state
// has a transition for every one of the 2^n labels over the alphabet. Missing
// transitions go to a new non-final sink state, which loops to itself. If
// there is no initial state, the sink becomes the initial state. If nothing
// is missing, Complete does nothing. The language is unchanged.
//
// The automaton must be deterministic (see IsDeterministic).
func (a *Automaton) Complete() {
	labels := allLabels(a.Alphabet())

	type hole struct {
		from  State
		label BitVector
	}
	var holes []hole
	for _, s := range a.states.sorted() {
		for _, l := range labels {
			if a.transitions[s][l.key()] == nil {
				holes = append(holes, hole{s, l})
			}
		}
	}
	if len(holes) == 0 && len(a.initial) > 0 {
		return
	}

	sink := a.freshState()
	a.AddState(sink)
	for _, l := range labels {
		a.addArc(sink, l.key(), l, sink)
	}
	for _, h := range holes {
		a.addArc(h.from, h.label.key(), h.label, sink)
	}
	if len(a.initial) == 0 {
		a.initial = singleton(sink)
		a.current = singleton(sink)
	}
	a.logf("complete: added sink %d for %d missing transitions\n", sink, len(holes))
}

// Complement replaces the contents of a with an automaton accepting exactly
// the inputs (over the alphabet of src) that src rejects. If src is not
// deterministic it is determinized first. The deterministic automaton is then
// completed, and its final states swapped with its non-final states. src may
// be a itself.
func (a *Automaton) Complement(src *Automaton) {
	var dfa *Automaton
	if src.IsDeterministic() {
		dfa = src.Clone()
		dfa.cfg = a.cfg
	} else {
		dfa = newWithConfig(a.cfg)
		dfa.Determinize(src)
	}
	dfa.Complete()

	final := make(stateSet, len(dfa.states))
	for s := range dfa.states {
		if !dfa.final.has(s) {
			final.add(s)
		}
	}
	dfa.final = final
	dfa.current = dfa.initial.clone()

	a.assign(dfa)
	a.logf("complement: %d states, %d final\n", len(a.states), len(a.final))
}
