package bvfa

// Project removes the variable v from the alphabet and from every label.
// Transitions from the same state whose labels become equal are merged into a
// single transition to the union of their targets. The result accepts an
// input whenever the original accepts some input that agrees with it on
// every variable other than v (v is existentially quantified). If v is not
// in the alphabet, Project does nothing.
func (a *Automaton) Project(v uint) {
	if _, ok := a.alphabet[v]; !ok {
		return
	}
	merges := 0
	for from, arcs := range a.transitions {
		merged := make(map[string]*arc, len(arcs))
		for k, e := range arcs {
			if k == epsilonKey {
				merged[k] = e
				continue
			}
			l := e.Label.without(v)
			lk := l.key()
			if m := merged[lk]; m != nil {
				m.To.addAll(e.To)
				merges++
				continue
			}
			merged[lk] = &arc{Label: l, To: e.To.clone()}
		}
		a.transitions[from] = merged
	}
	delete(a.alphabet, v)
	a.logf("project: removed variable %d, merged %d transitions\n", v, merges)
}
