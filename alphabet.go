package bvfa

// AddToAlphabet adds the variable v to the alphabet. Every existing transition
// is replaced by two: one where v is false and one where v is true, with the
// other variables unchanged. The automaton therefore ignores the value of v.
// If v is already in the alphabet, AddToAlphabet does nothing.
func (a *Automaton) AddToAlphabet(v uint) {
	if _, ok := a.alphabet[v]; ok {
		return
	}
	for from, arcs := range a.transitions {
		split := make(map[string]*arc, 2*len(arcs))
		for k, e := range arcs {
			if k == epsilonKey {
				split[k] = e
				continue
			}
			for _, x := range []bool{false, true} {
				l := e.Label.with(v, x)
				split[l.key()] = &arc{Label: l, To: e.To.clone()}
			}
		}
		a.transitions[from] = split
	}
	a.alphabet[v] = struct{}{}
}

// InsertFreeVars adds every variable in the alphabet of other that is missing
// from the alphabet of a, using AddToAlphabet. Afterwards the alphabet of a
// contains that of other. Calling it in both directions gives two automata
// the same alphabet, as required by Intersect.
func (a *Automaton) InsertFreeVars(other *Automaton) {
	for _, v := range other.Alphabet() {
		a.AddToAlphabet(v)
	}
}
