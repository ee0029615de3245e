package bvfa

import (
	"math/rand"
	"testing"
)

// x is a label over the single variable 0.
func x(b bool) BitVector { return BitVector{0: b} }

// exampleAutomaton accepts words over variable 0 that are some number of 0s
// followed by exactly one 1.
func exampleAutomaton() *Automaton {
	a := New()
	a.AddState(0)
	a.AddState(1)
	a.MarkInitial(0)
	a.MarkFinal(1)
	a.AddTransition(0, x(true), 1)
	a.AddTransition(0, x(false), 0)
	return a
}

func accepts(a *Automaton, w []BitVector) bool {
	a.Run(w)
	return a.Accepts()
}

// words returns every input of length at most n over the variables.
func words(vars []uint, n int) [][]BitVector {
	labels := allLabels(vars)
	out := [][]BitVector{nil}
	frontier := [][]BitVector{nil}
	for i := 0; i < n; i++ {
		var next [][]BitVector
		for _, w := range frontier {
			for _, l := range labels {
				nw := make([]BitVector, 0, len(w)+1)
				nw = append(nw, w...)
				next = append(next, append(nw, l))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

// randomAutomaton builds a nondeterministic automaton with n sparsely
// numbered states over vars. If epsilons is set, it also has epsilon
// transitions (cycles included, usually).
func randomAutomaton(seed int64, n int, vars []uint, epsilons bool) *Automaton {
	r := rand.New(rand.NewSource(seed))
	id := func(i int) State { return State(3*i + 5) }

	a := New()
	for i := 0; i < n; i++ {
		a.AddState(id(i))
	}
	labels := allLabels(vars)
	for i := 0; i < n; i++ {
		if i == 0 || r.Intn(4) == 0 {
			a.MarkInitial(id(i))
		}
		if r.Intn(3) == 0 {
			a.MarkFinal(id(i))
		}
		for _, l := range labels {
			for j := 0; j < n; j++ {
				if r.Intn(n+1) == 0 {
					a.AddTransition(id(i), l, id(j))
				}
			}
		}
		if !epsilons {
			continue
		}
		for j := 0; j < n; j++ {
			if r.Intn(n) == 0 {
				a.AddEpsilonTransition(id(i), id(j))
			}
		}
	}
	// Make sure the alphabet is set even if no transitions were added.
	for _, v := range vars {
		a.AddToAlphabet(v)
	}
	return a
}

// checkSameLanguage compares acceptance of got and want on every input of
// length at most n over vars.
func checkSameLanguage(t *testing.T, got, want *Automaton, vars []uint, n int) {
	t.Helper()
	for _, w := range words(vars, n) {
		if g, w2 := accepts(got, w), accepts(want, w); g != w2 {
			t.Errorf("accepts(got, %v) = %v, want %v", w, g, w2)
		}
	}
}

func mustValidate(t *testing.T, a *Automaton) {
	t.Helper()
	if err := a.Validate(); err != nil {
		t.Errorf("Validate() = %v\n%v", err, a)
	}
}
