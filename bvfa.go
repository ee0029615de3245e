// Package bvfa implements finite automata whose transitions are labelled by
// bitvectors: total assignments of booleans to a fixed set of variables.
//
// An Automaton is built incrementally (AddState, AddTransition, MarkInitial,
// MarkFinal), simulated (Run, Accepts), and transformed: intersection,
// alphabet extension, epsilon elimination, subset construction,
// complementation and projection.
//
// Intersect, Determinize and Complement write their result into the receiver,
// replacing its contents. The operands are only read. AddToAlphabet, Project,
// Restate, EliminateEpsilon and Complete modify the receiver in place and
// leave its language unchanged.
//
// Preconditions are documented per method and are not checked. Violating one
// gives unspecified results for the automata involved, and nothing else.
package bvfa

// State identifies a state within one automaton.
type State int

// Automaton is a nondeterministic finite automaton over bitvector labels.
// The zero value is not usable; create automata with New.
type Automaton struct {
	cfg config

	states  stateSet
	initial stateSet
	final   stateSet

	// current is the simulation cursor.
	current stateSet

	// transitions maps a source state and label key to the labelled arc.
	transitions map[State]map[string]*arc

	// alphabet is the domain of every non-epsilon label.
	alphabet map[uint]struct{}
}

// arc holds all the targets reachable from one state with one label.
type arc struct {
	// Label is nil for epsilon arcs.
	Label BitVector
	To    stateSet
}

// New returns an empty automaton.
func New(opts ...Option) *Automaton {
	cfg := defaultConfig
	for _, o := range opts {
		if o == nil {
			continue
		}
		o(&cfg)
	}
	return newWithConfig(cfg)
}

func newWithConfig(cfg config) *Automaton {
	a := &Automaton{cfg: cfg}
	a.clear()
	return a
}
