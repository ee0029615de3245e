package bvfa

import "github.com/bits-and-blooms/bitset"

// Intersect replaces the contents of a with the product of x and y, which
// accepts exactly the inputs accepted by both.
//
// x and y must have the same alphabet; use InsertFreeVars on each beforehand
// if they might not. Only pairs of states reachable from the initial pairs are
// built. A pair is final when both its components are final. Either x or y may
// be a itself.
func (a *Automaton) Intersect(x, y *Automaton) {
	switch {
	case x == a && y == a:
		x = a.Clone()
		y = x
	case x == a:
		x = a.Clone()
	case y == a:
		y = a.Clone()
	}

	a.clear()
	for v := range x.alphabet {
		a.alphabet[v] = struct{}{}
	}

	enc := newEncoder()
	seen := bitset.New(0)
	var queue []State

	// visit returns the state for the pair (p, q), adding it to the queue the
	// first time it is seen.
	visit := func(p, q State) State {
		id := enc.encodeTuple([]State{p, q})
		if seen.Test(uint(id)) {
			return id
		}
		seen.Set(uint(id))
		a.AddState(id)
		if x.final.has(p) && y.final.has(q) {
			a.MarkFinal(id)
		}
		queue = append(queue, id)
		return id
	}

	for _, p := range x.initial.sorted() {
		for _, q := range y.initial.sorted() {
			a.MarkInitial(visit(p, q))
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		pq := enc.decode(id)
		p, q := pq[0], pq[1]

		xarcs, yarcs := x.transitions[p], y.transitions[q]
		for _, k := range sortedKeys(xarcs) {
			if k == epsilonKey {
				continue
			}
			ye := yarcs[k]
			if ye == nil {
				continue
			}
			xe := xarcs[k]
			for _, t1 := range xe.To.sorted() {
				for _, t2 := range ye.To.sorted() {
					a.addArc(id, k, xe.Label, visit(t1, t2))
				}
			}
		}

		// Epsilon moves are taken by one side while the other stays put.
		if e := xarcs[epsilonKey]; e != nil {
			for _, t1 := range e.To.sorted() {
				a.addArc(id, epsilonKey, nil, visit(t1, q))
			}
		}
		if e := yarcs[epsilonKey]; e != nil {
			for _, t2 := range e.To.sorted() {
				a.addArc(id, epsilonKey, nil, visit(p, t2))
			}
		}
	}

	a.logf("intersect: %d x %d states -> %d reachable pairs\n", len(x.states), len(y.states), enc.size())
}
