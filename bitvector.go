package bvfa

import (
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// BitVector is a transition label: an assignment of a boolean to each
// variable in its domain.
type BitVector map[uint]bool

// epsilonKey is the label key under which epsilon arcs are stored. Keys of
// BitVectors contain only digits, colons and commas, so no label collides
// with it.
const epsilonKey = "ε"

// vars returns the domain of b in ascending order.
func (b BitVector) vars() []uint {
	vs := maps.Keys(b)
	slices.Sort(vs)
	return vs
}

// key returns a canonical string for b. Equal assignments have equal keys.
func (b BitVector) key() string {
	var sb strings.Builder
	for i, v := range b.vars() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
		if b[v] {
			sb.WriteString(":1")
		} else {
			sb.WriteString(":0")
		}
	}
	return sb.String()
}

// String renders b as an ordered list of variable:value pairs, e.g.
// "[0:1 3:0]".
func (b BitVector) String() string {
	return "[" + strings.ReplaceAll(b.key(), ",", " ") + "]"
}

func (b BitVector) clone() BitVector {
	c := make(BitVector, len(b))
	for v, x := range b {
		c[v] = x
	}
	return c
}

// with returns a copy of b that also assigns x to v.
func (b BitVector) with(v uint, x bool) BitVector {
	c := b.clone()
	c[v] = x
	return c
}

// without returns a copy of b with v removed from the domain.
func (b BitVector) without(v uint) BitVector {
	c := b.clone()
	delete(c, v)
	return c
}

// hasDomain reports if the domain of b is exactly vars.
func (b BitVector) hasDomain(vars map[uint]struct{}) bool {
	if len(b) != len(vars) {
		return false
	}
	for v := range b {
		if _, ok := vars[v]; !ok {
			return false
		}
	}
	return true
}

// allLabels returns every total assignment over vars, 2^len(vars) of them.
func allLabels(vars []uint) []BitVector {
	out := []BitVector{{}}
	for _, v := range vars {
		next := make([]BitVector, 0, 2*len(out))
		for _, b := range out {
			next = append(next, b.with(v, false), b.with(v, true))
		}
		out = next
	}
	return out
}
