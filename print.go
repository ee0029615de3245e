package bvfa

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable description of the automaton to w: the
// alphabet, the states (flagging initial and final states), then the
// transitions leaving each state. For example:
//
//	alphabet: [0]
//	states: 0 (initial), 1 (final)
//	0:
//		[0:0] -> {0}
//		[0:1] -> {1}
//	1:
//
// The format is meant for people and may change.
func (a *Automaton) Print(w io.Writer) error {
	if _, err := io.WriteString(w, a.String()); err != nil {
		return fmt.Errorf("writing automaton: %w", err)
	}
	return nil
}

// String returns the same text that Print writes.
func (a *Automaton) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "alphabet: %v\n", a.Alphabet())

	sb.WriteString("states:")
	for i, s := range a.states.sorted() {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, " %d", s)
		switch {
		case a.initial.has(s) && a.final.has(s):
			sb.WriteString(" (initial, final)")
		case a.initial.has(s):
			sb.WriteString(" (initial)")
		case a.final.has(s):
			sb.WriteString(" (final)")
		}
	}
	sb.WriteByte('\n')

	for _, s := range a.states.sorted() {
		fmt.Fprintf(&sb, "%d:\n", s)
		arcs := a.transitions[s]
		for _, k := range sortedKeys(arcs) {
			e := arcs[k]
			if k == epsilonKey {
				fmt.Fprintf(&sb, "\tε -> %s\n", formatSet(e.To))
				continue
			}
			fmt.Fprintf(&sb, "\t%v -> %s\n", e.Label, formatSet(e.To))
		}
	}
	return sb.String()
}

// formatSet renders a set of states like "{0, 3}".
func formatSet(set stateSet) string {
	ss := set.sorted()
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = fmt.Sprint(int(s))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// WriteDot writes a digraph representing the automaton to the writer
// (in GraphViz syntax). Final states are drawn as double circles, and current
// states are highlighted.
func (a *Automaton) WriteDot(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "digraph %q {\n\trankdir=LR;\n", a.cfg.dotName); err != nil {
		return err
	}

	for _, s := range a.initial.sorted() {
		if _, err := fmt.Fprintf(w, "\tinitial_%d [label=\"\", style=invis];\n", s); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "\tinitial_%d -> state_%d;\n", s, s); err != nil {
			return err
		}
	}

	for _, s := range a.states.sorted() {
		shape := "circle"
		if a.final.has(s) {
			shape = "doublecircle"
		}
		fill := "white"
		if a.current.has(s) {
			fill = "green"
		}
		if _, err := fmt.Fprintf(w, "\tstate_%d [label=\"%d\", shape=%s, style=filled, fillcolor=%s];\n", s, s, shape, fill); err != nil {
			return err
		}

		arcs := a.transitions[s]
		for _, k := range sortedKeys(arcs) {
			label := "ε"
			if k != epsilonKey {
				label = arcs[k].Label.String()
			}
			for _, t := range arcs[k].To.sorted() {
				if _, err := fmt.Fprintf(w, "\tstate_%d -> state_%d [label=%q];\n", s, t, label); err != nil {
					return err
				}
			}
		}
	}

	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	return nil
}
