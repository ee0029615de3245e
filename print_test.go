package bvfa

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPrint(t *testing.T) {
	a := exampleAutomaton()
	a.AddState(2)
	a.MarkInitial(2)
	a.MarkFinal(2)
	a.AddEpsilonTransition(2, 0)

	var buf bytes.Buffer
	if err := a.Print(&buf); err != nil {
		t.Fatalf("Print(&buf) = %v", err)
	}

	want := `alphabet: [0]
states: 0 (initial), 1 (final), 2 (initial, final)
0:
	[0:0] -> {0}
	[0:1] -> {1}
1:
2:
	ε -> {0}
`
	if diff := cmp.Diff(buf.String(), want); diff != "" {
		t.Errorf("Print output diff (-got +want):\n%s", diff)
	}
}

func TestBitVectorString(t *testing.T) {
	tests := []struct {
		b    BitVector
		want string
	}{
		{nil, "[]"},
		{BitVector{0: true}, "[0:1]"},
		{BitVector{12: false, 3: true, 0: false}, "[0:0 3:1 12:0]"},
	}
	for _, test := range tests {
		if got := test.b.String(); got != test.want {
			t.Errorf("BitVector(%#v).String() = %q, want %q", map[uint]bool(test.b), got, test.want)
		}
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestPrint_WriterError(t *testing.T) {
	if err := exampleAutomaton().Print(failWriter{}); err == nil {
		t.Errorf("Print(failWriter) = nil, want error")
	}
	if err := exampleAutomaton().WriteDot(failWriter{}); err == nil {
		t.Errorf("WriteDot(failWriter) = nil, want error")
	}
}

func TestWriteDotSmoke(t *testing.T) {
	tests := []*Automaton{
		New(),
		exampleAutomaton(),
		epsilonCycle(),
		randomAutomaton(1, 5, []uint{0, 1}, true),
	}
	for _, a := range tests {
		if err := a.WriteDot(io.Discard); err != nil {
			t.Errorf("WriteDot(io.Discard) = %v", err)
		}
	}
}

func TestWriteDot(t *testing.T) {
	a := exampleAutomaton()
	a.Run([]BitVector{x(true)})

	var buf bytes.Buffer
	if err := a.WriteDot(&buf); err != nil {
		t.Fatalf("WriteDot(&buf) = %v", err)
	}
	got := buf.String()
	for _, want := range []string{
		`digraph "bvfa" {`,
		"initial_0 -> state_0;",
		`state_1 [label="1", shape=doublecircle, style=filled, fillcolor=green];`,
		`state_0 -> state_1 [label="[0:1]"];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("WriteDot output missing %q:\n%s", want, got)
		}
	}

	buf.Reset()
	named := New(WithDotName("example"))
	if err := named.WriteDot(&buf); err != nil {
		t.Fatalf("WriteDot(&buf) = %v", err)
	}
	if got := buf.String(); !strings.HasPrefix(got, `digraph "example" {`) {
		t.Errorf("WriteDot output = %q, want graph named example", got)
	}
}
