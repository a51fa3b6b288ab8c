package textdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prooflab/gentzen/sequent"
)

func mustSequent(t *testing.T, text string) *sequent.Sequent {
	t.Helper()
	s, err := sequent.Parse(text)
	if err != nil {
		t.Fatalf("sequent.Parse(%q): %v", text, err)
	}
	return s
}

func TestLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nx\nc\n"
	got := Lines(from, to)
	want := []Line{
		{Equal, "a"},
		{Delete, "b"},
		{Insert, "x"},
		{Equal, "c"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Lines mismatch (-want +got):\n%s", diff)
	}
}

func TestLinesEqual(t *testing.T) {
	for _, line := range Lines("a\nb\n", "a\nb\n") {
		if line.Op != Equal {
			t.Errorf("equal inputs produced op %v on %q", line.Op, line.Text)
		}
	}
}

func TestSequents(t *testing.T) {
	// One decomposition step of "A & B |~ C": the conjunction leaves the
	// antecedent and both conjuncts arrive.
	from := mustSequent(t, "A & B |~ C")
	to := mustSequent(t, "A, B |~ C")

	d := Sequents(from, to)
	if !d.Changed() {
		t.Fatalf("delta reports no change")
	}

	var ops []string
	for _, e := range d.Ant {
		ops = append(ops, e.Op.String()+" "+e.Formula.String())
	}
	want := []string{"- (A & B)", "+ A", "+ B"}
	if diff := cmp.Diff(want, ops); diff != "" {
		t.Errorf("antecedent edits mismatch (-want +got):\n%s", diff)
	}

	for _, e := range d.Con {
		if e.Op != Equal {
			t.Errorf("consequent edit %v on unchanged side", e.Op)
		}
	}
}

func TestSequentsUnchanged(t *testing.T) {
	s := mustSequent(t, "A, B |~ C")
	if Sequents(s, s.Clone()).Changed() {
		t.Errorf("identical sequents report a change")
	}
}
