package search

import (
	"errors"
	"testing"

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

func TestCloses(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"A |~ A", true},
		{"A, B |~ C, B", true},
		{"A |~ B", false},
		{"|~ A", false},
		{"A |~", false},
		{"~ (A) |~ ~ (A)", true},
		{"<kitty> purrs |~ <kitty> purrs", true},
	}
	for _, tt := range tests {
		if got := Closes(mustSequent(t, tt.text)); got != tt.want {
			t.Errorf("Closes(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestProvePropositional(t *testing.T) {
	proved := []string{
		"A |~ A",
		"A & B |~ A",
		"A & B |~ B & A",
		"|~ A v ~ (A)",
		"|~ A > A",
		"A > B, A |~ B",
		"A v B |~ B v A",
		"~ (~ (A)) |~ A",
		"|~ (A & B) > A",
		"A > B, B > C, A |~ C",
	}
	for _, text := range proved {
		res, err := Prove(mustSequent(t, text))
		if err != nil {
			t.Fatalf("Prove(%q): %v", text, err)
		}
		if !res.Proved {
			t.Errorf("Prove(%q) found no proof", text)
		}
	}

	unproved := []string{
		"A |~ B",
		"|~ A & B",
		"A v B |~ A",
		"A > B, B |~ A",
		"|~ A",
	}
	for _, text := range unproved {
		res, err := Prove(mustSequent(t, text))
		if err != nil {
			t.Fatalf("Prove(%q): %v", text, err)
		}
		if res.Proved {
			t.Errorf("Prove(%q) claimed a proof", text)
		}
	}
}

func TestProveQuantified(t *testing.T) {
	proved := []string{
		"∀<x>(<x> is mortal), <socrates> is a man |~ <socrates> is mortal",
		"∃<a>(<a> purrs) |~ ∃<a>(<a> purrs)",
		"∀<x>(<x> is mortal) |~ <socrates> is mortal, B",
	}
	for _, text := range proved {
		res, err := Prove(mustSequent(t, text))
		if err != nil {
			t.Fatalf("Prove(%q): %v", text, err)
		}
		if !res.Proved {
			t.Errorf("Prove(%q) found no proof", text)
		}
	}

	res, err := Prove(mustSequent(t, "∀<x>(<x> purrs) |~ <kitty> barks"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if res.Proved {
		t.Errorf("claimed a proof from an unrelated universal")
	}
}

func TestProveCountsExpansions(t *testing.T) {
	res, err := Prove(mustSequent(t, "A & B |~ A"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if res.Expanded != 1 {
		t.Errorf("Expanded = %d, want 1", res.Expanded)
	}

	res, err = Prove(mustSequent(t, "A |~ A"))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if res.Expanded != 0 {
		t.Errorf("Expanded = %d, want 0 for an axiom", res.Expanded)
	}
}

func TestProveDepthCeiling(t *testing.T) {
	_, err := Prove(mustSequent(t, "|~ A & B"), MaxDepth(0))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("err = %v, want ErrDepthExceeded", err)
	}

	// An atomic sequent needs no expansions at all.
	res, err := Prove(mustSequent(t, "A |~ A"), MaxDepth(0))
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if !res.Proved {
		t.Errorf("axiom not proved at depth 0")
	}

	_, err = Prove(mustSequent(t, "∀<x>(∀<y>(<x> likes <y>)) |~ B"), MaxDepth(1))
	if !errors.Is(err, ErrDepthExceeded) {
		t.Errorf("err = %v, want ErrDepthExceeded", err)
	}
}

func TestProveWithFreshNames(t *testing.T) {
	res, err := Prove(
		mustSequent(t, "∃<a>(<a> purrs) |~ ∃<a>(<a> purrs)"),
		WithFreshNames(&stubNames{prefix: "fresh"}),
	)
	if err != nil {
		t.Fatalf("Prove: %v", err)
	}
	if !res.Proved {
		t.Errorf("found no proof with a custom name supply")
	}
}

type stubNames struct {
	prefix string
	n      int
}

func (s *stubNames) Fresh() string {
	s.n++
	suffixes := "abcdefghijklmnopqrstuvwxyz"
	return s.prefix + string(suffixes[(s.n-1)%26])
}
