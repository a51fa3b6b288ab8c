package sequent

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/prooflab/gentzen/formula"
	"github.com/prooflab/gentzen/parse"
)

func mustParse(t *testing.T, text string) *formula.Formula {
	t.Helper()
	f, err := parse.Parse(text)
	if err != nil {
		t.Fatalf("parse.Parse(%q): %v", text, err)
	}
	return f
}

func TestComplexitySums(t *testing.T) {
	s := New(
		[]*formula.Formula{
			mustParse(t, "~ (A)"),
			mustParse(t, "(A & B) > C"),
		},
		[]*formula.Formula{
			mustParse(t, "D"),
			mustParse(t, "~ (~ (D))"),
		},
	)
	// 1 + 2 + 0 + 2: a sum over every member, not a max.
	if got := s.Complexity(); got != 5 {
		t.Errorf("Complexity() = %d, want 5", got)
	}
}

func TestIsAtomic(t *testing.T) {
	atomic := New(
		[]*formula.Formula{formula.NewAtom("A")},
		[]*formula.Formula{formula.NewAtom("B"), formula.NewAtom("C")},
	)
	if !atomic.IsAtomic() {
		t.Errorf("sequent of atoms not atomic")
	}
	if atomic.Complexity() != 0 {
		t.Errorf("Complexity() = %d, want 0", atomic.Complexity())
	}

	complex := New(nil, []*formula.Formula{mustParse(t, "~ (A)")})
	if complex.IsAtomic() {
		t.Errorf("sequent with a negation reported atomic")
	}
}

func TestFirstComplexScanOrder(t *testing.T) {
	s := New(
		[]*formula.Formula{
			formula.NewAtom("A"),
			mustParse(t, "B & C"),
		},
		[]*formula.Formula{
			mustParse(t, "~ (D)"),
		},
	)
	at, ok := s.FirstComplex()
	if !ok {
		t.Fatalf("FirstComplex found nothing")
	}
	// Antecedent before consequent, left to right within a side.
	want := Coordinates{Side: Antecedent, Index: 1}
	if at != want {
		t.Errorf("FirstComplex() = %+v, want %+v", at, want)
	}

	// Stable across calls on an unmutated sequent.
	again, _ := s.FirstComplex()
	if again != at {
		t.Errorf("FirstComplex unstable: %+v then %+v", at, again)
	}

	// Antecedent atoms only: the consequent is scanned next.
	s = New(
		[]*formula.Formula{formula.NewAtom("A")},
		[]*formula.Formula{formula.NewAtom("B"), mustParse(t, "C v D")},
	)
	at, _ = s.FirstComplex()
	want = Coordinates{Side: Consequent, Index: 1}
	if at != want {
		t.Errorf("FirstComplex() = %+v, want %+v", at, want)
	}
}

func TestRemoveAtAndPush(t *testing.T) {
	s := New(
		[]*formula.Formula{formula.NewAtom("A"), formula.NewAtom("B")},
		[]*formula.Formula{formula.NewAtom("C")},
	)
	f := s.RemoveAt(Coordinates{Side: Antecedent, Index: 0})
	if !f.Equal(formula.NewAtom("A")) {
		t.Errorf("RemoveAt returned %s", f)
	}
	if got := s.String(); got != "B |~ C" {
		t.Errorf("after remove: %q", got)
	}
	s.PushLeft(formula.NewAtom("D"))
	s.PushRight(formula.NewAtom("E"))
	if got := s.String(); got != "B, D |~ C, E" {
		t.Errorf("after pushes: %q", got)
	}
}

func TestNamesUnion(t *testing.T) {
	s := New(
		[]*formula.Formula{mustParse(t, "<kitty> is on <mat>")},
		[]*formula.Formula{mustParse(t, "<kitty> purrs v <rat> squeaks")},
	)
	if diff := cmp.Diff([]string{"kitty", "mat", "rat"}, s.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestCloneIsolation(t *testing.T) {
	s := New([]*formula.Formula{mustParse(t, "∀<x>(<x> purrs)")}, nil)
	cp := s.Clone()
	cp.Members(Antecedent)[0].Instantiate("x", "kitty")
	if got := s.Members(Antecedent)[0].String(); got != "∀<x>(<x> purrs)" {
		t.Errorf("clone mutation leaked into original: %q", got)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("A, B |~ C, D")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.String(); got != "A, B |~ C, D" {
		t.Errorf("String() = %q", got)
	}

	s, err = Parse("|~ A v B")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Members(Antecedent)) != 0 {
		t.Errorf("antecedent not empty: %s", s)
	}
	if len(s.Members(Consequent)) != 1 {
		t.Errorf("consequent: %s", s)
	}

	s, err = Parse("A |~")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(s.Members(Consequent)) != 0 {
		t.Errorf("consequent not empty: %s", s)
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse("A, B"); !errors.Is(err, ErrTurnstile) {
		t.Errorf("no turnstile: err = %v, want ErrTurnstile", err)
	}
	if _, err := Parse("A |~ B |~ C"); !errors.Is(err, ErrTurnstile) {
		t.Errorf("two turnstiles: err = %v, want ErrTurnstile", err)
	}
	if _, err := Parse("A & |~ B"); !errors.Is(err, parse.ErrMalformed) {
		t.Errorf("bad member: err = %v, want parse.ErrMalformed", err)
	}
}

func TestStringRendering(t *testing.T) {
	s := New(
		[]*formula.Formula{mustParse(t, "A > B")},
		nil,
	)
	if got := s.String(); got != "(A > B) |~ " {
		t.Errorf("String() = %q", got)
	}
}
