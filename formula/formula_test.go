package formula

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestComplexity(t *testing.T) {
	atom := NewAtom("the cat is on the mat")
	tests := []struct {
		name string
		f    *Formula
		want int
	}{
		{"atom", atom, 0},
		{"negation", NewNegation(atom.Clone()), 1},
		{"conjunction of atoms", NewConjunction(atom.Clone(), atom.Clone()), 1},
		{"max not sum", NewConjunction(NewNegation(atom.Clone()), atom.Clone()), 2},
		{"universal", NewUniversal("x", NewAtom("<x> purrs")), 1},
		{
			"nested",
			NewConditional(
				NewNegation(NewNegation(atom.Clone())),
				NewDisjunction(atom.Clone(), atom.Clone()),
			),
			3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.Complexity(); got != tt.want {
				t.Errorf("Complexity() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNamesAndVariables(t *testing.T) {
	f := NewConjunction(
		NewAtom("<a> is a cat"),
		NewExistential("b", NewAtom("<a> is on <mat> near <b>")),
	)
	if diff := cmp.Diff([]string{"mat"}, f.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a", "a", "b"}, f.Variables()); diff != "" {
		t.Errorf("Variables() mismatch (-want +got):\n%s", diff)
	}
}

func TestInstantiateAtom(t *testing.T) {
	atom := NewAtom("<a> is on the mat")
	atom.Instantiate("a", "kitty")
	if !atom.Equal(NewAtom("<kitty> is on the mat")) {
		t.Errorf("Instantiate: got %s", atom)
	}
}

func TestInstantiateNegation(t *testing.T) {
	neg := NewNegation(NewAtom("<a> is on the mat"))
	neg.Instantiate("a", "kitty")
	if !neg.Child.Equal(NewAtom("<kitty> is on the mat")) {
		t.Errorf("Instantiate: got %s", neg)
	}
}

func TestInstantiateBinary(t *testing.T) {
	tests := []struct {
		name string
		f    *Formula
	}{
		{"conditional", NewConditional(NewAtom("<a> is a cat"), NewAtom("<a> is on the mat"))},
		{"conjunction", NewConjunction(NewAtom("<a> is a cat"), NewAtom("<a> is on the mat"))},
		{"disjunction", NewDisjunction(NewAtom("<a> is a cat"), NewAtom("<a> is on the mat"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.f.Instantiate("a", "kitty")
			if !tt.f.Left.Equal(NewAtom("<kitty> is a cat")) {
				t.Errorf("left: got %s", tt.f.Left)
			}
			if !tt.f.Right.Equal(NewAtom("<kitty> is on the mat")) {
				t.Errorf("right: got %s", tt.f.Right)
			}
		})
	}
}

func TestInstantiateQuantifier(t *testing.T) {
	ex := NewExistential("a", NewAtom("<a> is on <bb>"))
	ex.Instantiate("bb", "mat")
	if !ex.Child.Equal(NewAtom("<a> is on <mat>")) {
		t.Errorf("Instantiate: got %s", ex)
	}
}

func TestCloneIsolation(t *testing.T) {
	orig := NewUniversal("x", NewConjunction(NewAtom("<x> purrs"), NewAtom("<x> sleeps")))
	cp := orig.Clone()
	cp.Instantiate("x", "kitty")
	if !orig.Child.Left.Equal(NewAtom("<x> purrs")) {
		t.Errorf("clone substitution leaked into original: %s", orig)
	}
	if !cp.Child.Left.Equal(NewAtom("<kitty> purrs")) {
		t.Errorf("clone not instantiated: %s", cp)
	}
}

func TestEqual(t *testing.T) {
	a := NewConjunction(NewAtom("A"), NewAtom("B"))
	b := NewConjunction(NewAtom("A"), NewAtom("B"))
	c := NewConjunction(NewAtom("B"), NewAtom("A"))
	if !a.Equal(b) {
		t.Errorf("structurally equal formulas compare unequal")
	}
	if a.Equal(c) {
		t.Errorf("order of operands ignored by Equal")
	}
	if a.Equal(NewDisjunction(NewAtom("A"), NewAtom("B"))) {
		t.Errorf("kind ignored by Equal")
	}
	if !NewUniversal("x", NewAtom("<x>")).Equal(NewUniversal("x", NewAtom("<x>"))) {
		t.Errorf("equal quantifiers compare unequal")
	}
	if NewUniversal("x", NewAtom("<x>")).Equal(NewUniversal("y", NewAtom("<x>"))) {
		t.Errorf("bound variable ignored by Equal")
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		f    *Formula
		want string
	}{
		{NewAtom("the cat is on the mat"), "the cat is on the mat"},
		{NewNegation(NewAtom("A")), "~(A)"},
		{NewConjunction(NewAtom("A"), NewAtom("B")), "(A & B)"},
		{NewDisjunction(NewAtom("A"), NewAtom("B")), "(A v B)"},
		{NewConditional(NewAtom("A"), NewAtom("B")), "(A > B)"},
		{NewUniversal("x", NewAtom("<x> purrs")), "∀<x>(<x> purrs)"},
		{NewExistential("a", NewAtom("<a> is on the mat")), "∃<a>(<a> is on the mat)"},
		{
			NewConditional(NewNegation(NewAtom("A")), NewConjunction(NewAtom("B"), NewAtom("C"))),
			"(~(A) > (B & C))",
		},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFromChildren(t *testing.T) {
	a, b := NewAtom("A"), NewAtom("B")

	f, err := FromChildren(ConjunctionKind, "", a, b)
	if err != nil {
		t.Fatalf("FromChildren: %v", err)
	}
	if !f.Equal(NewConjunction(a, b)) {
		t.Errorf("FromChildren built %s", f)
	}

	f, err = FromChildren(UniversalKind, "x", NewAtom("<x>"))
	if err != nil {
		t.Fatalf("FromChildren: %v", err)
	}
	if f.Var != "x" {
		t.Errorf("bound variable not kept: %q", f.Var)
	}

	if _, err = FromChildren(NegationKind, "", a, b); !errors.Is(err, ErrArity) {
		t.Errorf("negation with two children: err = %v, want ErrArity", err)
	}
	if _, err = FromChildren(ConditionalKind, "", a); !errors.Is(err, ErrArity) {
		t.Errorf("conditional with one child: err = %v, want ErrArity", err)
	}
	if _, err = FromChildren(AtomKind, "", a); !errors.Is(err, ErrKind) {
		t.Errorf("atom kind: err = %v, want ErrKind", err)
	}
	if _, err = FromChildren(Kind(42), ""); !errors.Is(err, ErrKind) {
		t.Errorf("unknown kind: err = %v, want ErrKind", err)
	}
}
