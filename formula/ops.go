package formula

import (
	"fmt"

	"github.com/prooflab/gentzen/token"
)

// Complexity returns the length of the longest path of connectives and
// quantifiers from the root. Atoms have complexity 0.
func (f *Formula) Complexity() int {
	switch f.Kind {
	case AtomKind:
		return 0
	case ConjunctionKind, DisjunctionKind, ConditionalKind:
		return 1 + max(f.Left.Complexity(), f.Right.Complexity())
	default:
		return 1 + f.Child.Complexity()
	}
}

// Names collects every constant placeholder embedded in the subtree's
// atoms, in left to right order of appearance.
func (f *Formula) Names() []string {
	var names []string
	f.walkAtoms(func(text string) {
		names = append(names, token.Names(text)...)
	})
	return names
}

// Variables collects every variable placeholder embedded in the subtree's
// atoms, in left to right order of appearance.
func (f *Formula) Variables() []string {
	var vars []string
	f.walkAtoms(func(text string) {
		vars = append(vars, token.Variables(text)...)
	})
	return vars
}

func (f *Formula) walkAtoms(fn func(text string)) {
	switch f.Kind {
	case AtomKind:
		fn(f.Atom)
	case ConjunctionKind, DisjunctionKind, ConditionalKind:
		f.Left.walkAtoms(fn)
		f.Right.walkAtoms(fn)
	default:
		f.Child.walkAtoms(fn)
	}
}

// Instantiate rewrites every "<variable>" placeholder to "<name>" in each
// atom of the subtree, in place. Call it on a Clone when sibling proof
// branches must not observe the substitution. A nested quantifier that
// rebinds variable is not guarded against.
func (f *Formula) Instantiate(variable, name string) {
	switch f.Kind {
	case AtomKind:
		f.Atom = token.Replace(f.Atom, variable, name)
	case ConjunctionKind, DisjunctionKind, ConditionalKind:
		f.Left.Instantiate(variable, name)
		f.Right.Instantiate(variable, name)
	default:
		f.Child.Instantiate(variable, name)
	}
}

// Clone returns a deep copy of f sharing no nodes with it.
func (f *Formula) Clone() *Formula {
	if f == nil {
		return nil
	}
	return &Formula{
		Kind:  f.Kind,
		Atom:  f.Atom,
		Var:   f.Var,
		Child: f.Child.Clone(),
		Left:  f.Left.Clone(),
		Right: f.Right.Clone(),
	}
}

// Equal reports structural equality of f and g.
func (f *Formula) Equal(g *Formula) bool {
	if f == nil || g == nil {
		return f == g
	}
	if f.Kind != g.Kind {
		return false
	}
	switch f.Kind {
	case AtomKind:
		return f.Atom == g.Atom
	case NegationKind:
		return f.Child.Equal(g.Child)
	case UniversalKind, ExistentialKind:
		return f.Var == g.Var && f.Child.Equal(g.Child)
	default:
		return f.Left.Equal(g.Left) && f.Right.Equal(g.Right)
	}
}

// String renders f in the canonical round-trippable form: atoms as-is,
// "~(child)", "(left OP right)" with OP one of "&", "v", ">", and
// "∃<x>(predicate)" or "∀<x>(predicate)" for quantifiers.
func (f *Formula) String() string {
	switch f.Kind {
	case AtomKind:
		return f.Atom
	case NegationKind:
		return fmt.Sprintf("~(%s)", f.Child)
	case ConjunctionKind:
		return fmt.Sprintf("(%s & %s)", f.Left, f.Right)
	case DisjunctionKind:
		return fmt.Sprintf("(%s v %s)", f.Left, f.Right)
	case ConditionalKind:
		return fmt.Sprintf("(%s > %s)", f.Left, f.Right)
	case UniversalKind:
		return fmt.Sprintf("∀<%s>(%s)", f.Var, f.Child)
	case ExistentialKind:
		return fmt.Sprintf("∃<%s>(%s)", f.Var, f.Child)
	}
	return fmt.Sprintf("!unknown(%d)", f.Kind)
}
