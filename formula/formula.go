package formula

import (
	"errors"
	"fmt"
)

// Kind identifies the variant of a Formula node.
type Kind int

const (
	AtomKind Kind = iota
	NegationKind
	ConjunctionKind
	DisjunctionKind
	ConditionalKind
	UniversalKind
	ExistentialKind
)

func (k Kind) String() string {
	return map[Kind]string{
		AtomKind:        "Atom",
		NegationKind:    "Negation",
		ConjunctionKind: "Conjunction",
		DisjunctionKind: "Disjunction",
		ConditionalKind: "Conditional",
		UniversalKind:   "Universal",
		ExistentialKind: "Existential",
	}[k]
}

// Formula is one node of a formula tree. Which fields are meaningful
// depends on Kind:
//
//   - AtomKind: Atom holds the predicate text.
//   - NegationKind: Child holds the negatum.
//   - ConjunctionKind, DisjunctionKind, ConditionalKind: Left and Right
//     hold the operands, order preserving.
//   - UniversalKind, ExistentialKind: Var holds the bound variable (a
//     single lowercase letter) and Child the predicate.
type Formula struct {
	Kind  Kind
	Atom  string
	Var   string
	Child *Formula
	Left  *Formula
	Right *Formula
}

var (
	// ErrKind reports a Kind outside the seven formula variants.
	ErrKind = errors.New("unknown formula kind")
	// ErrArity reports a constructor given the wrong number of children
	// for its connective.
	ErrArity = errors.New("wrong number of children")
)

func NewAtom(text string) *Formula {
	return &Formula{Kind: AtomKind, Atom: text}
}

func NewNegation(negatum *Formula) *Formula {
	return &Formula{Kind: NegationKind, Child: negatum}
}

func NewConjunction(left, right *Formula) *Formula {
	return &Formula{Kind: ConjunctionKind, Left: left, Right: right}
}

func NewDisjunction(left, right *Formula) *Formula {
	return &Formula{Kind: DisjunctionKind, Left: left, Right: right}
}

func NewConditional(left, right *Formula) *Formula {
	return &Formula{Kind: ConditionalKind, Left: left, Right: right}
}

func NewUniversal(variable string, predicate *Formula) *Formula {
	return &Formula{Kind: UniversalKind, Var: variable, Child: predicate}
}

func NewExistential(variable string, predicate *Formula) *Formula {
	return &Formula{Kind: ExistentialKind, Var: variable, Child: predicate}
}

// FromChildren builds a non-atomic formula of the given kind, checking that
// the number of supplied children matches the connective's arity. The
// variable argument is only meaningful for quantifier kinds.
func FromChildren(kind Kind, variable string, children ...*Formula) (*Formula, error) {
	arity := 0
	switch kind {
	case NegationKind, UniversalKind, ExistentialKind:
		arity = 1
	case ConjunctionKind, DisjunctionKind, ConditionalKind:
		arity = 2
	default:
		return nil, fmt.Errorf("%w: %v", ErrKind, kind)
	}
	if len(children) != arity {
		return nil, fmt.Errorf("%w: %v wants %d, got %d", ErrArity, kind, arity, len(children))
	}
	switch kind {
	case NegationKind:
		return NewNegation(children[0]), nil
	case UniversalKind:
		return NewUniversal(variable, children[0]), nil
	case ExistentialKind:
		return NewExistential(variable, children[0]), nil
	case ConjunctionKind:
		return NewConjunction(children[0], children[1]), nil
	case DisjunctionKind:
		return NewDisjunction(children[0], children[1]), nil
	default:
		return NewConditional(children[0], children[1]), nil
	}
}
