package sat

import (
	"errors"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/prooflab/gentzen/debug"
	"github.com/prooflab/gentzen/formula"
	"github.com/prooflab/gentzen/sequent"
)

// ErrQuantified indicates a formula with a quantifier, which the
// propositional encoding cannot express.
var ErrQuantified = errors.New("quantified formula")

// Assignment maps atom text to the truth value a countermodel gives it.
type Assignment map[string]bool

// builder translates formulas into a gini circuit.  Atoms with the same
// text share one variable.
type builder struct {
	c    *logic.C
	vars map[string]z.Lit
	err  error
}

func newBuilder() *builder {
	return &builder{
		c:    logic.NewC(),
		vars: make(map[string]z.Lit),
	}
}

func (b *builder) lit(f *formula.Formula) z.Lit {
	if b.err != nil {
		return b.c.F
	}
	switch f.Kind {
	case formula.AtomKind:
		return b.atom(f.Atom)
	case formula.NegationKind:
		return b.lit(f.Child).Not()
	case formula.ConjunctionKind:
		return b.c.And(b.lit(f.Left), b.lit(f.Right))
	case formula.DisjunctionKind:
		return b.c.Or(b.lit(f.Left), b.lit(f.Right))
	case formula.ConditionalKind:
		return b.c.Or(b.lit(f.Left).Not(), b.lit(f.Right))
	default:
		b.err = fmt.Errorf("%w: %q", ErrQuantified, f.String())
		return b.c.F
	}
}

func (b *builder) atom(text string) z.Lit {
	if m, ok := b.vars[text]; ok {
		return m
	}
	m := b.c.Lit()
	b.vars[text] = m
	return m
}

// Valid reports whether a propositional sequent holds under every truth
// assignment.  An invalid sequent comes back with a countermodel: an
// assignment making every antecedent true and every consequent false.
// Sequents containing quantifiers yield ErrQuantified.
func Valid(s *sequent.Sequent) (bool, Assignment, error) {
	b := newBuilder()

	ant := b.c.T
	for _, f := range s.Members(sequent.Antecedent) {
		ant = b.c.And(ant, b.lit(f))
	}
	con := b.c.F
	for _, f := range s.Members(sequent.Consequent) {
		con = b.c.Or(con, b.lit(f))
	}
	if b.err != nil {
		return false, nil, b.err
	}

	// The sequent fails exactly when all antecedents hold and no
	// consequent does.
	counter := b.c.And(ant, con.Not())

	g := gini.New()
	b.c.ToCnf(g)
	g.Assume(counter)

	result := g.Solve()
	if debug.SAT() {
		debug.Logf("sat: %s vars=%d solve=%d\n", s, len(b.vars), result)
	}
	if result == 1 {
		model := make(Assignment, len(b.vars))
		for atom, m := range b.vars {
			model[atom] = g.Value(m)
		}
		return false, model, nil
	}
	return true, nil, nil
}

// Tautology reports whether a single propositional formula is true under
// every assignment.
func Tautology(f *formula.Formula) (bool, Assignment, error) {
	return Valid(sequent.New(nil, []*formula.Formula{f}))
}
