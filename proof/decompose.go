package proof

import (
	"fmt"

	"github.com/prooflab/gentzen/debug"
	"github.com/prooflab/gentzen/formula"
	"github.com/prooflab/gentzen/sequent"
)

// Decomposer applies one rule of the calculus at a time. A single
// Decomposer should drive a whole search so that its FreshNames supply can
// keep eigenvariable names unique across the tree.
type Decomposer struct {
	names FreshNames
}

// Option configures a Decomposer.
type Option func(*Decomposer)

// WithFreshNames replaces the default Counter supply.
func WithFreshNames(fs FreshNames) Option {
	return func(d *Decomposer) { d.names = fs }
}

func New(opts ...Option) *Decomposer {
	d := &Decomposer{names: &Counter{}}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Decompose applies one rule to s's first complex member and returns the
// resulting Branch. It returns nil when s is atomic: no rule applies and
// the closure check must settle provability. The argument is not mutated;
// every parent sequent is freshly built.
func (d *Decomposer) Decompose(s *sequent.Sequent) *Branch {
	at, ok := s.FirstComplex()
	if !ok {
		return nil
	}
	work := s.Clone()
	f := work.RemoveAt(at)
	if debug.Decompose() {
		debug.Logf("decompose %s at %s[%d]: %s\n", f.Kind, at.Side, at.Index, s)
	}
	switch f.Kind {
	case formula.NegationKind:
		return d.negation(work, f, at.Side)
	case formula.ConditionalKind:
		return d.conditional(work, f, at.Side)
	case formula.ConjunctionKind:
		return d.conjunction(work, f, at.Side)
	case formula.DisjunctionKind:
		return d.disjunction(work, f, at.Side)
	case formula.UniversalKind:
		if at.Side == sequent.Antecedent {
			return d.reusable(work, f, sequent.Antecedent)
		}
		return d.eigenvariable(work, f, sequent.Consequent)
	case formula.ExistentialKind:
		if at.Side == sequent.Consequent {
			return d.reusable(work, f, sequent.Consequent)
		}
		return d.eigenvariable(work, f, sequent.Antecedent)
	}
	panic(fmt.Sprintf("proof: first complex member has kind %v", f.Kind))
}

// negation moves the negatum to the opposite side.
func (d *Decomposer) negation(work *sequent.Sequent, f *formula.Formula, side sequent.Side) *Branch {
	if side == sequent.Antecedent {
		work.PushRight(f.Child)
	} else {
		work.PushLeft(f.Child)
	}
	return branchOf(leafOf(work))
}

// conditional on the antecedent splits into two parents: show the
// antecedent of the conditional, or use its consequent. On the consequent
// it is invertible: assume the left, show the right.
func (d *Decomposer) conditional(work *sequent.Sequent, f *formula.Formula, side sequent.Side) *Branch {
	if side == sequent.Antecedent {
		first := work.Clone()
		first.PushRight(f.Left)
		second := work
		second.PushLeft(f.Right)
		return branchOf(leafOf(first, second))
	}
	work.PushLeft(f.Left)
	work.PushRight(f.Right)
	return branchOf(leafOf(work))
}

// conjunction on the antecedent keeps both conjuncts. On the consequent
// each conjunct must be shown in its own parent.
func (d *Decomposer) conjunction(work *sequent.Sequent, f *formula.Formula, side sequent.Side) *Branch {
	if side == sequent.Antecedent {
		work.PushLeft(f.Left)
		work.PushLeft(f.Right)
		return branchOf(leafOf(work))
	}
	first := work.Clone()
	first.PushRight(f.Left)
	second := work
	second.PushRight(f.Right)
	return branchOf(leafOf(first, second))
}

// disjunction mirrors conjunction: the case split lands on the antecedent
// side, the invertible rule on the consequent side.
func (d *Decomposer) disjunction(work *sequent.Sequent, f *formula.Formula, side sequent.Side) *Branch {
	if side == sequent.Antecedent {
		first := work.Clone()
		first.PushLeft(f.Left)
		second := work
		second.PushLeft(f.Right)
		return branchOf(leafOf(first, second))
	}
	work.PushRight(f.Left)
	work.PushRight(f.Right)
	return branchOf(leafOf(work))
}

// reusable instantiates the predicate against every currently visible
// name, one Leaf per attempt. Completeness may require any of them, so
// they are alternatives (OR), each with a single parent. When no name is
// in play yet, one fresh name seeds the attempt. These rules are not
// re-applied when a deeper branch introduces a brand-new name.
func (d *Decomposer) reusable(work *sequent.Sequent, f *formula.Formula, side sequent.Side) *Branch {
	names := dedup(append(f.Child.Names(), work.Names()...))
	if len(names) == 0 {
		names = []string{d.names.Fresh()}
	}
	leaves := make([]*Leaf, 0, len(names))
	for _, name := range names {
		parent := work.Clone()
		inst := f.Child.Clone()
		inst.Instantiate(f.Var, name)
		parent.Push(side, inst)
		leaves = append(leaves, leafOf(parent))
	}
	return branchOf(leaves...)
}

// eigenvariable instantiates the predicate with exactly one name from the
// FreshNames supply, which guarantees it is used nowhere else in the
// search.
func (d *Decomposer) eigenvariable(work *sequent.Sequent, f *formula.Formula, side sequent.Side) *Branch {
	inst := f.Child
	inst.Instantiate(f.Var, d.names.Fresh())
	work.Push(side, inst)
	return branchOf(leafOf(work))
}

func dedup(names []string) []string {
	seen := map[string]bool{}
	res := names[:0]
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
	}
	return res
}
