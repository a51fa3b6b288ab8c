package search

import (
	"errors"
	"fmt"

	"github.com/prooflab/gentzen/debug"
	"github.com/prooflab/gentzen/proof"
	"github.com/prooflab/gentzen/sequent"
)

// DefaultMaxDepth bounds the decomposition depth when no option overrides
// it.
const DefaultMaxDepth = 64

// ErrDepthExceeded reports a search that hit its depth ceiling before
// reaching a verdict.
var ErrDepthExceeded = errors.New("proof search depth exceeded")

type searchOpts struct {
	maxDepth int
	names    proof.FreshNames
}

// Option configures Prove.
type Option func(*searchOpts)

// MaxDepth sets the decomposition depth ceiling.
func MaxDepth(n int) Option {
	return func(o *searchOpts) { o.maxDepth = n }
}

// WithFreshNames sets the fresh name supply the decomposer uses for its
// quantifier rules.
func WithFreshNames(fs proof.FreshNames) Option {
	return func(o *searchOpts) { o.names = fs }
}

// Result carries a verdict and search statistics.
type Result struct {
	// Proved reports whether a proof was found. False means no proof was
	// found within the rules applied, not that a countermodel exists.
	Proved bool
	// Expanded counts decomposition steps taken.
	Expanded int
}

// Closes reports whether s is already proved as an axiom: some formula
// occurs, structurally identical, on both sides.
func Closes(s *sequent.Sequent) bool {
	for _, a := range s.Members(sequent.Antecedent) {
		for _, c := range s.Members(sequent.Consequent) {
			if a.Equal(c) {
				return true
			}
		}
	}
	return false
}

// Prove searches for a proof of s.
func Prove(s *sequent.Sequent, opts ...Option) (*Result, error) {
	o := &searchOpts{maxDepth: DefaultMaxDepth, names: &proof.Counter{}}
	for _, opt := range opts {
		opt(o)
	}
	d := proof.New(proof.WithFreshNames(o.names))
	res := &Result{}
	proved, err := prove(d, s, o.maxDepth, res)
	if err != nil {
		return nil, err
	}
	res.Proved = proved
	return res, nil
}

func prove(d *proof.Decomposer, s *sequent.Sequent, depth int, res *Result) (bool, error) {
	b := d.Decompose(s)
	if b == nil {
		ok := Closes(s)
		if debug.Prove() {
			debug.Logf("leaf %s: closes=%v\n", s, ok)
		}
		return ok, nil
	}
	if depth == 0 {
		return false, fmt.Errorf("%w: %s", ErrDepthExceeded, s)
	}
	res.Expanded++
	for _, leaf := range b.Leaves {
		all := true
		for _, parent := range leaf.Parents {
			ok, err := prove(d, parent, depth-1, res)
			if err != nil {
				return false, err
			}
			if !ok {
				all = false
				break
			}
		}
		if all {
			return true, nil
		}
	}
	return false, nil
}
