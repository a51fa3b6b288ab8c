// Package gentzen ties sequent parsing, proof search, and validity
// checking into one convenience surface.
package gentzen

import (
	"github.com/prooflab/gentzen/proof"
	"github.com/prooflab/gentzen/sat"
	"github.com/prooflab/gentzen/search"
	"github.com/prooflab/gentzen/sequent"
)

type Tool struct {
	MaxDepth int
	Names    proof.FreshNames
}

func DefaultTool() *Tool {
	return &Tool{
		MaxDepth: search.DefaultMaxDepth,
	}
}

// Prove parses text as a sequent and searches for a proof.
func (t *Tool) Prove(text string) (*search.Result, error) {
	s, err := sequent.Parse(text)
	if err != nil {
		return nil, err
	}
	opts := []search.Option{search.MaxDepth(t.MaxDepth)}
	if t.Names != nil {
		opts = append(opts, search.WithFreshNames(t.Names))
	}
	return search.Prove(s, opts...)
}

// Valid parses text as a sequent and checks propositional validity.
func (t *Tool) Valid(text string) (bool, sat.Assignment, error) {
	s, err := sequent.Parse(text)
	if err != nil {
		return false, nil, err
	}
	return sat.Valid(s)
}
