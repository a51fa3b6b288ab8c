// Package search drives decomposition to a yes/no verdict.
//
// # Usage
//
//	s, err := sequent.Parse("A & B |~ A")
//	if err != nil {
//	    return err
//	}
//	res, err := search.Prove(s)
//	if err != nil {
//	    return err
//	}
//	if res.Proved {
//	    ...
//	}
//
// Prove walks the AND-OR tree the decomposition engine produces: a sequent
// is proved when it is atomic and closes as an axiom, or when some Leaf of
// its decomposition has every parent proved. Reusable quantifier rules and
// unbounded connective splitting can make the tree infinite, so Prove
// enforces a depth ceiling and reports ErrDepthExceeded when the ceiling
// is hit; the bound is driver policy, not an engine invariant.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/proof - the decomposition engine
//   - github.com/prooflab/gentzen/sat - propositional validity cross-check
package search
