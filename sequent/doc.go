// Package sequent provides the proof goal of the calculus: an ordered pair
// of formula lists.
//
// # Overview
//
// A Sequent holds an antecedent (formulas assumed true) and a consequent
// (formulas to be shown, disjunctively). Order is preserved for
// deterministic rule selection, not for logical meaning. FirstComplex scans
// the antecedent left to right and then the consequent left to right for
// the first member with complexity above zero; this scan order fixes which
// subgoal the decomposition engine attacks next and therefore the exact
// shape of the proof tree.
//
// A sequent is mutated only by the decomposition engine, through RemoveAt
// and the push operations. Rules that produce more than one independent
// parent deep clone first.
//
// # Text form
//
// Parse reads the turnstile grammar: two comma-separated formula lists
// joined by "|~", as in "A, B |~ C". Either side may be empty.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/formula - formula representation
//   - github.com/prooflab/gentzen/proof - decomposition over sequents
package sequent
