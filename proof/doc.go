// Package proof decomposes sequents by the rules of the calculus.
//
// # Overview
//
// One decomposition step locates a sequent's first complex member, removes
// it, and dispatches on its kind and side to produce a Branch: an AND-OR
// node of the proof tree. A Branch holds alternative Leaves, at least one
// of which must succeed (OR); a Leaf holds parent sequents, all of which
// must be proved (AND).
//
// Deterministic connective rules produce exactly one Leaf, with one or two
// parents. The reusable quantifier rules (Universal on the antecedent,
// Existential on the consequent) produce one Leaf per currently visible
// constant name, because completeness may require testing the quantified
// claim against any constant a countermodel could use. The eigenvariable
// rules (Existential on the antecedent, Universal on the consequent)
// instantiate exactly one name drawn from the FreshNames supply, whose
// contract is that the name occurs nowhere else in the search.
//
// The engine is pure and synchronous. Every rule that produces more than
// one independent parent deep clones before mutating, so no substitution
// on one branch is observable from another.
//
// # Known gaps
//
// The reusable quantifier rules are not re-applied when a deeper branch
// introduces a brand-new name, so the search is not complete. Substitution
// does not guard against a nested quantifier rebinding an in-use variable.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/sequent - the proof goal
//   - github.com/prooflab/gentzen/search - drives decomposition to a verdict
package proof
