// Package sat decides propositional sequent validity with a SAT solver.
//
// # Usage
//
//	s, _ := sequent.Parse("A > B, A |~ B")
//	ok, model, err := sat.Valid(s)
//
// A sequent is valid when the conjunction of its antecedents entails the
// disjunction of its consequents.  Validity is checked by asking gini
// whether the negation of that implication is satisfiable; a satisfying
// assignment is returned as the countermodel.
//
// Quantified formulas have no propositional reading and are rejected
// with ErrQuantified.  Use package search for those.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/search: proof search over sequents,
//     including the quantifier rules.
package sat
