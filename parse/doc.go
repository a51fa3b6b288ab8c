// Package parse parses formula text into formula trees.
//
// # Usage
//
//	f, err := parse.Parse("~ (the cat is on the mat)")
//	if err != nil {
//	    return err
//	}
//
// # Grammar
//
// Formula text is whitespace-tokenized, with "(" and ")" for grouping (the
// outermost pair may be omitted). Negation is the prefix "~" or "not";
// conjunction, disjunction and conditional are the infix pairs "&"/"and",
// "v"/"or" and ">"/"implies"; quantifiers are the prefixes "∃"/"exists" and
// "∀"/"forall", each immediately followed by a binder of the exact shape
// "<x>" with x one lowercase letter.
//
// There is no precedence table. The first binary keyword found at
// parenthesis depth zero, scanning left to right, splits the formula, so
// mixed unparenthesized connectives group by discovery order and any other
// grouping needs explicit parentheses.
//
// The canonical fused forms "~(child)" and "∃<x>(predicate)" are accepted
// without whitespace, so Formula.String output always re-parses to an
// equal tree.
//
// Errors are typed sentinels wrapped with the exact fragment of text that
// could not be interpreted; a malformed subformula fails the entire
// containing parse.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/formula - formula representation
//   - github.com/prooflab/gentzen/token - keyword classification
//   - github.com/prooflab/gentzen/sequent - the turnstile grammar over this one
package parse
