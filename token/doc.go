// Package token classifies the words of the formula grammar.
//
// Formula text is whitespace-tokenized. A word is either a connective or
// quantifier keyword, a bound-variable binder of the exact shape "<x>", or
// part of an atom's free-form text. Atom text may embed placeholder tokens
// "<x>" (single lowercase letter, a bindable variable) and "<name>" (two or
// more lowercase letters, a constant already in play); Names, Variables and
// Replace scan and rewrite those placeholders directly, without regular
// expressions.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/formula - formula representation
//   - github.com/prooflab/gentzen/parse - parse text to formulas
package token
