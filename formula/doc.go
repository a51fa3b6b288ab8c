// Package formula provides the recursive representation of first-order
// formulas.
//
// # Overview
//
// A Formula is a tree of nodes, each one of seven kinds: an opaque Atom, the
// unary Negation, the binary Conjunction, Disjunction and Conditional, and
// the quantifiers Universal and Existential. The tree is strictly owned top
// down: no sharing, no cycles. The Formula type works as a recursive tagged
// union, with values placed in fields depending on the node kind.
//
// # Complexity
//
// Complexity measures the longest path of connectives and quantifiers from
// the root: 0 for an Atom, 1 plus the maximum child complexity otherwise. It
// is the sole termination measure for decomposition. A formula is atomic,
// and no further rule applies to it, exactly when its complexity is 0.
//
// # Placeholders
//
// Atom text may embed "<x>" variable placeholders and "<name>" constant
// placeholders. Instantiate rewrites variable placeholders textually in
// every Atom of a subtree. It does not guard against a nested quantifier
// rebinding the same variable name.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/token - placeholder scanning
//   - github.com/prooflab/gentzen/parse - parse text to formulas
//   - github.com/prooflab/gentzen/sequent - proof goals over formulas
package formula
