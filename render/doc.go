// Package render writes formulas, sequents, and decomposition trees for
// terminals.
//
// # Usage
//
//	r := render.New(render.NewColors())
//	fmt.Print(r.Sequent(s))
//
// A Renderer pairs the canonical text forms with a color palette. The
// Mono palette applies no colors at all; its output is byte for byte the
// String methods' output, so piped output stays plain.
//
// # Related Packages
//
//   - github.com/prooflab/gentzen/formula: the canonical text forms.
//   - github.com/prooflab/gentzen/proof: the trees Tree renders.
package render
