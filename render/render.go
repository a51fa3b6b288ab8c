package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prooflab/gentzen/formula"
	"github.com/prooflab/gentzen/proof"
	"github.com/prooflab/gentzen/sequent"
)

// Renderer writes formulas, sequents, and decomposition trees using a
// color palette. The output text matches the canonical forms, so a Mono
// renderer produces exactly the String methods' output.
type Renderer struct {
	colors *Colors
}

func New(colors *Colors) *Renderer {
	if colors == nil {
		colors = Mono()
	}
	return &Renderer{colors: colors}
}

func (r *Renderer) Formula(f *formula.Formula) string {
	var sb strings.Builder
	r.formula(&sb, f)
	return sb.String()
}

func (r *Renderer) formula(sb *strings.Builder, f *formula.Formula) {
	switch f.Kind {
	case formula.AtomKind:
		r.atom(sb, f.Atom)
	case formula.NegationKind:
		sb.WriteString(r.colors.Color(ConnectiveElem, "~"))
		sb.WriteString(r.colors.Color(SepElem, "("))
		r.formula(sb, f.Child)
		sb.WriteString(r.colors.Color(SepElem, ")"))
	case formula.ConjunctionKind, formula.DisjunctionKind, formula.ConditionalKind:
		op := map[formula.Kind]string{
			formula.ConjunctionKind: "&",
			formula.DisjunctionKind: "v",
			formula.ConditionalKind: ">",
		}[f.Kind]
		sb.WriteString(r.colors.Color(SepElem, "("))
		r.formula(sb, f.Left)
		sb.WriteString(" " + r.colors.Color(ConnectiveElem, op) + " ")
		r.formula(sb, f.Right)
		sb.WriteString(r.colors.Color(SepElem, ")"))
	case formula.UniversalKind, formula.ExistentialKind:
		q := "∀"
		if f.Kind == formula.ExistentialKind {
			q = "∃"
		}
		sb.WriteString(r.colors.Color(ConnectiveElem, q))
		sb.WriteString(r.colors.Color(BinderElem, "<"+f.Var+">"))
		sb.WriteString(r.colors.Color(SepElem, "("))
		r.formula(sb, f.Child)
		sb.WriteString(r.colors.Color(SepElem, ")"))
	}
}

// atom colors placeholder runs within atom text separately from the
// surrounding words.
func (r *Renderer) atom(sb *strings.Builder, text string) {
	for {
		open := strings.IndexByte(text, '<')
		if open < 0 {
			break
		}
		end := placeholderEnd(text, open)
		if end < 0 {
			open = open + 1
			sb.WriteString(r.colors.Color(AtomElem, text[:open]))
			text = text[open:]
			continue
		}
		sb.WriteString(r.colors.Color(AtomElem, text[:open]))
		sb.WriteString(r.colors.Color(PlaceholderElem, text[open:end]))
		text = text[end:]
	}
	sb.WriteString(r.colors.Color(AtomElem, text))
}

// placeholderEnd returns the index just past a "<lowercase>" run starting
// at open, or -1 when the text there is not a placeholder.
func placeholderEnd(text string, open int) int {
	i := open + 1
	for i < len(text) && text[i] >= 'a' && text[i] <= 'z' {
		i++
	}
	if i == open+1 || i >= len(text) || text[i] != '>' {
		return -1
	}
	return i + 1
}

func (r *Renderer) Sequent(s *sequent.Sequent) string {
	var sb strings.Builder
	r.side(&sb, s.Members(sequent.Antecedent))
	sb.WriteString(" ")
	sb.WriteString(r.colors.Color(TurnstileElem, sequent.Turnstile))
	sb.WriteString(" ")
	r.side(&sb, s.Members(sequent.Consequent))
	return sb.String()
}

func (r *Renderer) side(sb *strings.Builder, members []*formula.Formula) {
	for i, f := range members {
		if i > 0 {
			sb.WriteString(r.colors.Color(SepElem, ","))
			sb.WriteString(" ")
		}
		r.formula(sb, f)
	}
}

// Tree renders one decomposition step as an indented AND-OR tree. A nil
// branch renders as empty output.
func (r *Renderer) Tree(b *proof.Branch) string {
	if b == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(r.colors.Color(LabelElem, "OR"))
	sb.WriteString("\n")
	for _, leaf := range b.Leaves {
		sb.WriteString("  ")
		sb.WriteString(r.colors.Color(LabelElem, "AND"))
		sb.WriteString("\n")
		for _, parent := range leaf.Parents {
			sb.WriteString("    ")
			sb.WriteString(r.Sequent(parent))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// Model renders a countermodel assignment, one atom per line, in sorted
// order for stable output.
func (r *Renderer) Model(model map[string]bool) string {
	atoms := make([]string, 0, len(model))
	for atom := range model {
		atoms = append(atoms, atom)
	}
	sort.Strings(atoms)
	var sb strings.Builder
	for _, atom := range atoms {
		r.atom(&sb, atom)
		sb.WriteString(r.colors.Color(SepElem, ": "))
		sb.WriteString(r.colors.Color(LabelElem, fmt.Sprintf("%v", model[atom])))
		sb.WriteString("\n")
	}
	return sb.String()
}
