package parse

import (
	"fmt"
	"strings"

	"github.com/prooflab/gentzen/formula"
	"github.com/prooflab/gentzen/token"
)

// Parse parses formula text into a formula tree.
func Parse(text string) (*formula.Formula, error) {
	text = Deparenthesize(strings.TrimSpace(text))
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, ErrEmptyString
	}
	if f, err, ok := parseFusedQuantifier(text); ok {
		return f, err
	}
	if negatum, ok := fusedNegatum(text); ok {
		child, err := Parse(negatum)
		if err != nil {
			return nil, err
		}
		return formula.NewNegation(child), nil
	}
	switch k := token.Keyword(words[0]); {
	case k == token.Negation:
		negatum, err := Parse(strings.Join(words[1:], " "))
		if err != nil {
			return nil, err
		}
		return formula.NewNegation(negatum), nil
	case k.Quantifier():
		if len(words) < 2 {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, text)
		}
		v, ok := token.BinderVar(words[1])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, text)
		}
		predicate, err := Parse(strings.Join(words[2:], " "))
		if err != nil {
			return nil, err
		}
		if k == token.Universal {
			return formula.NewUniversal(v, predicate), nil
		}
		return formula.NewExistential(v, predicate), nil
	}
	if at, k := firstBinary(words); k != token.None {
		leftText := strings.Join(words[:at], " ")
		rightText := strings.Join(words[at+1:], " ")
		if leftText == "" || rightText == "" {
			return nil, fmt.Errorf("%w: %q", ErrMalformed, text)
		}
		left, err := Parse(leftText)
		if err != nil {
			return nil, err
		}
		right, err := Parse(rightText)
		if err != nil {
			return nil, err
		}
		f, err := formula.FromChildren(kindOf(k), "", left, right)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidConnective, words[at])
		}
		return f, nil
	}
	return formula.NewAtom(text), nil
}

// parseFusedQuantifier handles the symbol quantifiers written without
// whitespace, as in "∃<a>(<a> is on the mat)". The ok result is false when
// text does not start with a fused "∃" or "∀", or when the group after the
// binder closes before the end of the text: then the quantifier is an
// operand of a larger formula and the binary split must find it.
func parseFusedQuantifier(text string) (*formula.Formula, error, bool) {
	var k token.Kind
	switch {
	case strings.HasPrefix(text, "∃"):
		k = token.Existential
	case strings.HasPrefix(text, "∀"):
		k = token.Universal
	default:
		return nil, nil, false
	}
	rest := text[len("∃"):]
	if rest == "" || rest[0] == ' ' {
		return nil, nil, false
	}
	if len(rest) < 3 {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, text), true
	}
	v, ok := token.BinderVar(rest[:3])
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, text), true
	}
	grp := rest[3:]
	if !strings.HasPrefix(grp, "(") {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, text), true
	}
	if !connectedGroup(grp) {
		return nil, nil, false
	}
	predicate, err := Parse(grp)
	if err != nil {
		return nil, err, true
	}
	if k == token.Universal {
		return formula.NewUniversal(v, predicate), nil, true
	}
	return formula.NewExistential(v, predicate), nil, true
}

// fusedNegatum recognizes the canonical fused negation "~(...)" where the
// parenthesis group opened at the second character closes at the final one.
// "~(A) & B" is not a fused negation; the negation there is the left operand
// of the split, not the whole text.
func fusedNegatum(text string) (string, bool) {
	if !strings.HasPrefix(text, "~(") {
		return "", false
	}
	if !connectedGroup(text[1:]) {
		return "", false
	}
	return text[1:], true
}

// connectedGroup reports whether s is one parenthesis group: it opens at
// the first byte and that pair closes at the final byte.
func connectedGroup(s string) bool {
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return false
	}
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			return i == len(s)-1
		}
	}
	return false
}

// firstBinary returns the index and kind of the first word at parenthesis
// depth zero matching a binary keyword. Depth is updated with each word's
// own parentheses before the word is tested, so a keyword fused to a
// bracket, as in "(A", never splits.
func firstBinary(words []string) (int, token.Kind) {
	depth := 0
	for i, word := range words {
		for j := 0; j < len(word); j++ {
			switch word[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
		}
		if depth != 0 {
			continue
		}
		if k := token.Keyword(word); k.Binary() {
			return i, k
		}
	}
	return -1, token.None
}

func kindOf(k token.Kind) formula.Kind {
	switch k {
	case token.Conjunction:
		return formula.ConjunctionKind
	case token.Disjunction:
		return formula.DisjunctionKind
	case token.Conditional:
		return formula.ConditionalKind
	case token.Negation:
		return formula.NegationKind
	case token.Universal:
		return formula.UniversalKind
	case token.Existential:
		return formula.ExistentialKind
	}
	return formula.Kind(-1)
}

// Deparenthesize strips outer parentheses from text, one connected pair at
// a time. A pair is connected when the nesting counter, scanning left to
// right, first returns to zero at the final character; "(A) & (B)" has two
// top level groups and is returned unchanged. Deparenthesize is idempotent.
func Deparenthesize(text string) string {
	for strings.HasPrefix(text, "(") && strings.HasSuffix(text, ")") {
		depth := 0
		for i := 0; i < len(text); i++ {
			switch text[i] {
			case '(':
				depth++
			case ')':
				depth--
			}
			if depth <= 0 && i+1 < len(text) {
				return text
			}
		}
		text = text[1 : len(text)-1]
	}
	return text
}
