package sequent

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prooflab/gentzen/formula"
	"github.com/prooflab/gentzen/parse"
)

// Turnstile separates the two sides of a sequent in text form.
const Turnstile = "|~"

// ErrTurnstile reports sequent text without exactly one turnstile.
var ErrTurnstile = errors.New("sequent text must contain exactly one turnstile")

// Parse reads the sequent grammar: two comma-separated formula lists
// joined by "|~". Either list may be empty. A member that fails to parse
// fails the whole sequent.
func Parse(text string) (*Sequent, error) {
	parts := strings.Split(text, Turnstile)
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrTurnstile, text)
	}
	ant, err := parseSide(parts[0])
	if err != nil {
		return nil, err
	}
	con, err := parseSide(parts[1])
	if err != nil {
		return nil, err
	}
	return New(ant, con), nil
}

func parseSide(text string) ([]*formula.Formula, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	var members []*formula.Formula
	for _, part := range strings.Split(text, ",") {
		f, err := parse.Parse(part)
		if err != nil {
			return nil, err
		}
		members = append(members, f)
	}
	return members, nil
}
