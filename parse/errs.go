package parse

import "errors"

var (
	// ErrEmptyString reports formula text that is empty after trimming
	// and deparenthesizing.
	ErrEmptyString = errors.New("empty formula text")

	// ErrMalformed reports formula text whose shape cannot be
	// interpreted, such as a binary connective missing an operand or a
	// quantifier missing its binder.
	ErrMalformed = errors.New("malformed formula text")

	// ErrInvalidConnective reports a connective token that reached a
	// build step without a matching formula variant.
	ErrInvalidConnective = errors.New("invalid connective")
)
