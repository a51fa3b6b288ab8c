// Package textdiff diffs sequents and rendered output.
//
// Member diffs treat each formula as one unit: members with the same
// canonical text are mapped to the same rune and the rune sequences are
// diffed, so a decomposition step shows up as the members it moved or
// introduced rather than a character-level scramble.
package textdiff
