package textdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/prooflab/gentzen/formula"
	"github.com/prooflab/gentzen/sequent"
)

// Op classifies one edit.
type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return " "
}

// Line is one line of a text diff.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs two texts line by line.
func Lines(from, to string) []Line {
	diffCfg := diffpatch.New()
	fromChars, toChars, lineArray := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(fromChars, toChars, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	for _, diff := range diffs {
		op := opOf(diff.Type)
		for _, text := range splitLines(diff.Text) {
			lines = append(lines, Line{Op: op, Text: text})
		}
	}
	return lines
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// Edit is one formula-level edit within a sequent side.
type Edit struct {
	Op      Op
	Formula *formula.Formula
}

// Members diffs two formula lists as units. Formulas with equal canonical
// text map to the same rune, so the diff works over member sequences
// rather than characters.
func Members(from, to []*formula.Formula) []Edit {
	textMap := map[string]rune{}
	fromRunes := mapMembersTo(textMap, from)
	toRunes := mapMembersTo(textMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	var edits []Edit
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				edits = append(edits, Edit{Op: Delete, Formula: from[fi]})
				fi++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				edits = append(edits, Edit{Op: Insert, Formula: to[ti]})
				ti++
			}
		case diffpatch.DiffEqual:
			for range diff.Text {
				edits = append(edits, Edit{Op: Equal, Formula: from[fi]})
				fi++
				ti++
			}
		}
	}
	return edits
}

func mapMembersTo(textMap map[string]rune, members []*formula.Formula) []rune {
	runes := make([]rune, 0, len(members))
	for _, f := range members {
		text := f.String()
		r, ok := textMap[text]
		if !ok {
			r = rune(len(textMap) + 1)
			textMap[text] = r
		}
		runes = append(runes, r)
	}
	return runes
}

// Delta is a per-side diff of two sequents.
type Delta struct {
	Ant, Con []Edit
}

// Sequents diffs two sequents member by member on each side.
func Sequents(from, to *sequent.Sequent) *Delta {
	return &Delta{
		Ant: Members(from.Members(sequent.Antecedent), to.Members(sequent.Antecedent)),
		Con: Members(from.Members(sequent.Consequent), to.Members(sequent.Consequent)),
	}
}

// Changed reports whether the delta contains any insert or delete.
func (d *Delta) Changed() bool {
	for _, edits := range [][]Edit{d.Ant, d.Con} {
		for _, e := range edits {
			if e.Op != Equal {
				return true
			}
		}
	}
	return false
}

func opOf(t diffpatch.Operation) Op {
	switch t {
	case diffpatch.DiffInsert:
		return Insert
	case diffpatch.DiffDelete:
		return Delete
	}
	return Equal
}
