package sequent

import (
	"fmt"
	"strings"

	"github.com/prooflab/gentzen/formula"
)

// Side selects the antecedent or consequent of a sequent.
type Side int

const (
	Antecedent Side = iota
	Consequent
)

func (s Side) String() string {
	if s == Antecedent {
		return "antecedent"
	}
	return "consequent"
}

// Coordinates locate one member of a sequent.
type Coordinates struct {
	Side  Side
	Index int
}

// Sequent is one proof goal: antecedent entails consequent.
type Sequent struct {
	ant []*formula.Formula
	con []*formula.Formula
}

// New builds a sequent from two formula lists. The slices are copied; the
// formulas are not.
func New(ant, con []*formula.Formula) *Sequent {
	s := &Sequent{
		ant: make([]*formula.Formula, len(ant)),
		con: make([]*formula.Formula, len(con)),
	}
	copy(s.ant, ant)
	copy(s.con, con)
	return s
}

// Members returns one side of the sequent. The returned slice is the
// sequent's own; callers must not mutate it.
func (s *Sequent) Members(side Side) []*formula.Formula {
	if side == Antecedent {
		return s.ant
	}
	return s.con
}

// Complexity returns the sum of the complexities of every member on both
// sides. It is a general measure of remaining structure, distinct from the
// termination check IsAtomic.
func (s *Sequent) Complexity() int {
	ttl := 0
	for _, f := range s.ant {
		ttl += f.Complexity()
	}
	for _, f := range s.con {
		ttl += f.Complexity()
	}
	return ttl
}

// IsAtomic reports whether no member has complexity above zero.
func (s *Sequent) IsAtomic() bool {
	_, ok := s.FirstComplex()
	return !ok
}

// FirstComplex returns the coordinates of the first member with complexity
// above zero, scanning the antecedent left to right and then the consequent
// left to right. The scan order is a design invariant: it fixes the shape
// of the proof tree. The bool result is false when the sequent is atomic.
func (s *Sequent) FirstComplex() (Coordinates, bool) {
	for i, f := range s.ant {
		if f.Complexity() > 0 {
			return Coordinates{Side: Antecedent, Index: i}, true
		}
	}
	for i, f := range s.con {
		if f.Complexity() > 0 {
			return Coordinates{Side: Consequent, Index: i}, true
		}
	}
	return Coordinates{}, false
}

// RemoveAt detaches and returns the member at the given coordinates.
// Out-of-range coordinates are a caller bug and panic.
func (s *Sequent) RemoveAt(at Coordinates) *formula.Formula {
	side := s.ant
	if at.Side == Consequent {
		side = s.con
	}
	f := side[at.Index]
	side = append(side[:at.Index], side[at.Index+1:]...)
	if at.Side == Antecedent {
		s.ant = side
	} else {
		s.con = side
	}
	return f
}

// Push appends f to the given side.
func (s *Sequent) Push(side Side, f *formula.Formula) {
	if side == Antecedent {
		s.ant = append(s.ant, f)
	} else {
		s.con = append(s.con, f)
	}
}

// PushLeft appends f to the antecedent.
func (s *Sequent) PushLeft(f *formula.Formula) {
	s.Push(Antecedent, f)
}

// PushRight appends f to the consequent.
func (s *Sequent) PushRight(f *formula.Formula) {
	s.Push(Consequent, f)
}

// Names returns the union of the constant names embedded in every member
// on both sides, deduplicated in first-seen order.
func (s *Sequent) Names() []string {
	var names []string
	seen := map[string]bool{}
	add := func(fs []*formula.Formula) {
		for _, f := range fs {
			for _, name := range f.Names() {
				if seen[name] {
					continue
				}
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	add(s.ant)
	add(s.con)
	return names
}

// Clone returns a deep copy sharing no formulas with s.
func (s *Sequent) Clone() *Sequent {
	cp := &Sequent{
		ant: make([]*formula.Formula, len(s.ant)),
		con: make([]*formula.Formula, len(s.con)),
	}
	for i, f := range s.ant {
		cp.ant[i] = f.Clone()
	}
	for i, f := range s.con {
		cp.con[i] = f.Clone()
	}
	return cp
}

// Equal reports structural equality of both sides, in order.
func (s *Sequent) Equal(o *Sequent) bool {
	if len(s.ant) != len(o.ant) || len(s.con) != len(o.con) {
		return false
	}
	for i, f := range s.ant {
		if !f.Equal(o.ant[i]) {
			return false
		}
	}
	for i, f := range s.con {
		if !f.Equal(o.con[i]) {
			return false
		}
	}
	return true
}

func (s *Sequent) String() string {
	ant := make([]string, len(s.ant))
	for i, f := range s.ant {
		ant[i] = f.String()
	}
	con := make([]string, len(s.con))
	for i, f := range s.con {
		con[i] = f.String()
	}
	return fmt.Sprintf("%s |~ %s", strings.Join(ant, ", "), strings.Join(con, ", "))
}
