package proof

import (
	"fmt"
	"strings"

	"github.com/prooflab/gentzen/sequent"
)

// Leaf holds the parent sequents one rule application requires. All of
// them must be independently provable for the Leaf to certify its child.
type Leaf struct {
	Parents []*sequent.Sequent
}

// Branch holds the alternative Leaves one decomposition step produces. The
// decomposed sequent is provable iff at least one Leaf's parents are all
// provable.
type Branch struct {
	Leaves []*Leaf
}

func leafOf(parents ...*sequent.Sequent) *Leaf {
	return &Leaf{Parents: parents}
}

func branchOf(leaves ...*Leaf) *Branch {
	return &Branch{Leaves: leaves}
}

func (l *Leaf) String() string {
	parts := make([]string, len(l.Parents))
	for i, p := range l.Parents {
		parts[i] = p.String()
	}
	return strings.Join(parts, " AND ")
}

func (b *Branch) String() string {
	parts := make([]string, len(b.Leaves))
	for i, l := range b.Leaves {
		parts[i] = fmt.Sprintf("[%s]", l)
	}
	return strings.Join(parts, " OR ")
}
