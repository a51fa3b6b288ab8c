package token

// Kind identifies a connective or quantifier keyword.
type Kind int

const (
	None Kind = iota
	Negation
	Conjunction
	Disjunction
	Conditional
	Universal
	Existential
)

func (k Kind) String() string {
	return map[Kind]string{
		None:        "None",
		Negation:    "Negation",
		Conjunction: "Conjunction",
		Disjunction: "Disjunction",
		Conditional: "Conditional",
		Universal:   "Universal",
		Existential: "Existential",
	}[k]
}

// Binary reports whether k is a two-place connective.
func (k Kind) Binary() bool {
	switch k {
	case Conjunction, Disjunction, Conditional:
		return true
	}
	return false
}

// Quantifier reports whether k binds a variable.
func (k Kind) Quantifier() bool {
	return k == Universal || k == Existential
}

var keywords = map[string]Kind{
	"~":       Negation,
	"not":     Negation,
	"&":       Conjunction,
	"and":     Conjunction,
	"v":       Disjunction,
	"or":      Disjunction,
	">":       Conditional,
	"implies": Conditional,
	"∀":       Universal,
	"forall":  Universal,
	"∃":       Existential,
	"exists":  Existential,
}

// Keyword returns the Kind of word, or None if word is not a keyword.
func Keyword(word string) Kind {
	return keywords[word]
}

// BinderVar extracts the bound variable from a binder word of the exact
// shape "<x>" with x a single lowercase letter. The bool result is false
// for any other word.
func BinderVar(word string) (string, bool) {
	if len(word) != 3 || word[0] != '<' || word[2] != '>' {
		return "", false
	}
	if word[1] < 'a' || word[1] > 'z' {
		return "", false
	}
	return word[1:2], true
}
