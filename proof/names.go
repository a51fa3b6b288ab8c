package proof

// FreshNames supplies constant names for quantifier rules. The contract is
// that every name returned is distinct from every other returned name and
// from every constant occurring anywhere in the search. The supply is
// pluggable so that eigenvariable policy can evolve independently of the
// engine.
type FreshNames interface {
	Fresh() string
}

// Counter is the default FreshNames supply. It emits "gena", "genb", ...,
// "genz", "genaa", and so on: lowercase names with a reserved-looking
// prefix. Callers whose own constants could collide with that sequence
// must supply their own FreshNames.
type Counter struct {
	n int
}

func (c *Counter) Fresh() string {
	c.n++
	return "gen" + suffix(c.n)
}

// suffix spells n in bijective base 26 over a..z; n must be positive.
func suffix(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}
