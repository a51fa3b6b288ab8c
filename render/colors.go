package render

import (
	"strings"

	"github.com/fatih/color"
)

// Element classifies the pieces of rendered output that take a color.
type Element int

const (
	AtomElem Element = iota
	ConnectiveElem
	BinderElem
	PlaceholderElem
	TurnstileElem
	SepElem
	LabelElem
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Element]func(string, ...any) string
}

// NewColors builds the default terminal palette.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Element]func(string, ...any) string{},
	}
	colors.Map[AtomElem] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[ConnectiveElem] = color.RGB(255, 0, 196).SprintfFunc()
	colors.Map[BinderElem] = color.RGB(128, 216, 236).SprintfFunc()
	colors.Map[PlaceholderElem] = color.RGB(196, 96, 16).SprintfFunc()
	colors.Map[TurnstileElem] = color.RGB(196, 128, 128).SprintfFunc()
	colors.Map[SepElem] = color.RGB(96, 96, 96).SprintfFunc()
	colors.Map[LabelElem] = color.BlueString

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

// Mono renders every element uncolored, for pipes and dumb terminals.
func Mono() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[Element]func(string, ...any) string{},
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(e Element, s string) string {
	return c.Get(e)(s)
}

func (c *Colors) Get(e Element) func(string, ...any) string {
	f := c.Map[e]
	if f == nil {
		return c.Default
	}
	return f
}
