package encode

import (
	"strings"

	"github.com/signadot/dlmatch/dl"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind dl.Kind
	Part dl.Part
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string

	Var     func(string, ...any) string
	Added   func(string, ...any) string
	Removed func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		Var:     escaped(color.RGB(196, 168, 128).SprintfFunc()),
		Added:   escaped(color.GreenString),
		Removed: escaped(color.RedString),
	}
	for _, k := range dl.Kinds() {
		able := Colorable{Kind: k, Part: dl.ParenPart}
		colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()
		if k.IsAxiom() {
			able.Part = dl.KindPart
			colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
			continue
		}
		able.Part = dl.KindPart
		colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Part: dl.IRIPart}

	able.Kind = dl.ClassKind
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = dl.ObjectPropertyKind
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = dl.NamedIndividualKind
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	colors.Map[Colorable{Kind: dl.NoKind, Part: dl.ScalarPart}] = color.CyanString
	colors.Map[Colorable{Kind: dl.NoKind, Part: dl.ParenPart}] = color.RGB(255, 0, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = escaped(f)
	}
	return colors
}

func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

// Paint is a dl.Painter.
func (c *Colors) Paint(k dl.Kind, p dl.Part, s string) string {
	return c.Get(k, p)(s)
}

func (c *Colors) Get(k dl.Kind, p dl.Part) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Part: p}]
	if f == nil {
		return c.Default
	}
	return f
}
