package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/go-usps/ir"
)

// Colorable names a part of the output: a role (ColorAttr) played by a
// node of some type.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
	AttrColor
	ReservedColor
)

// Colors maps parts of the output to colouring functions. Parts missing
// from Map use Default.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

type shade struct {
	rgb  [3]int
	attr color.Attribute
}

// per role colours, applying to every type unless overridden in typeShades
var roleShades = map[ColorAttr]shade{
	SepColor:      {rgb: [3]int{160, 160, 160}},
	ReservedColor: {rgb: [3]int{196, 168, 128}},
	AttrColor:     {rgb: [3]int{74, 92, 138}},
}

var typeShades = map[Colorable]shade{
	{ir.ObjectType, FieldColor}: {rgb: [3]int{128, 168, 196}},
	{ir.StringType, ValueColor}: {rgb: [3]int{8, 196, 16}},
	{ir.NumberType, ValueColor}: {rgb: [3]int{128, 216, 236}},
	{ir.BoolType, ValueColor}:   {attr: color.FgCyan},
	{ir.CDataType, ValueColor}:  {rgb: [3]int{198, 198, 46}},
}

func (s shade) fn() func(string, ...any) string {
	var c *color.Color
	if s.attr != 0 {
		c = color.New(s.attr)
	} else {
		c = color.RGB(s.rgb[0], s.rgb[1], s.rgb[2])
	}
	c.EnableColor()
	// the argument is output text, never a format
	return func(v string, _ ...any) string { return c.Sprint(v) }
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		for role, s := range roleShades {
			colors.Map[Colorable{Type: t, Attr: role}] = s.fn()
		}
	}
	for able, s := range typeShades {
		colors.Map[able] = s.fn()
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

// Get returns the colouring function for t and a. It is safe on a nil
// *Colors, which colours nothing.
func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	if f := c.Map[Colorable{Type: t, Attr: a}]; f != nil {
		return f
	}
	if c.Default == nil {
		return colorDefault
	}
	return c.Default
}

// affixes returns the escape sequences the colour for t and a places
// around its argument.
func (c *Colors) affixes(t ir.Type, a ColorAttr) (prefix, suffix string) {
	prefix, suffix, _ = strings.Cut(c.Get(t, a)("\x00"), "\x00")
	return prefix, suffix
}
