package syntax

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// Palette resolves chroma token colors down to what the active terminal
// can actually display, per the degradation table in spec §4.7.
type Palette struct {
	cap   Capability
	style *chroma.Style
}

// NewPalette binds a chroma style (the semantic, ≥256-color palette) to a
// capability tier decided once at startup.
func NewPalette(cap Capability, style *chroma.Style) *Palette {
	if style == nil {
		style = styles.Fallback
	}
	return &Palette{cap: cap, style: style}
}

// eightColorRamp is the hard-coded fallback palette for 8/16-color
// terminals: each chroma token category maps to one of the eight
// standard ANSI colors, matching spec §4.7's "hard-coded fallback
// palette" (brighter variants are used at the Cap16 tier).
var eightColorRamp = map[chroma.TokenType]Color{
	chroma.Keyword:        {R: 0, G: 0, B: 205, Set: true}, // blue
	chroma.KeywordType:    {R: 0, G: 0, B: 205, Set: true},
	chroma.NameFunction:   {R: 205, G: 205, B: 0, Set: true}, // yellow
	chroma.NameClass:      {R: 205, G: 205, B: 0, Set: true},
	chroma.LiteralString:  {R: 0, G: 205, B: 0, Set: true}, // green
	chroma.LiteralNumber:  {R: 205, G: 0, B: 205, Set: true}, // magenta
	chroma.Comment:        {R: 0, G: 205, B: 205, Set: true}, // cyan
	chroma.GenericError:   {R: 205, G: 0, B: 0, Set: true},  // red
	chroma.NameBuiltin:    {R: 205, G: 0, B: 205, Set: true},
}

func brighten(c Color) Color {
	if !c.Set {
		return c
	}
	lift := func(v uint8) uint8 {
		if v == 0 {
			return 0
		}
		if int(v)+50 > 255 {
			return 255
		}
		return v + 50
	}
	return Color{R: lift(c.R), G: lift(c.G), B: lift(c.B), Set: true}
}

// Resolve returns the Attr for a chroma token type at the palette's
// capability tier. Walking the token's ancestry to find a mapping is
// chroma.Style.Get's own behavior: it is implemented to fall back through
// TokenType parents to Background/Other, matching spec §4.4's "walk
// token-type ancestors until a mapping is found, defaulting to the
// editor's default attribute".
func (p *Palette) Resolve(tt chroma.TokenType, defaultAttr Attr) (Attr, bool) {
	switch p.cap {
	case CapMono:
		entry := p.style.Get(tt)
		var attr Attr
		if entry.Bold == chroma.Yes {
			attr.Bold = true
		}
		if entry.Underline == chroma.Yes {
			attr.Underline = true
		}
		if entry.Italic == chroma.Yes {
			attr.Italic = true
		}
		return attr, attr != (Attr{})
	case Cap8, Cap16:
		for _, t := range []chroma.TokenType{tt, tt.SubCategory(), tt.Category()} {
			if c, ok := eightColorRamp[t]; ok {
				if p.cap == Cap16 {
					c = brighten(c)
				}
				return Attr{FG: c}, true
			}
		}
		return defaultAttr, false
	default: // Cap256Plus: full semantic palette
		entry := p.style.Get(tt)
		base := p.style.Get(chroma.Text)
		if !entry.Colour.IsSet() || entry.Colour == base.Colour {
			return styleAttrWithoutColor(entry, defaultAttr), false
		}
		return Attr{
			FG:        Color{R: entry.Colour.Red(), G: entry.Colour.Green(), B: entry.Colour.Blue(), Set: true},
			Bold:      entry.Bold == chroma.Yes,
			Italic:    entry.Italic == chroma.Yes,
			Underline: entry.Underline == chroma.Yes,
		}, true
	}
}

func styleAttrWithoutColor(entry chroma.StyleEntry, defaultAttr Attr) Attr {
	attr := defaultAttr
	attr.Bold = entry.Bold == chroma.Yes
	attr.Italic = entry.Italic == chroma.Yes
	attr.Underline = entry.Underline == chroma.Yes
	return attr
}
