package editor

import "github.com/kodexeditor/kodex/internal/syntax"

// theme holds the fixed chrome attributes (gutter, selection highlight,
// status bar) that sit outside the chroma-derived token palette.
var theme = struct {
	Default   syntax.Attr
	Gutter    syntax.Attr
	Selection syntax.Attr
	Search    syntax.Attr
	Bracket   syntax.Attr
	Separator syntax.Attr
	Error     syntax.Attr
}{
	Default:   syntax.Attr{},
	Gutter:    syntax.Attr{FG: syntax.Color{R: 0x60, G: 0x60, B: 0x60, Set: true}},
	Selection: syntax.Attr{Reverse: true},
	Search:    syntax.Attr{FG: syntax.Color{R: 0, G: 0, B: 0, Set: true}, Bold: true},
	Bracket:   syntax.Attr{Underline: true},
	Separator: syntax.Attr{FG: syntax.Color{R: 0x40, G: 0x40, B: 0x40, Set: true}},
	Error:     syntax.Attr{FG: syntax.Color{R: 0xff, G: 0x40, B: 0x40, Set: true}, Bold: true},
}
