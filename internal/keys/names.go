package keys

import "github.com/gdamore/tcell/v2"

// namedKeys maps the lower-case spec names from spec §4.8/§6 to their
// tcell key constant, for both binding-spec parsing and event decoding.
var namedKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"home":      tcell.KeyHome,
	"end":       tcell.KeyEnd,
	"pageup":    tcell.KeyPgUp,
	"pagedown":  tcell.KeyPgDn,
	"ins":       tcell.KeyInsert,
	"insert":    tcell.KeyInsert,
	"del":       tcell.KeyDelete,
	"delete":    tcell.KeyDelete,
	"tab":       tcell.KeyTab,
	"enter":     tcell.KeyEnter,
	"backspace": tcell.KeyBackspace2,
	"esc":       tcell.KeyEsc,
	"escape":    tcell.KeyEsc,
	"f1":        tcell.KeyF1,
	"f2":        tcell.KeyF2,
	"f3":        tcell.KeyF3,
	"f4":        tcell.KeyF4,
	"f5":        tcell.KeyF5,
	"f6":        tcell.KeyF6,
	"f7":        tcell.KeyF7,
	"f8":        tcell.KeyF8,
	"f9":        tcell.KeyF9,
	"f10":       tcell.KeyF10,
	"f11":       tcell.KeyF11,
	"f12":       tcell.KeyF12,
}

// tcellKeyToName is namedKeys inverted, for decoding tcell events back
// into spec-level names.
var tcellKeyToName = func() map[tcell.Key]string {
	m := make(map[tcell.Key]string, len(namedKeys))
	for name, k := range namedKeys {
		if _, exists := m[k]; !exists {
			m[k] = name
		}
	}
	m[tcell.KeyBackspace] = "backspace"
	return m
}()
