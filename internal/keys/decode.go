package keys

import "github.com/gdamore/tcell/v2"

// Decode converts a tcell key event into the canonical Key form binding
// specs decode into. tcell already performs the escape-sequence decoding
// spec §4.8 describes (standalone Esc vs. Alt-chord vs. named function/
// navigation keys) against the terminal's terminfo entry, so this is a
// field-level translation rather than a byte-level one.
func Decode(ev *tcell.EventKey) Key {
	var mods Mods
	m := ev.Modifiers()
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}

	if ev.Key() == tcell.KeyRune {
		return Key{Rune: ev.Rune(), Mods: mods}
	}
	if ev.Key() == tcell.KeyBacktab {
		return Key{Name: "tab", Mods: mods | ModShift}
	}
	if name, ok := tcellKeyToName[ev.Key()]; ok {
		return Key{Name: name, Mods: mods}
	}
	// Ctrl+<letter> arrives as its own tcell.Key constant (e.g. KeyCtrlS)
	// rather than KeyRune with ModCtrl set, on most terminals.
	if r, ok := ctrlLetter(ev.Key()); ok {
		return Key{Rune: r, Mods: mods | ModCtrl}
	}
	return Key{Rune: ev.Rune(), Mods: mods}
}

// ctrlLetter maps tcell's KeyCtrlA..KeyCtrlZ constants back to the plain
// letter they correspond to, so "ctrl+s" binding specs match regardless of
// which form the terminal delivered.
func ctrlLetter(k tcell.Key) (rune, bool) {
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return rune('a' + (k - tcell.KeyCtrlA)), true
	}
	return 0, false
}
