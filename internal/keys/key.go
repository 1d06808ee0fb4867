package keys

// Mods is a bitmask of the modifier keys a Key carries.
type Mods uint8

const (
	ModCtrl Mods = 1 << iota
	ModAlt
	ModShift
)

// Key is the canonical decoded form of one key event: either a printable
// code point (Rune set, Name empty) or a named special key (Name set,
// Rune zero), plus any modifiers. Binding specs decode into this same
// shape so dispatch is a plain map lookup.
type Key struct {
	Rune rune
	Name string
	Mods Mods
}
