package keys

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseSpec decodes one binding specification string into the set of Keys
// it denotes, per spec §4.8/§6: `ctrl+s`, `f5`, `shift+up`, `alt-j` (a
// modifier chord), `a|b|c` (alternation — each alternative decoded
// independently), or a raw integer (a literal code point, kept for
// terminal-compatibility configs that still list ASCII control codes).
//
// An unknown modifier name causes this single spec to be skipped with an
// error; it never aborts the rest of the binding table.
func ParseSpec(spec string) ([]Key, error) {
	var keys []Key
	for _, alt := range strings.Split(spec, "|") {
		alt = strings.TrimSpace(alt)
		if alt == "" {
			continue
		}
		k, err := parseChord(alt)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("keys: empty binding spec")
	}
	return keys, nil
}

func parseChord(spec string) (Key, error) {
	if n, err := strconv.Atoi(spec); err == nil {
		return Key{Rune: rune(n)}, nil
	}

	parts := splitChord(spec)
	base := parts[len(parts)-1]
	var mods Mods
	for _, m := range parts[:len(parts)-1] {
		switch strings.ToLower(m) {
		case "ctrl":
			mods |= ModCtrl
		case "alt":
			mods |= ModAlt
		case "shift":
			mods |= ModShift
		default:
			return Key{}, fmt.Errorf("keys: unknown modifier %q in spec %q", m, spec)
		}
	}

	lower := strings.ToLower(base)
	if _, ok := namedKeys[lower]; ok {
		return Key{Name: lower, Mods: mods}, nil
	}
	runes := []rune(base)
	if len(runes) == 1 {
		r := runes[0]
		if mods&ModShift != 0 {
			r = unicode.ToUpper(r)
		}
		return Key{Rune: r, Mods: mods &^ ModShift}, nil
	}
	return Key{}, fmt.Errorf("keys: unrecognized key name %q in spec %q", base, spec)
}

// splitChord splits a chord on '+' or '-' separators, e.g. "ctrl+s" and
// "alt-j" both split into ["ctrl","s"] / ["alt","j"]. A bare base key with
// no separator (e.g. "f5") yields a single-element slice.
func splitChord(spec string) []string {
	fields := strings.FieldsFunc(spec, func(r rune) bool { return r == '+' || r == '-' })
	if len(fields) == 0 {
		return []string{spec}
	}
	return fields
}
