package encoding

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	xtextencoding "golang.org/x/text/encoding"
)

// Decode runs the fallback chain from spec §6: the detected candidate
// (when its confidence clears ConfidenceThreshold) is tried first, then
// plain utf-8, then latin-1, and finally utf-8 with invalid sequences
// replaced — which always succeeds. It returns the decoded text and the
// name of whichever candidate actually worked.
func Decode(data []byte) (string, Name) {
	detected, confidence := Detect(data)

	var chain []Name
	if confidence >= ConfidenceThreshold {
		chain = append(chain, detected)
	}
	chain = append(chain, UTF8, Latin1)

	seen := make(map[Name]bool)
	for _, candidate := range chain {
		if seen[candidate] {
			continue
		}
		seen[candidate] = true
		if text, ok := decodeAs(candidate, data); ok {
			return text, candidate
		}
	}

	return strings.ToValidUTF8(string(data), string(utf8.RuneError)), UTF8
}

func decodeAs(name Name, data []byte) (string, bool) {
	switch name {
	case UTF8:
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	case Latin1:
		return decodeCharmap(charmap.ISO8859_1, data)
	case UTF16LE:
		return decodeXText(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), data)
	case UTF16BE:
		return decodeXText(unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), data)
	default:
		return "", false
	}
}

func decodeCharmap(cm *charmap.Charmap, data []byte) (string, bool) {
	out, err := cm.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}

func decodeXText(enc xtextencoding.Encoding, data []byte) (string, bool) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(out), true
}
