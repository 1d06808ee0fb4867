// Package clipboard provides the copy/cut/paste backing store used by
// EditorCore, with an in-process fallback when the system clipboard is
// unavailable or turned off in config.
package clipboard

import "github.com/atotto/clipboard"

// Clipboard is the minimal read/write surface EditorCore's copy/cut/paste
// actions need.
type Clipboard interface {
	Get() string
	Set(text string) error
}

// systemClipboard delegates to the OS clipboard via atotto/clipboard and
// keeps an in-memory copy of everything it is given.
type systemClipboard struct {
	mem *memoryClipboard
}

func (s systemClipboard) Get() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		return s.mem.Get()
	}
	return text
}

func (s systemClipboard) Set(text string) error {
	_ = s.mem.Set(text)
	_ = clipboard.WriteAll(text)
	return nil
}

// memoryClipboard keeps the copied text in process memory only. It is
// used on its own when the config disables system-clipboard integration,
// and inside systemClipboard as the copy Get falls back to when the host
// has no clipboard utility installed (atotto/clipboard returns an error on
// every call in that case).
type memoryClipboard struct {
	text string
}

func (m *memoryClipboard) Get() string { return m.text }

func (m *memoryClipboard) Set(text string) error {
	m.text = text
	return nil
}

// New returns a system-backed clipboard when useSystem is true, falling
// back to an in-memory one otherwise. A system clipboard that errors on
// every call degrades gracefully: Set always stores the text in memory
// and does not report the OS write failing, and Get returns that stored
// copy whenever the OS clipboard cannot be read.
func New(useSystem bool) Clipboard {
	if useSystem {
		return systemClipboard{mem: &memoryClipboard{}}
	}
	return &memoryClipboard{}
}
