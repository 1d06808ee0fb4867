package panel

import (
	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/render"
)

// Manager owns at most one active Panel and the Editor/Panel focus state,
// per spec §4.9.
type Manager struct {
	registry        *Registry
	active          Panel
	activeKind      Kind
	focus           Focus
	forceFullRedraw bool
	statusFn        func(string)
}

// NewManager builds a Manager over the given registry. statusFn receives
// status messages panels post via Host.SetStatus; it may be nil.
func NewManager(registry *Registry, statusFn func(string)) *Manager {
	return &Manager{registry: registry, statusFn: statusFn}
}

// ActiveKind returns the kind of the currently active panel, or None.
func (m *Manager) ActiveKind() Kind { return m.activeKind }

// Focus returns the current focus state.
func (m *Manager) Focus() Focus { return m.focus }

// Show implements toggle-or-replace per spec §4.9: requesting the
// already-active kind closes it; requesting a different kind closes
// whatever is active first, then opens the new one, setting focus to
// Panel and flagging a full redraw.
func (m *Manager) Show(kind Kind, kwargs map[string]any) {
	if kind == m.activeKind && m.active != nil {
		m.Close()
		return
	}
	if m.active != nil {
		m.active.Close()
		m.active = nil
		m.activeKind = None
	}
	factory, ok := m.registry.Lookup(kind)
	if !ok {
		return
	}
	p := factory()
	p.Open(kwargs)
	m.active = p
	m.activeKind = kind
	m.focus = FocusPanel
	m.forceFullRedraw = true
}

// Close closes the active panel, if any, and returns focus to the editor.
// It satisfies the Host interface so a panel can close itself.
func (m *Manager) Close() {
	if m.active == nil {
		return
	}
	m.active.Close()
	m.active = nil
	m.activeKind = None
	m.focus = FocusEditor
	m.forceFullRedraw = true
}

// SetStatus satisfies Host for panels that post status-bar messages.
func (m *Manager) SetStatus(message string) {
	if m.statusFn != nil {
		m.statusFn(message)
	}
}

// HandleKey routes a decoded key to the active panel when focus is Panel.
// It reports whether the event was consumed; the caller should not fall
// through to editor dispatch when it was.
func (m *Manager) HandleKey(k keys.Key) bool {
	if m.focus != FocusPanel || m.active == nil {
		return false
	}
	return m.active.HandleKey(m, k)
}

// Draw renders the active panel, if any, onto the given sub-region of the
// surface — commonly a right-hand pane, per spec §4.9; the editor area
// underneath is left untouched.
func (m *Manager) Draw(s render.Surface, x, y, w, h int) {
	if m.active == nil {
		return
	}
	m.active.Draw(s, x, y, w, h)
}

// Resize forwards a terminal resize to the active panel.
func (m *Manager) Resize(w, h int) {
	if m.active != nil {
		m.active.Resize(w, h)
	}
}

// TakeForceFullRedraw reports whether a panel lifecycle change (open or
// close) requires a full redraw on the next frame, clearing the flag.
func (m *Manager) TakeForceFullRedraw() bool {
	v := m.forceFullRedraw
	m.forceFullRedraw = false
	return v
}
