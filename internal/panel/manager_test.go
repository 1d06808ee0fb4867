package panel

import (
	"testing"

	"github.com/kodexeditor/kodex/internal/keys"
	"github.com/kodexeditor/kodex/internal/render"
)

func TestShowOpensAndSetsFocus(t *testing.T) {
	m := NewManager(DefaultRegistry(), nil)
	m.Show(Help, nil)
	if m.ActiveKind() != Help {
		t.Fatalf("expected Help active, got %v", m.ActiveKind())
	}
	if m.Focus() != FocusPanel {
		t.Fatalf("expected focus on panel")
	}
	if !m.TakeForceFullRedraw() {
		t.Fatalf("expected a forced full redraw on open")
	}
	if m.TakeForceFullRedraw() {
		t.Fatalf("flag should clear after being taken")
	}
}

func TestShowSameKindTogglesOff(t *testing.T) {
	m := NewManager(DefaultRegistry(), nil)
	m.Show(Git, map[string]any{"text": "M file.go"})
	m.Show(Git, nil)
	if m.ActiveKind() != None {
		t.Fatalf("expected toggled-off, got %v", m.ActiveKind())
	}
	if m.Focus() != FocusEditor {
		t.Fatalf("expected focus back on editor")
	}
}

func TestShowDifferentKindReplaces(t *testing.T) {
	m := NewManager(DefaultRegistry(), nil)
	m.Show(Git, nil)
	m.Show(LintReport, nil)
	if m.ActiveKind() != LintReport {
		t.Fatalf("expected LintReport active, got %v", m.ActiveKind())
	}
}

func TestHandleKeyRoutesToActivePanelAndEscCloses(t *testing.T) {
	m := NewManager(DefaultRegistry(), nil)
	m.Show(Help, nil)
	consumed := m.HandleKey(keys.Key{Name: "esc"})
	if !consumed {
		t.Fatalf("expected Esc to be consumed by the panel")
	}
	if m.ActiveKind() != None {
		t.Fatalf("expected panel to close itself, got %v", m.ActiveKind())
	}
	if m.Focus() != FocusEditor {
		t.Fatalf("expected focus to return to editor after self-close")
	}
}

func TestHandleKeyNotRoutedWhenFocusIsEditor(t *testing.T) {
	m := NewManager(DefaultRegistry(), nil)
	if m.HandleKey(keys.Key{Name: "esc"}) {
		t.Fatalf("expected no consumption when no panel is active")
	}
}

func TestDrawDelegatesToActivePanel(t *testing.T) {
	m := NewManager(DefaultRegistry(), nil)
	m.Show(Git, map[string]any{"text": "M file.go\nA new.go"})
	s := render.NewFakeSurface(40, 10)
	m.Draw(s, 0, 0, 40, 10)
	if s.RowText(0) == "" {
		t.Fatalf("expected the panel title drawn onto the surface")
	}
}
