package selection

import (
	"testing"

	"github.com/kodexeditor/kodex/internal/buffer"
)

func TestIdleToActiveOnExtend(t *testing.T) {
	var m Model
	m.MoveTo(buffer.Position{Row: 0, Col: 2})
	if m.Active() {
		t.Fatalf("expected idle after MoveTo")
	}
	m.ExtendTo(buffer.Position{Row: 0, Col: 5})
	if !m.Active() {
		t.Fatalf("expected active after ExtendTo")
	}
	start, end := m.Range()
	if start != (buffer.Position{Row: 0, Col: 2}) || end != (buffer.Position{Row: 0, Col: 5}) {
		t.Fatalf("range = %+v %+v", start, end)
	}
}

func TestNavigationCancelsSelection(t *testing.T) {
	var m Model
	m.ExtendTo(buffer.Position{Row: 0, Col: 5})
	m.MoveTo(buffer.Position{Row: 1, Col: 0})
	if m.Active() {
		t.Fatalf("expected selection cancelled by plain navigation")
	}
}

func TestNormalizationIdempotent(t *testing.T) {
	var m Model
	m.MoveTo(buffer.Position{Row: 2, Col: 0})
	m.ExtendTo(buffer.Position{Row: 0, Col: 1})
	start, end := m.Range()
	start2, end2 := buffer.MinMax(start, end)
	if start != start2 || end != end2 {
		t.Fatalf("normalization not idempotent")
	}
}

func TestSelectAllEmptyBuffer(t *testing.T) {
	b := buffer.New("")
	var m Model
	m.SelectAll(b)
	start, end := m.Range()
	want := buffer.Position{Row: 0, Col: 0}
	if start != want || end != want {
		t.Fatalf("select-all on empty buffer = %+v %+v", start, end)
	}
}
