package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseSpecCtrlChord(t *testing.T) {
	ks, err := ParseSpec("ctrl+s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ks) != 1 || ks[0] != (Key{Rune: 's', Mods: ModCtrl}) {
		t.Fatalf("got %+v", ks)
	}
}

func TestParseSpecNamedKey(t *testing.T) {
	ks, err := ParseSpec("f5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ks) != 1 || ks[0] != (Key{Name: "f5"}) {
		t.Fatalf("got %+v", ks)
	}
}

func TestParseSpecShiftNamedKey(t *testing.T) {
	ks, err := ParseSpec("shift+up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ks) != 1 || ks[0] != (Key{Name: "up", Mods: ModShift}) {
		t.Fatalf("got %+v", ks)
	}
}

func TestParseSpecAltDashChord(t *testing.T) {
	ks, err := ParseSpec("alt-j")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ks) != 1 || ks[0] != (Key{Rune: 'j', Mods: ModAlt}) {
		t.Fatalf("got %+v", ks)
	}
}

func TestParseSpecAlternation(t *testing.T) {
	ks, err := ParseSpec("a|b|c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ks) != 3 {
		t.Fatalf("expected 3 alternatives, got %d", len(ks))
	}
	want := []rune{'a', 'b', 'c'}
	for i, k := range ks {
		if k.Rune != want[i] {
			t.Fatalf("alternative %d: got %+v", i, k)
		}
	}
}

func TestParseSpecRawInteger(t *testing.T) {
	ks, err := ParseSpec("19")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ks) != 1 || ks[0].Rune != 19 {
		t.Fatalf("got %+v", ks)
	}
}

func TestParseSpecUnknownModifierErrors(t *testing.T) {
	if _, err := ParseSpec("meta+s"); err == nil {
		t.Fatalf("expected an error for an unknown modifier")
	}
}

func TestNewDispatcherSkipsBadSpecButKeepsOthers(t *testing.T) {
	cfg := map[Action][]string{
		ActionSave: {"ctrl+s", "meta+s"},
		ActionQuit: {"ctrl+q"},
	}
	d, errs := NewDispatcher(cfg)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one decode error, got %d: %v", len(errs), errs)
	}
	if a, ok := d.Resolve(Key{Rune: 's', Mods: ModCtrl}); !ok || a != ActionSave {
		t.Fatalf("expected ctrl+s to resolve to save, got %v/%v", a, ok)
	}
	if a, ok := d.Resolve(Key{Rune: 'q', Mods: ModCtrl}); !ok || a != ActionQuit {
		t.Fatalf("expected ctrl+q to resolve to quit, got %v/%v", a, ok)
	}
}

func TestDecodeCtrlLetterFromTcellConstant(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone)
	k := Decode(ev)
	if k != (Key{Rune: 's', Mods: ModCtrl}) {
		t.Fatalf("got %+v", k)
	}
}

func TestDecodeNamedArrowKey(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)
	k := Decode(ev)
	if k != (Key{Name: "up"}) {
		t.Fatalf("got %+v", k)
	}
}

func TestDecodeShiftTabViaBacktab(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone)
	k := Decode(ev)
	if k != (Key{Name: "tab", Mods: ModShift}) {
		t.Fatalf("got %+v", k)
	}
}

func TestHandleEventReportsResizeBeforeDispatch(t *testing.T) {
	d, _ := NewDispatcher(DefaultBindings())
	res := HandleEvent(d, tcell.NewEventResize(80, 24))
	if !res.Resize {
		t.Fatalf("expected Resize=true")
	}
}

func TestHandleEventResolvesBoundAction(t *testing.T) {
	d, _ := NewDispatcher(DefaultBindings())
	ev := tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModNone)
	res := HandleEvent(d, ev)
	if !res.HasAction || res.Action != ActionSave {
		t.Fatalf("expected save action, got %+v", res)
	}
}
