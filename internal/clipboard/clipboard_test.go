package clipboard

import "testing"

func TestMemoryClipboardRoundTrip(t *testing.T) {
	c := New(false)
	if got := c.Get(); got != "" {
		t.Fatalf("fresh clipboard: got %q, want empty", got)
	}
	if err := c.Set("hello"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := c.Get(); got != "hello" {
		t.Fatalf("Get: got %q, want %q", got, "hello")
	}
}

func TestMemoryClipboardOverwrite(t *testing.T) {
	c := New(false)
	_ = c.Set("first")
	_ = c.Set("second")
	if got := c.Get(); got != "second" {
		t.Fatalf("Get: got %q, want %q", got, "second")
	}
}

func TestNewSelectsImplementationByFlag(t *testing.T) {
	if _, ok := New(false).(*memoryClipboard); !ok {
		t.Fatalf("New(false) should return *memoryClipboard")
	}
	if _, ok := New(true).(systemClipboard); !ok {
		t.Fatalf("New(true) should return systemClipboard")
	}
}
