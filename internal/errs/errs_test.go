package errs

import (
	"fmt"
	"testing"
)

func TestStatusMessageMarksNonValidationKindsAsError(t *testing.T) {
	err := New(External, "git exited with status 1")
	msg := StatusMessage(err)
	if !IsErrorMessage(msg) {
		t.Fatalf("expected %q to contain the error substring", msg)
	}
}

func TestStatusMessageLeavesValidationPlain(t *testing.T) {
	err := New(InputValidation, "invalid regular expression")
	msg := StatusMessage(err)
	if msg != "invalid regular expression" {
		t.Fatalf("expected plain validation message, got %q", msg)
	}
}

func TestKindOfUnwrapsWrappedError(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(Network, "could not reach provider", cause)
	wrapped := fmt.Errorf("ask failed: %w", err)
	if KindOf(wrapped) != Network {
		t.Fatalf("expected Network kind through wrapping, got %v", KindOf(wrapped))
	}
}

func TestKindOfDefaultsToInternal(t *testing.T) {
	if KindOf(fmt.Errorf("plain")) != Internal {
		t.Fatalf("expected Internal for a non-errs error")
	}
}
