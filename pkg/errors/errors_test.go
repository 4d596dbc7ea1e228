package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	err := Newf("ui.NewController", KindConstruction, "width must be positive, got %g", -1.0)
	want := "ui.NewController [construction]: width must be positive, got -1"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestUnwrap(t *testing.T) {
	base := stderrors.New("boom")
	err := New("layout.Add", KindInvalidElement, base)
	if !stderrors.Is(err, base) {
		t.Fatalf("expected errors.Is to find the wrapped error")
	}
}

func TestIsKind(t *testing.T) {
	err := Newf("ui.Add", KindTargetNotFound, "no container with id %q", "sidebar")
	wrapped := fmt.Errorf("adding element: %w", err)

	if !IsKind(wrapped, KindTargetNotFound) {
		t.Fatalf("expected IsKind to see through wrapping")
	}
	if IsKind(wrapped, KindConstruction) {
		t.Fatalf("IsKind matched the wrong kind")
	}
	if IsKind(nil, KindTargetNotFound) {
		t.Fatalf("IsKind(nil) must be false")
	}
}

func TestKindFatal(t *testing.T) {
	fatal := []Kind{KindConstruction, KindInvalidElement}
	for _, k := range fatal {
		if !k.Fatal() {
			t.Fatalf("expected %s to be fatal", k)
		}
	}
	nonFatal := []Kind{KindTargetNotFound, KindUnrecognizedMode, KindUnknown}
	for _, k := range nonFatal {
		if k.Fatal() {
			t.Fatalf("expected %s to be non-fatal", k)
		}
	}
}
