package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestKindOf(t *testing.T) {
	cause := stderrors.New("bad bytes")

	if got := KindOf(NewModelError("graph rejected", cause)); got != KindModel {
		t.Errorf("Expected KindModel, got %s", got)
	}
	if got := KindOf(NewImageError("not an image", cause)); got != KindImage {
		t.Errorf("Expected KindImage, got %s", got)
	}
	if got := KindOf(NewIOError("read failed", cause)); got != KindIO {
		t.Errorf("Expected KindIO, got %s", got)
	}
	if got := KindOf(NewUnclassifiedError()); got != KindUnclassified {
		t.Errorf("Expected KindUnclassified, got %s", got)
	}
	if got := KindOf(NewFatalError("label table too short", nil)); got != KindFatal {
		t.Errorf("Expected KindFatal, got %s", got)
	}
}

func TestKindOf_PlainError(t *testing.T) {
	if got := KindOf(stderrors.New("anything")); got != KindUnknown {
		t.Errorf("Expected KindUnknown for plain error, got %s", got)
	}
}

func TestKindOf_WrappedError(t *testing.T) {
	// The kind must survive fmt-style wrapping by callers
	wrapped := stderrors.Join(stderrors.New("outer"), NewImageError("not an image", nil))
	if got := KindOf(wrapped); got != KindImage {
		t.Errorf("Expected KindImage through wrapping, got %s", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("underlying")
	err := NewModelError("inference failed", cause)

	if !stderrors.Is(err, cause) {
		t.Error("Expected errors.Is to find the underlying cause")
	}
}

func TestError_Message(t *testing.T) {
	err := NewIOError("read failed", stderrors.New("no such file"))
	msg := err.Error()

	if !strings.Contains(msg, "io") {
		t.Errorf("Expected kind in message, got %q", msg)
	}
	if !strings.Contains(msg, "no such file") {
		t.Errorf("Expected cause in message, got %q", msg)
	}

	bare := NewUnclassifiedError().Error()
	if strings.Contains(bare, "caused by") {
		t.Errorf("Expected no cause suffix without a cause, got %q", bare)
	}
}

func TestIsFatal(t *testing.T) {
	if !IsFatal(NewFatalError("mismatch", nil)) {
		t.Error("Expected fatal error to be fatal")
	}
	if IsFatal(NewModelError("inference failed", nil)) {
		t.Error("Expected model error not to be fatal")
	}
}
