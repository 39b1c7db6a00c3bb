package services_test

import (
	"errors"
	"strings"
	"testing"

	"wallcolle/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	underlying := errors.New("permission denied")
	err := services.Wrap(services.ErrExternalTool, "derive", "resize", "convert failed", underlying)

	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool marker, got %v", err)
	}
	if !errors.Is(err, underlying) {
		t.Fatalf("expected underlying error to be preserved, got %v", err)
	}
	for _, fragment := range []string{"derive", "resize", "convert failed", "permission denied"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("expected %q in error message, got %q", fragment, err.Error())
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker for nil input, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
}

func TestWrapWithoutUnderlying(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "layout", "uniqueness", "duplicate entry name", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected validation marker, got %v", err)
	}
}
