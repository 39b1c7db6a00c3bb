package pngopt

import (
	"context"
	"os/exec"
	"reflect"
	"testing"
)

func TestNewClientDefaults(t *testing.T) {
	client := NewClient()
	if client.binary != "oxipng" || client.effort != 1 {
		t.Fatalf("unexpected defaults: %+v", client)
	}
}

func TestWithEffortRejectsOutOfRange(t *testing.T) {
	client := NewClient(WithEffort(9))
	if client.effort != 1 {
		t.Fatalf("expected out-of-range effort to be ignored, got %d", client.effort)
	}
	client = NewClient(WithEffort(4))
	if client.effort != 4 {
		t.Fatalf("expected effort 4, got %d", client.effort)
	}
}

func TestOptimizeRequiresData(t *testing.T) {
	client := NewClient()
	if _, err := client.Optimize(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestOptimizeBuildsArguments(t *testing.T) {
	var capturedArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		capturedArgs = append([]string(nil), args...)
		// cat echoes stdin so the optimized output equals the input.
		return exec.CommandContext(ctx, "cat")
	}
	t.Cleanup(func() { commandContext = original })

	client := NewClient(WithEffort(2))
	got, err := client.Optimize(context.Background(), []byte("png-bytes"))
	if err != nil {
		t.Fatalf("Optimize returned error: %v", err)
	}
	if string(got) != "png-bytes" {
		t.Fatalf("expected stdin piped through, got %q", got)
	}

	want := []string{"-o", "2", "--stdout", "-"}
	if !reflect.DeepEqual(capturedArgs, want) {
		t.Fatalf("unexpected args: got %v want %v", capturedArgs, want)
	}
}

func TestOptimizeSurfacesFailure(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}
	t.Cleanup(func() { commandContext = original })

	client := NewClient()
	if _, err := client.Optimize(context.Background(), []byte("data")); err == nil {
		t.Fatal("expected error on non-zero exit")
	}
}
