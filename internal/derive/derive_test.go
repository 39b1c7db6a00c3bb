package derive_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"wallcolle/internal/derive"
	"wallcolle/internal/logging"
	"wallcolle/internal/services"
)

type fakeResizer struct {
	mu    sync.Mutex
	calls []string
	fail  string
}

func (f *fakeResizer) Resize(ctx context.Context, srcPath, resolution string) ([]byte, error) {
	f.mu.Lock()
	f.calls = append(f.calls, resolution)
	f.mu.Unlock()
	if resolution == f.fail {
		return nil, errors.New("resize blew up")
	}
	// Distinct bytes per resolution.
	return []byte("resized:" + resolution), nil
}

type fakeOptimizer struct{}

func (fakeOptimizer) Optimize(ctx context.Context, data []byte) ([]byte, error) {
	return append([]byte("opt:"), data...), nil
}

type failingOptimizer struct{}

func (failingOptimizer) Optimize(ctx context.Context, data []byte) ([]byte, error) {
	return nil, errors.New("optimizer blew up")
}

func TestDeriveWritesDistinctFilePerResolution(t *testing.T) {
	imagesDir := t.TempDir()
	resolutions := []string{"800x600", "1280x960", "1600x1200", "1920x1200"}

	pipeline := derive.New(&fakeResizer{}, fakeOptimizer{}, resolutions, 4, logging.NewNop())
	if err := pipeline.Derive(context.Background(), "/art/0.png", imagesDir); err != nil {
		t.Fatalf("Derive returned error: %v", err)
	}

	seen := map[string]bool{}
	for _, resolution := range resolutions {
		data, err := os.ReadFile(filepath.Join(imagesDir, resolution+".png"))
		if err != nil {
			t.Fatalf("missing output for %s: %v", resolution, err)
		}
		if want := "opt:resized:" + resolution; string(data) != want {
			t.Fatalf("output for %s = %q, want %q", resolution, data, want)
		}
		if seen[string(data)] {
			t.Fatalf("resolution %s aliases another output", resolution)
		}
		seen[string(data)] = true
	}
}

func TestDeriveResizeFailureIsExternalToolError(t *testing.T) {
	imagesDir := t.TempDir()
	resizer := &fakeResizer{fail: "1280x960"}

	pipeline := derive.New(resizer, fakeOptimizer{}, []string{"800x600", "1280x960"}, 1, logging.NewNop())
	err := pipeline.Derive(context.Background(), "/art/0.png", imagesDir)
	if err == nil {
		t.Fatal("expected resize failure to propagate")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
}

func TestDeriveOptimizeFailurePropagates(t *testing.T) {
	imagesDir := t.TempDir()
	pipeline := derive.New(&fakeResizer{}, failingOptimizer{}, []string{"800x600"}, 1, logging.NewNop())
	err := pipeline.Derive(context.Background(), "/art/0.png", imagesDir)
	if err == nil || !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected external tool marker, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(imagesDir, "800x600.png")); !errors.Is(statErr, os.ErrNotExist) {
		t.Fatalf("no file must be written on failure: %v", statErr)
	}
}

func TestDeriveStopsDispatchAfterFailure(t *testing.T) {
	imagesDir := t.TempDir()
	resizer := &fakeResizer{fail: "800x600"}
	resolutions := []string{"800x600", "1280x960", "1600x1200", "1920x1200"}

	// Serial workers: the failure of the first resolution must prevent
	// dispatch of later ones.
	pipeline := derive.New(resizer, fakeOptimizer{}, resolutions, 1, logging.NewNop())
	if err := pipeline.Derive(context.Background(), "/art/0.png", imagesDir); err == nil {
		t.Fatal("expected failure")
	}

	resizer.mu.Lock()
	calls := len(resizer.calls)
	resizer.mu.Unlock()
	if calls >= len(resolutions) {
		t.Fatalf("expected dispatch to stop early, saw %d calls", calls)
	}
}
