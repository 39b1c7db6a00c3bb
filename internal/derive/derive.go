// Package derive renders the real per-resolution image files used by the
// retro variant: each target resolution is resized from the original source
// image, re-compressed losslessly, and written under the entry's image
// directory.
package derive

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"wallcolle/internal/logging"
	"wallcolle/internal/services"
)

// Resizer scales a source image to one target resolution and returns the raw
// image bytes.
type Resizer interface {
	Resize(ctx context.Context, srcPath, resolution string) ([]byte, error)
}

// Optimizer re-compresses image bytes without changing visual content.
type Optimizer interface {
	Optimize(ctx context.Context, data []byte) ([]byte, error)
}

// Pipeline derives every configured resolution for one entry. Resolutions of
// the same entry run in parallel; each writes its own resolution-named file,
// so no two sub-tasks share an output path.
type Pipeline struct {
	resizer     Resizer
	optimizer   Optimizer
	resolutions []string
	workers     int
	logger      *slog.Logger
}

// New constructs a pipeline. workers bounds per-entry parallelism; values
// below one mean one resolution at a time.
func New(resizer Resizer, optimizer Optimizer, resolutions []string, workers int, logger *slog.Logger) *Pipeline {
	if workers < 1 {
		workers = 1
	}
	return &Pipeline{
		resizer:     resizer,
		optimizer:   optimizer,
		resolutions: resolutions,
		workers:     workers,
		logger:      logging.NewComponentLogger(logger, "derive"),
	}
}

// Derive produces <resolution>.png under imagesDir for every configured
// resolution. The first failing resolution aborts the entry; resolutions
// already in flight finish naturally.
func (p *Pipeline) Derive(ctx context.Context, srcPath, imagesDir string) error {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(p.workers)

	for _, resolution := range p.resolutions {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			return p.deriveOne(ctx, srcPath, imagesDir, resolution)
		})
	}
	return eg.Wait()
}

func (p *Pipeline) deriveOne(ctx context.Context, srcPath, imagesDir, resolution string) error {
	p.logger.Info("deriving resolution",
		logging.String("src", srcPath),
		logging.String("resolution", resolution))

	raw, err := p.resizer.Resize(ctx, srcPath, resolution)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "derive", "resize", resolution, err)
	}
	optimized, err := p.optimizer.Optimize(ctx, raw)
	if err != nil {
		return services.Wrap(services.ErrExternalTool, "derive", "optimize", resolution, err)
	}

	target := filepath.Join(imagesDir, resolution+".png")
	if err := os.WriteFile(target, optimized, 0o644); err != nil {
		return services.Wrap(services.ErrTransient, "derive", "write",
			fmt.Sprintf("%s at %s", target, resolution), err)
	}
	return nil
}
