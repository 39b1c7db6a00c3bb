package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"wallcolle/internal/config"
	"wallcolle/internal/contributor"
	"wallcolle/internal/derive"
	"wallcolle/internal/layout"
	"wallcolle/internal/logging"
	"wallcolle/internal/manifest"
	"wallcolle/internal/preflight"
	"wallcolle/internal/render"
	"wallcolle/internal/services"
	"wallcolle/internal/services/builtin"
	"wallcolle/internal/services/imagick"
	"wallcolle/internal/services/pngopt"
)

// lockFileName guards the destination root against concurrent builds.
const lockFileName = ".wallcolle.lock"

// Options describes one build run.
type Options struct {
	// PackPath is the selection manifest. The pack root is its grandparent
	// directory; the pack name is its base name.
	PackPath string
	// Dest is the output root the pack tree is written under.
	Dest    string
	Variant Variant
	// Clean removes an existing destination root before building.
	Clean bool
}

// Result summarizes a completed build.
type Result struct {
	PackName string
	Variant  Variant
	Entries  []contributor.Entry
}

// Run assembles a wallpaper pack. It returns a Result on full success; any
// unrecoverable error aborts the run with partial output left in place.
func Run(ctx context.Context, cfg *config.Config, opts Options, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String(logging.FieldRunID, uuid.NewString()))

	packPath, err := filepath.Abs(opts.PackPath)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "build", "resolve pack path", opts.PackPath, err)
	}
	packName := filepath.Base(packPath)
	packRoot := filepath.Dir(filepath.Dir(packPath))
	retro := opts.Variant == VariantRetro

	logger.Info("building wallpaper pack",
		logging.String("pack", packName),
		logging.String("variant", opts.Variant.String()),
		logging.String("dest", opts.Dest))

	results := preflight.RunAll(cfg, packPath, opts.Dest, retro)
	if failure, failed := preflight.Failed(results); failed {
		return nil, services.Wrap(services.ErrConfiguration, "build", "preflight", failure.Name+": "+failure.Detail, nil)
	}

	if opts.Clean {
		if _, err := os.Stat(opts.Dest); err == nil {
			logger.Info("purging destination directory", logging.String("dest", opts.Dest))
			if err := os.RemoveAll(opts.Dest); err != nil {
				return nil, services.Wrap(services.ErrTransient, "build", "clean destination", opts.Dest, err)
			}
		}
	}
	if err := os.MkdirAll(opts.Dest, 0o755); err != nil {
		return nil, services.Wrap(services.ErrTransient, "build", "create destination", opts.Dest, err)
	}

	lock := flock.New(filepath.Join(opts.Dest, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "build", "lock destination", opts.Dest, err)
	}
	if !locked {
		return nil, services.Wrap(services.ErrConfiguration, "build", "lock destination",
			"another build is writing to "+opts.Dest, nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	entries, err := resolveEntries(packPath, packRoot, packName, logger)
	if err != nil {
		return nil, err
	}
	if err := layout.PrepareEntries(entries); err != nil {
		return nil, err
	}

	renderer, err := render.New()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "build", "load templates", "", err)
	}

	workers := cfg.Build.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var deriver layout.ImageDeriver
	if retro {
		deriver = derive.New(newResizer(cfg), newOptimizer(cfg), cfg.Resolutions.Retro, workers, logger)
	}

	builder := layout.NewBuilder(layout.Options{
		Dest:                opts.Dest,
		Retro:               retro,
		Ratios:              cfg.Ratios.XFCE,
		MainlineResolutions: cfg.Resolutions.Mainline,
		ReferenceResolution: cfg.Resolutions.Reference,
		Renderer:            renderer,
		Deriver:             deriver,
		Logger:              logger,
	})
	if err := builder.MakeDestDirs(); err != nil {
		return nil, err
	}

	logger.Info("processing entries",
		logging.Int("entries", len(entries)),
		logging.Int("workers", workers))

	// Entries own disjoint destination paths, so the only coordination needed
	// is the completion barrier before the finalizer. After the first failure
	// no new entry is dispatched; in-flight entries finish naturally.
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, entry := range entries {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			return builder.ProcessEntry(ctx, entry)
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("build failed, partial output preserved under %s: %w", opts.Dest, err)
	}

	if err := builder.Finalize(packName, entries); err != nil {
		return nil, err
	}

	logger.Info("pack generation complete",
		logging.String("pack", packName),
		logging.Int("entries", len(entries)))
	return &Result{PackName: packName, Variant: opts.Variant, Entries: entries}, nil
}

func resolveEntries(packPath, packRoot, packName string, logger *slog.Logger) ([]contributor.Entry, error) {
	file, err := os.Open(packPath)
	if err != nil {
		return nil, services.Wrap(services.ErrNotFound, "build", "open manifest", packPath, err)
	}
	defer file.Close()

	selections, err := manifest.Parse(file, logger)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "build", "parse manifest", packPath, err)
	}
	manifest.SortByArtist(selections)
	groups := manifest.GroupByArtist(selections)

	return contributor.ResolveAll(packRoot, packName, groups, logger)
}

func newResizer(cfg *config.Config) derive.Resizer {
	if cfg.Tools.Resizer == config.ResizerBuiltin {
		return builtin.NewResizer()
	}
	return imagick.NewClient(imagick.WithBinary(cfg.Tools.ResizeBinary))
}

func newOptimizer(cfg *config.Config) derive.Optimizer {
	if cfg.Tools.Optimizer == config.OptimizerBuiltin {
		return builtin.NewOptimizer()
	}
	return pngopt.NewClient(
		pngopt.WithBinary(cfg.Tools.OptimizeBinary),
		pngopt.WithEffort(cfg.Tools.OptimizeEffort),
	)
}
