package layout

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"wallcolle/internal/contributor"
	"wallcolle/internal/fileutil"
	"wallcolle/internal/logging"
	"wallcolle/internal/render"
	"wallcolle/internal/services"
)

// ImageDeriver produces the per-resolution image files for one entry under
// imagesDir. The retro variant plugs in the derivation pipeline; tests plug
// in stubs.
type ImageDeriver interface {
	Derive(ctx context.Context, srcPath, imagesDir string) error
}

// Options configures a Builder.
type Options struct {
	// Dest is the output root the pack tree is written under.
	Dest string
	// Retro selects real per-resolution files over resolution symlinks.
	Retro bool

	Ratios              []string
	MainlineResolutions []string
	// ReferenceResolution names the retro file the screenshot symlink aliases.
	ReferenceResolution string

	Renderer *render.Renderer
	Deriver  ImageDeriver
	Logger   *slog.Logger
}

// Builder materializes directories, image copies, and symlink fan-out for
// resolved entries. Entries own disjoint destination paths, so ProcessEntry
// is safe to call concurrently for distinct entries.
type Builder struct {
	opts   Options
	logger *slog.Logger
}

// NewBuilder constructs a Builder.
func NewBuilder(opts Options) *Builder {
	return &Builder{
		opts:   opts,
		logger: logging.NewComponentLogger(opts.Logger, "layout"),
	}
}

// PrepareEntries fills in each entry's canonical destination path and verifies
// that all derived entry names are unique. A collision is a configuration
// error for the whole run, reported before any filesystem work starts.
func PrepareEntries(entries []contributor.Entry) error {
	seen := make(map[string]*contributor.Entry, len(entries))
	for i := range entries {
		entry := &entries[i]
		entry.Dest = ImagePath(entry.EntryName, entry.Format)
		if prev, ok := seen[entry.EntryName]; ok {
			return services.Wrap(services.ErrValidation, "layout", "uniqueness",
				fmt.Sprintf("%q by %s and %q by %s both derive entry name %s",
					prev.Title, prev.Artist, entry.Title, entry.Artist, entry.EntryName), nil)
		}
		seen[entry.EntryName] = entry
	}
	return nil
}

// MakeDestDirs creates the fixed top-level destination directories. Creation
// is idempotent.
func (b *Builder) MakeDestDirs() error {
	for _, dir := range DestDirs {
		if err := os.MkdirAll(filepath.Join(b.opts.Dest, dir), 0o755); err != nil {
			return services.Wrap(services.ErrConfiguration, "layout", "create destination", dir, err)
		}
	}
	return nil
}

// ProcessEntry writes everything owned by one entry: its descriptor, its
// canonical image (normal variant), and its symlink fan-out. Any failure
// aborts this entry and propagates; sibling entries are unaffected.
func (b *Builder) ProcessEntry(ctx context.Context, entry contributor.Entry) error {
	logger := b.logger.With(logging.String(logging.FieldEntry, entry.EntryName))

	descriptor, err := b.opts.Renderer.EntryDescriptor(entry)
	if err != nil {
		return services.Wrap(services.ErrTransient, "layout", "render descriptor", entry.EntryName, err)
	}

	wallpaperDir := filepath.Join(b.opts.Dest, wallpapersDir, entry.EntryName)
	imagesDir := filepath.Join(wallpaperDir, "contents", "images")
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return services.Wrap(services.ErrTransient, "layout", "create entry directories", entry.EntryName, err)
	}

	canonical := filepath.Join(b.opts.Dest, entry.Dest[1:])
	if err := os.MkdirAll(filepath.Dir(canonical), 0o755); err != nil {
		return services.Wrap(services.ErrTransient, "layout", "create image directory", entry.EntryName, err)
	}

	if err := os.WriteFile(filepath.Join(wallpaperDir, "metadata.desktop"), descriptor, 0o644); err != nil {
		return services.Wrap(services.ErrTransient, "layout", "write descriptor", entry.EntryName, err)
	}

	if !b.opts.Retro {
		logger.Info("copying image",
			logging.String("src", entry.SourcePath()),
			logging.String("dst", canonical))
		if err := fileutil.CopyFile(entry.SourcePath(), canonical); err != nil {
			return services.Wrap(services.ErrTransient, "layout", "copy image", entry.EntryName, err)
		}
		screenshot := filepath.Join(wallpaperDir, "screenshot."+entry.Format)
		if err := fileutil.Symlink(entry.Dest, screenshot); err != nil {
			return services.Wrap(services.ErrTransient, "layout", "screenshot link", entry.EntryName, err)
		}
	}

	for _, ratio := range b.opts.Ratios {
		link := filepath.Join(b.opts.Dest, xfceBackgroundsDir,
			fmt.Sprintf("%s-%s.%s", entry.EntryName, ratio, entry.Format))
		if err := fileutil.Symlink(entry.Dest, link); err != nil {
			return services.Wrap(services.ErrTransient, "layout", "ratio link", entry.EntryName, err)
		}
	}

	if b.opts.Retro {
		if err := b.opts.Deriver.Derive(ctx, entry.SourcePath(), imagesDir); err != nil {
			return err
		}
		target := referenceScreenshotTarget(entry.EntryName, b.opts.ReferenceResolution)
		if err := fileutil.Symlink(target, filepath.Join(wallpaperDir, "screenshot.png")); err != nil {
			return services.Wrap(services.ErrTransient, "layout", "screenshot link", entry.EntryName, err)
		}
		return nil
	}

	logger.Info("creating resolution links", logging.Int("count", len(b.opts.MainlineResolutions)))
	for _, resolution := range b.opts.MainlineResolutions {
		link := filepath.Join(imagesDir, resolution+"."+entry.Format)
		if err := fileutil.Symlink(entry.Dest, link); err != nil {
			return services.Wrap(services.ErrTransient, "layout", "resolution link", entry.EntryName, err)
		}
	}
	return nil
}
