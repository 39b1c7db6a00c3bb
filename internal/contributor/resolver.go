package contributor

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"wallcolle/internal/logging"
	"wallcolle/internal/manifest"
	"wallcolle/internal/naming"
	"wallcolle/internal/services"
)

// contributorsDirName is where artist directories live under the pack root.
const contributorsDirName = "contributors"

// Entry is one selected wallpaper with all metadata resolved: the offered
// image record joined with the artist identity and the derived naming fields.
// Entries are read-only once resolved and are shared across parallel workers.
type Entry struct {
	Wallpaper

	// Artist is the contributor's display name, Email their contact address.
	Artist string
	Email  string

	// SourceDir is the artist directory holding the original image files.
	SourceDir string

	// EntryName is the globally unique identifier every destination path is
	// derived from.
	EntryName string

	// Dest is the canonical install path of the image, filled in by the
	// layout builder.
	Dest string
}

// SourcePath returns the original image file for this entry.
func (e Entry) SourcePath() string {
	return filepath.Join(e.SourceDir, fmt.Sprintf("%d.%s", e.Index, e.Format))
}

// ResolveAll loads every selected artist's record under root and returns the
// resolved entries in group order. A missing or malformed record is fatal: a
// pack cannot be built with absent artist data. Selected indices the record
// does not offer are dropped without error.
func ResolveAll(root, packName string, groups []manifest.ArtistSelection, logger *slog.Logger) ([]Entry, error) {
	logger = logging.NewComponentLogger(logger, "contributor")

	entries := make([]Entry, 0, len(groups))
	for _, group := range groups {
		artistDir := filepath.Join(root, contributorsDirName, group.Artist)
		logger.Info("resolving contributor",
			logging.String("artist", group.Artist),
			logging.Int("selected", len(group.Indices)))

		record, err := LoadRecord(artistDir)
		if err != nil {
			return nil, services.Wrap(services.ErrNotFound, "resolve", "load record", group.Artist, err)
		}
		entries = append(entries, resolveArtist(packName, artistDir, record, group)...)
	}
	return entries, nil
}

func resolveArtist(packName, artistDir string, record *Record, group manifest.ArtistSelection) []Entry {
	resolved := make([]Entry, 0, len(group.Indices))
	for _, offered := range record.Wallpapers {
		if !group.Selected(offered.Index) {
			continue
		}
		resolved = append(resolved, Entry{
			Wallpaper: offered,
			Artist:    record.Name,
			Email:     record.Email,
			SourceDir: artistDir,
			EntryName: naming.NormalizeImageName(packName, offered.Title, record.Username),
		})
	}
	return resolved
}
