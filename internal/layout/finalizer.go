package layout

import (
	"os"
	"path/filepath"

	"wallcolle/internal/contributor"
	"wallcolle/internal/fileutil"
	"wallcolle/internal/logging"
	"wallcolle/internal/naming"
	"wallcolle/internal/services"
)

// Finalize writes the aggregate album descriptor and links it into the
// remaining background-properties directories. It must only run after every
// per-entry task has completed.
func (b *Builder) Finalize(packName string, entries []contributor.Entry) error {
	data, err := b.opts.Renderer.AlbumDescriptor(entries)
	if err != nil {
		return services.Wrap(services.ErrTransient, "finalize", "render album", packName, err)
	}

	fileName := naming.NormalizePackName(packName) + ".xml"
	installPath := albumPath(fileName)
	b.logger.Info("writing album descriptor",
		logging.String("file", fileName),
		logging.Int("entries", len(entries)))

	if err := os.WriteFile(filepath.Join(b.opts.Dest, installPath[1:]), data, 0o644); err != nil {
		return services.Wrap(services.ErrTransient, "finalize", "write album", fileName, err)
	}

	for _, dir := range albumLinkDirs {
		link := filepath.Join(b.opts.Dest, dir, fileName)
		if err := fileutil.Symlink(installPath, link); err != nil {
			return services.Wrap(services.ErrTransient, "finalize", "album link", dir, err)
		}
	}
	return nil
}
