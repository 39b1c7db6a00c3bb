// Package layout materializes the wallpaper pack's destination tree.
//
// Every path is derived from an entry's stable name, so entries processed in
// parallel never touch the same file. The builder writes one descriptor and
// one real image per entry (symlink fan-out covers every supported aspect
// ratio and resolution for the normal variant; the retro variant delegates to
// the derivation pipeline for real per-resolution files) and the finalizer
// writes the aggregate album descriptor once all entries are done.
//
// Symlink targets are absolute install paths (/usr/share/...), so a pack is
// only fully resolvable once installed at the filesystem root.
package layout
