// Package manifest reads the line-oriented pack selection manifest and groups
// the parsed selections by artist.
//
// A manifest line is "artist:index". Blank lines and lines starting with '#'
// are ignored; malformed lines are logged and skipped rather than failing the
// run. Grouping assumes the input has been sorted by artist identifier; see
// GroupByArtist for the contiguity caveat.
package manifest
