package manifest

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"wallcolle/internal/logging"
)

// Selection is one parsed manifest line: an artist identifier and the index
// of one of the images that artist offers.
type Selection struct {
	Artist string
	Index  int
}

// Parse reads the selection manifest from r, returning selections in file
// order, duplicates included. Malformed lines are logged at WARN and skipped.
// Only a stream read error is fatal.
//
// The line is split on the first ':' only, so artist identifiers containing
// ':' are not supported.
func Parse(r io.Reader, logger *slog.Logger) ([]Selection, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	selections := make([]Selection, 0, 20)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, value, found := strings.Cut(line, ":")
		if !found {
			logger.Warn("invalid manifest line", logging.String("line", line))
			continue
		}
		index, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
		if err != nil {
			logger.Warn("manifest index is not a number",
				logging.String("line", line),
				logging.String("value", value))
			continue
		}
		selections = append(selections, Selection{Artist: name, Index: int(index)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	return selections, nil
}

// SortByArtist orders selections lexicographically by artist identifier,
// keeping the original order between selections of the same artist. Grouping
// requires this ordering.
func SortByArtist(selections []Selection) {
	sort.SliceStable(selections, func(i, j int) bool {
		return selections[i].Artist < selections[j].Artist
	})
}
