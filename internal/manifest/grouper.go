package manifest

// ArtistSelection holds the set of image indices selected from one artist.
type ArtistSelection struct {
	Artist  string
	Indices map[int]struct{}
}

// Selected reports whether the given image index was selected.
func (a ArtistSelection) Selected(index int) bool {
	_, ok := a.Indices[index]
	return ok
}

// GroupByArtist collapses consecutive selections sharing an artist identifier
// into one group holding the set of selected indices, in first-seen order.
//
// The input must be sorted by artist: an identifier that reappears
// non-contiguously starts a new group for the same artist instead of merging
// into the earlier one. Callers sort with SortByArtist first.
func GroupByArtist(selections []Selection) []ArtistSelection {
	groups := make([]ArtistSelection, 0, len(selections))
	for _, sel := range selections {
		if n := len(groups); n > 0 && groups[n-1].Artist == sel.Artist {
			groups[n-1].Indices[sel.Index] = struct{}{}
			continue
		}
		groups = append(groups, ArtistSelection{
			Artist:  sel.Artist,
			Indices: map[int]struct{}{sel.Index: {}},
		})
	}
	return groups
}
