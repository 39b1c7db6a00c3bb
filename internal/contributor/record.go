package contributor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// recordFileName is the well-known metadata file inside an artist directory.
const recordFileName = "me.json"

// Wallpaper is one image an artist offers for selection. The single-letter
// JSON keys match the on-disk record format.
type Wallpaper struct {
	Index   int      `json:"i"`
	Format  string   `json:"f"`
	Title   string   `json:"t"`
	License string   `json:"l"`
	Tags    []string `json:"tags"`
}

// Record is an artist's me.json: identity fields plus the offered wallpapers.
type Record struct {
	Name       string      `json:"name"`
	Username   string      `json:"uname"`
	Email      string      `json:"email"`
	URI        string      `json:"uri"`
	Source     string      `json:"src,omitempty"`
	Wallpapers []Wallpaper `json:"wallpapers"`
}

// LoadRecord reads and decodes the me.json record in the given artist
// directory.
func LoadRecord(artistDir string) (*Record, error) {
	path := filepath.Join(artistDir, recordFileName)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open contributor record %s: %w", path, err)
	}
	defer file.Close()

	var record Record
	if err := json.NewDecoder(file).Decode(&record); err != nil {
		return nil, fmt.Errorf("decode contributor record %s: %w", path, err)
	}
	return &record, nil
}

// SourceFile returns the path of the original image for the given wallpaper,
// named "<index>.<format>" inside the artist directory.
func (r *Record) SourceFile(artistDir string, w Wallpaper) string {
	return filepath.Join(artistDir, fmt.Sprintf("%d.%s", w.Index, w.Format))
}
