// Package testsupport provides fixture helpers for building throwaway
// wallpaper pack source trees in tests.
package testsupport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Contributor mirrors the me.json record written by WriteContributor.
type Contributor struct {
	Name       string      `json:"name"`
	Username   string      `json:"uname"`
	Email      string      `json:"email"`
	URI        string      `json:"uri"`
	Wallpapers []Wallpaper `json:"wallpapers"`
}

// Wallpaper mirrors one offered image inside a contributor record.
type Wallpaper struct {
	Index   int      `json:"i"`
	Format  string   `json:"f"`
	Title   string   `json:"t"`
	License string   `json:"l"`
	Tags    []string `json:"tags"`
}

// WriteContributor creates <root>/contributors/<artist>/ with a me.json record
// and one source image per offered wallpaper, returning the artist directory.
func WriteContributor(t *testing.T, root, artist string, record Contributor) string {
	t.Helper()

	dir := filepath.Join(root, "contributors", artist)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "me.json"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, w := range record.Wallpapers {
		name := fmt.Sprintf("%d.%s", w.Index, w.Format)
		if err := os.WriteFile(filepath.Join(dir, name), TinyPNG(t), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// WriteManifest creates <root>/packs/<name> with the given content and returns
// its path.
func WriteManifest(t *testing.T, root, name, content string) string {
	t.Helper()

	dir := filepath.Join(root, "packs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TinyPNG returns a valid 1x1 PNG image.
func TinyPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
