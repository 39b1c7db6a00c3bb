// Package render turns resolved entries into desktop-environment descriptor
// text: a KDE metadata.desktop per entry and one GNOME/MATE background
// properties XML for the whole pack. Rendering is pure; callers own all file
// writes.
package render

import (
	"bytes"
	"embed"
	"encoding/xml"
	"fmt"
	"text/template"

	"wallcolle/internal/contributor"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Renderer holds the parsed descriptor templates.
type Renderer struct {
	desktop *template.Template
	album   *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{"xml": escapeXML}

	desktop, err := template.New("metadata.desktop.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/metadata.desktop.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse desktop template: %w", err)
	}
	album, err := template.New("album-gnome.xml.tmpl").Funcs(funcs).ParseFS(templateFS, "templates/album-gnome.xml.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse album template: %w", err)
	}
	return &Renderer{desktop: desktop, album: album}, nil
}

// EntryDescriptor renders the per-entry KDE metadata.desktop content.
func (r *Renderer) EntryDescriptor(entry contributor.Entry) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.desktop.Execute(&buf, entry); err != nil {
		return nil, fmt.Errorf("render descriptor for %s: %w", entry.EntryName, err)
	}
	return buf.Bytes(), nil
}

// AlbumDescriptor renders the aggregate GNOME background-properties XML for
// the full ordered entry collection.
func (r *Renderer) AlbumDescriptor(entries []contributor.Entry) ([]byte, error) {
	var buf bytes.Buffer
	data := struct{ Wallpapers []contributor.Entry }{Wallpapers: entries}
	if err := r.album.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render album descriptor: %w", err)
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
