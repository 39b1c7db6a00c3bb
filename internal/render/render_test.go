package render_test

import (
	"strings"
	"testing"

	"wallcolle/internal/contributor"
	"wallcolle/internal/render"
)

func testEntry() contributor.Entry {
	entry := contributor.Entry{
		Artist:    "Jane Doe",
		Email:     "jdoe@example.com",
		EntryName: "My.cool.pack--jdoe--BlueHour",
		Dest:      "/usr/share/backgrounds/My.cool.pack--jdoe--BlueHour/My.cool.pack--jdoe--BlueHour.png",
	}
	entry.Title = "Blue Hour"
	entry.License = "CC-BY-SA-4.0"
	entry.Format = "png"
	return entry
}

func TestEntryDescriptor(t *testing.T) {
	renderer, err := render.New()
	if err != nil {
		t.Fatal(err)
	}

	out, err := renderer.EntryDescriptor(testEntry())
	if err != nil {
		t.Fatalf("EntryDescriptor returned error: %v", err)
	}

	text := string(out)
	for _, want := range []string{
		"[Desktop Entry]",
		"Name=Blue Hour",
		"X-KDE-PluginInfo-Name=My.cool.pack--jdoe--BlueHour",
		"X-KDE-PluginInfo-Author=Jane Doe",
		"X-KDE-PluginInfo-Email=jdoe@example.com",
		"X-KDE-PluginInfo-License=CC-BY-SA-4.0",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("descriptor missing %q:\n%s", want, text)
		}
	}
}

func TestAlbumDescriptor(t *testing.T) {
	renderer, err := render.New()
	if err != nil {
		t.Fatal(err)
	}

	first := testEntry()
	second := testEntry()
	second.Title = "Dunes & Sky"
	second.EntryName = "My.cool.pack--jdoe--DunesSky"
	second.Dest = "/usr/share/backgrounds/My.cool.pack--jdoe--DunesSky/My.cool.pack--jdoe--DunesSky.png"

	out, err := renderer.AlbumDescriptor([]contributor.Entry{first, second})
	if err != nil {
		t.Fatalf("AlbumDescriptor returned error: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "<wallpapers>") {
		t.Fatalf("missing root element:\n%s", text)
	}
	if strings.Count(text, "<wallpaper deleted=\"false\">") != 2 {
		t.Fatalf("expected two wallpaper elements:\n%s", text)
	}
	if !strings.Contains(text, "<filename>"+first.Dest+"</filename>") {
		t.Fatalf("missing canonical path:\n%s", text)
	}
	// Titles pass through XML escaping.
	if !strings.Contains(text, "Dunes &amp; Sky") {
		t.Fatalf("expected escaped title:\n%s", text)
	}
}

func TestAlbumDescriptorEmptyCollection(t *testing.T) {
	renderer, err := render.New()
	if err != nil {
		t.Fatal(err)
	}
	out, err := renderer.AlbumDescriptor(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "<wallpapers>") {
		t.Fatalf("expected empty but well-formed document:\n%s", out)
	}
}
