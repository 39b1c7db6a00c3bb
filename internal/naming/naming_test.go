package naming_test

import (
	"testing"

	"wallcolle/internal/naming"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Blue Hour", "blue-hour"},
		{"my-cool-pack", "my-cool-pack"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Under_score & Símbolo", "under-score-s-mbolo"},
		{"UPPER", "upper"},
		{"", ""},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := naming.Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizePackName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"my-cool-pack", "My.cool.pack"},
		{"summer-vibes", "Summer.vibes"},
		{"Single", "Single"},
	}
	for _, tc := range cases {
		if got := naming.NormalizePackName(tc.in); got != tc.want {
			t.Errorf("NormalizePackName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeImageName(t *testing.T) {
	got := naming.NormalizeImageName("My.cool.pack", "Blue Hour", "jdoe")
	if got != "My.cool.pack--jdoe--BlueHour" {
		t.Fatalf("unexpected entry name %q", got)
	}

	got = naming.NormalizeImageName("Summer.vibes", "a walk in the park", "alice")
	if got != "Summer.vibes--alice--AWalkInThePark" {
		t.Fatalf("unexpected entry name %q", got)
	}
}

func TestUppercaseFirst(t *testing.T) {
	if got := naming.UppercaseFirst(""); got != "" {
		t.Fatalf("expected empty result, got %q", got)
	}
	if got := naming.UppercaseFirst("blue"); got != "Blue" {
		t.Fatalf("got %q", got)
	}
}
