// Package naming derives the stable, filesystem-safe identifiers used to
// build every path in a wallpaper pack.
//
// The transforms are pure and deterministic: the same pack name, title, and
// username always produce the same entry name. Uniqueness across a pack is
// enforced by the layout builder, not here.
package naming

import (
	"strings"
	"unicode"
)

// Slugify lowercases the input and collapses every run of non-alphanumeric
// characters into a single hyphen. Leading and trailing hyphens are trimmed.
func Slugify(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// UppercaseFirst upper-cases the first rune of s, leaving the rest untouched.
func UppercaseFirst(s string) string {
	for i, r := range s {
		return string(unicode.ToUpper(r)) + s[i+len(string(r)):]
	}
	return ""
}

// NormalizePackName converts a pack directory name into its display name:
// slugified, first letter upper-cased, hyphen separators converted to dots.
// "summer-vibes" becomes "Summer.vibes".
func NormalizePackName(name string) string {
	return strings.ReplaceAll(UppercaseFirst(Slugify(name)), "-", ".")
}

// NormalizeImageName derives the stable entry name for one wallpaper:
// "{pack}--{username}--{TitleCased}" where TitleCased is the slugified title
// with each segment capitalized and the separators removed. Title "blue hour"
// under pack "Summer.vibes" by "jdoe" becomes "Summer.vibes--jdoe--BlueHour".
func NormalizeImageName(pack, title, username string) string {
	segments := strings.Split(Slugify(title), "-")
	var converted strings.Builder
	for _, segment := range segments {
		converted.WriteString(UppercaseFirst(segment))
	}
	return pack + "--" + username + "--" + converted.String()
}
