package build

import (
	"fmt"
	"strings"
)

// Variant selects how per-resolution images are produced.
type Variant int

const (
	// VariantNormal aliases one canonical image via symlinks.
	VariantNormal Variant = iota
	// VariantRetro derives a real file per resolution.
	VariantRetro
)

// ParseVariant converts a user-supplied variant name, case-insensitively.
func ParseVariant(value string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "normal":
		return VariantNormal, nil
	case "retro":
		return VariantRetro, nil
	default:
		return VariantNormal, fmt.Errorf("unknown variant %q (expected \"normal\" or \"retro\")", value)
	}
}

// String returns the canonical variant name.
func (v Variant) String() string {
	if v == VariantRetro {
		return "retro"
	}
	return "normal"
}
