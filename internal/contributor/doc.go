// Package contributor loads per-artist metadata records and resolves manifest
// selections into fully-populated wallpaper entries.
//
// Each artist directory under <root>/contributors/<artist>/ carries a me.json
// record describing the artist and the images they offer. Resolution joins a
// selection group against that record: selected indices missing from the
// record are silently dropped, while a missing or malformed record fails the
// run.
package contributor
