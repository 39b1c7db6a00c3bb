// Package build orchestrates a full pack assembly run: preflight, destination
// locking, manifest parsing, contributor resolution, the parallel per-entry
// layout/derivation region, and the final album descriptor.
//
// Errors follow a fail-the-run policy: the first fatal error stops dispatch of
// new entry tasks, in-flight tasks finish naturally, and already-written output
// from other entries is preserved for inspection rather than rolled back.
package build
