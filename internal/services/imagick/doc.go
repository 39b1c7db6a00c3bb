// Package imagick wraps the ImageMagick convert binary as a resize transform.
//
// The invocation mirrors the pack's historical settings: center gravity,
// quality 80, 256-color palette, PNG8 output on stdout. The client is a thin
// process wrapper; orchestration and parallelism live in the derivation
// pipeline.
package imagick
