// Package services defines the shared error taxonomy consumed by the build
// pipeline and the external tool clients.
//
// Stage code wraps failures with one of the exported sentinel markers plus
// stage/operation context via Wrap, so the top level can classify errors
// (configuration vs external tool vs filesystem) without string matching.
package services
