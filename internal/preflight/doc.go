// Package preflight runs the checks a build must pass before any filesystem
// mutation: source tree readable, destination writable, and required external
// binaries present for the chosen variant.
package preflight
