package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"wallcolle/internal/config"
	"wallcolle/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes all applicable checks for a build of the given variant.
// Binary checks are skipped for the normal variant, which never invokes the
// external transforms.
func RunAll(cfg *config.Config, packPath, dest string, retro bool) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckManifestReadable(packPath))
	results = append(results, CheckDestinationParent(dest))

	if retro {
		for _, status := range deps.CheckBinaries(deps.For(cfg, true)) {
			result := Result{Name: status.Name, Passed: status.Available}
			if !status.Available {
				result.Detail = status.Detail
			}
			results = append(results, result)
		}
	}

	return results
}

// Failed returns the first failing check, if any.
func Failed(results []Result) (Result, bool) {
	for _, result := range results {
		if !result.Passed {
			return result, true
		}
	}
	return Result{}, false
}

// CheckManifestReadable verifies the pack manifest exists and is a regular
// readable file.
func CheckManifestReadable(path string) Result {
	const name = "Pack manifest"
	info, err := os.Stat(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckDestinationParent verifies the destination's parent directory exists
// and is writable; the destination itself is created by the build.
func CheckDestinationParent(dest string) Result {
	const name = "Destination"
	parent := filepath.Dir(strings.TrimRight(dest, string(os.PathSeparator)))
	info, err := os.Stat(parent)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", parent, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", parent)}
	}
	if err := unix.Access(parent, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", parent, err)}
	}
	return Result{Name: name, Passed: true, Detail: dest}
}
