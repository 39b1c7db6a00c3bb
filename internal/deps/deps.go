// Package deps reports the availability of the external tools the pack
// builder shells out to.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"wallcolle/internal/config"
)

// Requirement defines an external binary wallcolle relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// For returns the requirements implied by the configuration. The external
// transforms are only required when the corresponding implementation is
// selected, and only the retro variant invokes them; retro reports whether
// the caller intends to build that variant.
func For(cfg *config.Config, retro bool) []Requirement {
	if cfg == nil {
		return nil
	}

	var requirements []Requirement
	if cfg.Tools.Resizer == config.ResizerImageMagick {
		requirements = append(requirements, Requirement{
			Name:        "ImageMagick",
			Command:     cfg.Tools.ResizeBinary,
			Description: "Required for retro resolution derivation",
			Optional:    !retro,
		})
	}
	if cfg.Tools.Optimizer == config.OptimizerOxipng {
		requirements = append(requirements, Requirement{
			Name:        "oxipng",
			Command:     cfg.Tools.OptimizeBinary,
			Description: "Required for lossless PNG re-compression",
			Optional:    !retro,
		})
	}
	return requirements
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
