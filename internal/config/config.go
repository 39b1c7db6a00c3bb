package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Resizer and optimizer implementation names accepted in [tools].
const (
	ResizerImageMagick = "imagemagick"
	ResizerBuiltin     = "builtin"
	OptimizerOxipng    = "oxipng"
	OptimizerBuiltin   = "builtin"
)

// Resolutions holds the target resolution tables for both pack variants.
type Resolutions struct {
	Mainline  []string `toml:"mainline"`
	Retro     []string `toml:"retro"`
	Reference string   `toml:"reference"`
}

// Ratios holds the aspect-ratio tags served by the XFCE background directory.
type Ratios struct {
	XFCE []string `toml:"xfce"`
}

// Tools selects and names the external image transforms.
type Tools struct {
	Resizer        string `toml:"resizer"`
	ResizeBinary   string `toml:"resize_binary"`
	Optimizer      string `toml:"optimizer"`
	OptimizeBinary string `toml:"optimize_binary"`
	OptimizeEffort int    `toml:"optimize_effort"`
}

// Build holds pipeline tuning knobs.
type Build struct {
	Workers int `toml:"workers"`
}

// Logging holds log output settings.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for wallcolle.
type Config struct {
	Resolutions Resolutions `toml:"resolutions"`
	Ratios      Ratios      `toml:"ratios"`
	Tools       Tools       `toml:"tools"`
	Build       Build       `toml:"build"`
	Logging     Logging     `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Resolutions: Resolutions{
			Mainline: []string{
				"800x600", "1024x768", "1152x768", "1280x800", "1280x854",
				"1280x960", "1280x1024", "1366x768", "1440x900", "1440x960",
				"1600x900", "1600x1200", "1680x1050", "1920x1080", "1920x1200",
				"2048x1536", "2048x2048", "2160x1440", "2520x1080", "2560x1600",
				"2560x2048", "2880x1800", "3000x2000", "3360x1440", "3840x2160",
				"4096x4096", "4500x3000", "5120x4096",
			},
			Retro:     []string{"800x600", "1280x960", "1600x1200", "1920x1200"},
			Reference: "1280x960",
		},
		Ratios: Ratios{
			XFCE: []string{"1-1", "16-10", "16-9", "21-9", "3-2", "4-3", "5-4"},
		},
		Tools: Tools{
			Resizer:        ResizerImageMagick,
			ResizeBinary:   "convert",
			Optimizer:      OptimizerOxipng,
			OptimizeBinary: "oxipng",
			OptimizeEffort: 1,
		},
		Build:   Build{Workers: 0},
		Logging: Logging{Format: "auto", Level: "info"},
	}
}

// DefaultConfigPath returns the absolute path of the default config location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/wallcolle/config.toml")
}

// Load locates, parses, and validates a configuration file. Absent files are
// not an error: defaults are returned and exists reports false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("wallcolle.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() {
	c.Tools.Resizer = strings.ToLower(strings.TrimSpace(c.Tools.Resizer))
	c.Tools.Optimizer = strings.ToLower(strings.TrimSpace(c.Tools.Optimizer))
	c.Tools.ResizeBinary = strings.TrimSpace(c.Tools.ResizeBinary)
	c.Tools.OptimizeBinary = strings.TrimSpace(c.Tools.OptimizeBinary)
	c.Resolutions.Reference = strings.TrimSpace(c.Resolutions.Reference)
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
}

// Validate checks the configuration for values the build cannot run with.
func (c *Config) Validate() error {
	switch c.Tools.Resizer {
	case ResizerImageMagick, ResizerBuiltin:
	default:
		return fmt.Errorf("tools.resizer: unsupported value %q", c.Tools.Resizer)
	}
	switch c.Tools.Optimizer {
	case OptimizerOxipng, OptimizerBuiltin:
	default:
		return fmt.Errorf("tools.optimizer: unsupported value %q", c.Tools.Optimizer)
	}
	if c.Tools.Resizer == ResizerImageMagick && c.Tools.ResizeBinary == "" {
		return errors.New("tools.resize_binary: required for the imagemagick resizer")
	}
	if c.Tools.Optimizer == OptimizerOxipng && c.Tools.OptimizeBinary == "" {
		return errors.New("tools.optimize_binary: required for the oxipng optimizer")
	}
	if c.Tools.OptimizeEffort < 0 || c.Tools.OptimizeEffort > 6 {
		return fmt.Errorf("tools.optimize_effort: %d outside 0-6", c.Tools.OptimizeEffort)
	}
	if len(c.Resolutions.Mainline) == 0 {
		return errors.New("resolutions.mainline: at least one resolution required")
	}
	if len(c.Resolutions.Retro) == 0 {
		return errors.New("resolutions.retro: at least one resolution required")
	}
	reference := false
	for _, res := range c.Resolutions.Retro {
		if res == c.Resolutions.Reference {
			reference = true
			break
		}
	}
	if !reference {
		return fmt.Errorf("resolutions.reference: %q not in the retro resolution list", c.Resolutions.Reference)
	}
	if len(c.Ratios.XFCE) == 0 {
		return errors.New("ratios.xfce: at least one ratio required")
	}
	if c.Build.Workers < 0 {
		return fmt.Errorf("build.workers: %d is negative", c.Build.Workers)
	}
	return nil
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ against the current user's home directory
// and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return "", errors.New("empty path")
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	return filepath.Abs(pathValue)
}
