// Package config loads and validates wallcolle configuration.
//
// Configuration lives in a TOML file (default ~/.config/wallcolle/config.toml,
// or ./wallcolle.toml in the working directory). Every field has a default, so
// running without a config file works out of the box. The resolution and
// aspect-ratio tables are treated as immutable once loaded; components receive
// them read-only.
package config
