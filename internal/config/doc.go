// Package config loads and validates tmtidy's TOML configuration.
//
// Resolution order: an explicit --config path, ~/.config/tmtidy/config.toml,
// then ./tmtidy.toml. A missing file is not an error; defaults apply.
package config
