package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatching() error {
	if c.Matching.DeltaMin > c.Matching.DeltaMax {
		return fmt.Errorf("matching.delta_min (%d) must not exceed matching.delta_max (%d)",
			c.Matching.DeltaMin, c.Matching.DeltaMax)
	}
	switch c.Matching.AdmissionPolicy {
	case "strict", "loose":
	default:
		return fmt.Errorf("matching.admission_policy must be %q or %q, got %q",
			"strict", "loose", c.Matching.AdmissionPolicy)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return errors.New(`logging.format must be "console" or "json"`)
	}
	return nil
}
