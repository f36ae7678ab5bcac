package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		expanded, err := expandPath(c.Paths.LogDir)
		if err != nil {
			return fmt.Errorf("paths.log_dir: %w", err)
		}
		c.Paths.LogDir = expanded
	}
	c.Matching.AdmissionPolicy = strings.ToLower(strings.TrimSpace(c.Matching.AdmissionPolicy))
	if c.Matching.AdmissionPolicy == "" {
		c.Matching.AdmissionPolicy = defaultAdmissionPolicy
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}
