// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScoring(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateScoring() error {
	if !(c.Scoring.Lambda > 0) || math.IsInf(c.Scoring.Lambda, 0) {
		return fmt.Errorf("scoring.lambda must be finite and positive, got %g", c.Scoring.Lambda)
	}
	if c.Scoring.Speed < 1 {
		return fmt.Errorf("scoring.speed must be >= 1, got %d", c.Scoring.Speed)
	}
	if c.Scoring.Workers < 0 {
		return errors.New("scoring.workers cannot be negative (0 selects all cores)")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}
