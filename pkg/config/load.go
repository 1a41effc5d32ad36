package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	fileMode = 0600

	// weightSumTolerance absorbs float drift when checking that category
	// weights sum to the scale.
	weightSumTolerance = 0.001
)

// Load reads a complete scoring configuration from a YAML file and
// validates it. The file substitutes the default configuration entirely,
// it is not merged with it.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config file path required")
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return &c, nil
}

// Save writes the configuration to a YAML file. Used to scaffold an
// alternate configuration from the defaults.
func Save(path string, c *Config) error {
	if path == "" {
		return errors.New("config file path required")
	}
	if c == nil {
		return errors.New("config required")
	}

	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(path, b, fileMode); err != nil {
		return fmt.Errorf("error writing config file %s: %w", path, err)
	}

	return nil
}

// Validate checks the structural invariants the scoring formulas rely on.
func (c *Config) Validate() error {
	if c.Scale <= 0 {
		return fmt.Errorf("score scale must be positive, got %v", c.Scale)
	}
	if c.Bounds.Min >= c.Bounds.Max {
		return fmt.Errorf("score bounds min %v must be below max %v", c.Bounds.Min, c.Bounds.Max)
	}

	sum := c.Weights.EntityBenchmarks + c.Weights.DevBenchmarks +
		c.Weights.CommunityScore + c.Weights.TechnicalScore
	if math.Abs(sum-c.Scale) > weightSumTolerance {
		return fmt.Errorf("category weights sum to %v, must sum to %v", sum, c.Scale)
	}

	if len(c.Benchmarks.Entity) == 0 {
		return errors.New("entity benchmark weights are empty")
	}
	if len(c.Benchmarks.Dev) == 0 {
		return errors.New("dev benchmark weights are empty")
	}

	for _, metric := range []string{MetricArenaScore, MetricHFScore} {
		bounds, ok := c.Community[metric]
		if !ok {
			return fmt.Errorf("community score bounds missing metric %q", metric)
		}
		if bounds.Min > bounds.Max {
			return fmt.Errorf("community score bounds for %q are inverted: min %v, max %v",
				metric, bounds.Min, bounds.Max)
		}
	}

	if _, ok := c.Architecture[ArchitectureDefault]; !ok {
		return fmt.Errorf("architecture factors missing %q entry", ArchitectureDefault)
	}

	tiers := c.Technical.SizePerfRatio.Tiers
	if len(tiers) == 0 {
		return errors.New("size tiers are empty")
	}
	prev := 0.0
	for _, tier := range tiers {
		if tier.Limit <= prev {
			return fmt.Errorf("size tiers must be ascending and positive, got limit %v after %v",
				tier.Limit, prev)
		}
		prev = tier.Limit
	}

	if c.Technical.ContextWindow.LogBase <= 1 {
		return fmt.Errorf("context window log base must be greater than 1, got %v",
			c.Technical.ContextWindow.LogBase)
	}

	return nil
}
