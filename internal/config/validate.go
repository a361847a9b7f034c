package config

import (
	"fmt"
	"os"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.Analyzer.validate(); err != nil {
		return fmt.Errorf("analyzer: %w", err)
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("log.level must be one of %v (got %q)", logLevels, c.Log.Level)
	}
	if !slices.Contains(logFormats, c.Log.Format) {
		return fmt.Errorf("log.format must be one of %v (got %q)", logFormats, c.Log.Format)
	}

	return nil
}

func (a *AnalyzerConfig) validate() error {
	if a.TopK <= 0 {
		return fmt.Errorf("top_k must be > 0 (got %d)", a.TopK)
	}
	if a.MaxMatches <= 0 {
		return fmt.Errorf("max_matches must be > 0 (got %d)", a.MaxMatches)
	}
	if a.SuffixTable != "" {
		if _, err := os.Stat(a.SuffixTable); err != nil {
			return fmt.Errorf("suffix_table: %w", err)
		}
	}
	return nil
}
