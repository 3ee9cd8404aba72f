package config

import (
	"fmt"
	"net/url"
	"slices"
)

var validStatuses = []string{"pending", "translated", "published"}

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if err := c.Search.validate(); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be > 0 (got %d)", c.Cache.Size)
	}
	if c.Cache.ListTTL <= 0 {
		return fmt.Errorf("cache.list_ttl must be > 0 (got %s)", c.Cache.ListTTL)
	}

	if c.Catalog.ScanBatchSize <= 0 || c.Catalog.ScanBatchSize > 10000 {
		return fmt.Errorf("catalog.scan_batch_size must be in 1..10000 (got %d)", c.Catalog.ScanBatchSize)
	}
	if c.Catalog.PropagationBatchSize <= 0 || c.Catalog.PropagationBatchSize > 10000 {
		return fmt.Errorf("catalog.propagation_batch_size must be in 1..10000 (got %d)", c.Catalog.PropagationBatchSize)
	}

	if err := c.Import.validate(); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	return nil
}

func (s *SearchConfig) validate() error {
	if !s.Enabled {
		return nil
	}
	u, err := url.Parse(s.Host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("host must be an absolute URL (got %q)", s.Host)
	}
	if s.Index == "" {
		return fmt.Errorf("index is required")
	}
	if s.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", s.BatchSize)
	}
	return nil
}

func (i *ImportConfig) validate() error {
	if i.BatchSize <= 0 || i.BatchSize > 10000 {
		return fmt.Errorf("batch_size must be in 1..10000 (got %d)", i.BatchSize)
	}
	if i.MaxSuffix < 2 {
		return fmt.Errorf("max_suffix must be >= 2 (got %d)", i.MaxSuffix)
	}
	if !slices.Contains(validStatuses, i.DefaultStatus) {
		return fmt.Errorf("default_status must be one of %v (got %q)", validStatuses, i.DefaultStatus)
	}
	return nil
}
