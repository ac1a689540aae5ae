package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/baditaflorin/go_word_frequency/internal/adapters/source"
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

func (c *Config) normalize() {
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if c.Input.Encoding == "" {
		c.Input.Encoding = source.DefaultEncoding
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.Sort = strings.ToLower(strings.TrimSpace(c.Output.Sort))
	c.Logging.Level = strings.ToUpper(strings.TrimSpace(c.Logging.Level))
	c.Server.Bind = strings.TrimSpace(c.Server.Bind)
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, _, err := source.LookupEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding: %w", err)
	}
	if c.Cache.NormalizerSize < 0 {
		return errors.New("cache.normalizer_size must be zero or positive")
	}
	if _, err := domain.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if _, err := domain.ParseSortOrder(c.Output.Sort); err != nil {
		return fmt.Errorf("output.sort: %w", err)
	}
	if c.Server.Bind == "" {
		return errors.New("server.bind must be set")
	}
	if c.Server.ReadTimeoutSeconds < 0 || c.Server.WriteTimeoutSeconds < 0 {
		return errors.New("server timeouts must be zero or positive")
	}
	return nil
}
