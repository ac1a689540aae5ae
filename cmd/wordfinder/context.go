package main

import (
	"os"

	"github.com/baditaflorin/go_word_frequency/internal/adapters/logger"
	"github.com/baditaflorin/go_word_frequency/internal/config"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
)

type commandContext struct {
	configFlag *string
	config     *config.Config
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.config != nil {
		return c.config, nil
	}
	cfg, _, _, err := config.Load(*c.configFlag)
	if err != nil {
		return nil, err
	}
	c.config = cfg
	return cfg, nil
}

// newLogger builds the diagnostic logger. Logs go to stderr so stdout only carries results.
func newLogger(level string, jsonFormat bool) (ports.Logger, error) {
	return logger.NewLeveledLogger(logger.Options{
		Output:     os.Stderr,
		Level:      logger.ParseLevel(level),
		JSONFormat: jsonFormat,
	})
}
