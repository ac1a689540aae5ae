package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word_frequency/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := *ctx.configFlag
			if path == "" {
				var err error
				if path, err = config.DefaultConfigPath(); err != nil {
					return err
				}
			}
			if err := config.CreateSample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote configuration to %s\n", path)
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "input.encoding = %s\n", cfg.Input.Encoding)
			fmt.Fprintf(out, "cache.normalizer_size = %d\n", cfg.Cache.NormalizerSize)
			fmt.Fprintf(out, "output.format = %s\n", cfg.Output.Format)
			fmt.Fprintf(out, "output.sort = %s\n", cfg.Output.Sort)
			fmt.Fprintf(out, "logging.level = %s\n", cfg.Logging.Level)
			fmt.Fprintf(out, "logging.json = %t\n", cfg.Logging.JSON)
			fmt.Fprintf(out, "server.bind = %s\n", cfg.Server.Bind)
			return nil
		},
	}

	configCmd.AddCommand(initCmd, showCmd)
	return configCmd
}
