package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word_frequency/internal/adapters/source"
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var text, encoding, bind, logLevel string

	cmd := &cobra.Command{
		Use:   "serve [FILES...]",
		Short: "Serve word queries over HTTP",
		Long: `Builds the word counts once and serves them read-only:
  GET /find?word=W   GET /count?word=W   GET /words?sort=S
  GET /filter?min_length=N&starts_with=P  GET /health`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if len(args) == 0 && text == "" {
				return domain.NewUsageError("at least one file or --text must be given")
			}
			if !cmd.Flags().Changed("encoding") {
				encoding = cfg.Input.Encoding
			}
			if _, _, err := source.LookupEncoding(encoding); err != nil {
				return &domain.UsageError{Message: err.Error()}
			}
			if !cmd.Flags().Changed("bind") {
				bind = cfg.Server.Bind
			}
			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.Logging.Level
			}

			log, err := newLogger(logLevel, cfg.Logging.JSON)
			if err != nil {
				return fmt.Errorf("create logger: %w", err)
			}
			defer log.Close()

			finder, err := buildFinder(args, text, encoding, cfg.Cache.NormalizerSize, log)
			if err != nil {
				return err
			}

			srv := server.New(finder, log, server.Config{
				Bind:         bind,
				ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
				WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
			})

			stopped := make(chan struct{})
			go func() {
				sigint := make(chan os.Signal, 1)
				signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
				<-sigint

				log.Info("Shutting down server")
				if err := srv.Shutdown(); err != nil {
					log.Error("Error during server shutdown", "error", err)
				}
				close(stopped)
			}()

			fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s\n", bind)
			if err := srv.ListenAndServe(); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			<-stopped
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to serve in memory (ignored when files are given)")
	cmd.Flags().StringVar(&encoding, "encoding", "utf-8", "File encoding")
	cmd.Flags().StringVar(&bind, "bind", ":8080", "Address to listen on")
	cmd.Flags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")

	return cmd
}
