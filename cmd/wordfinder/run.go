package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word_frequency/internal/adapters/source"
	"github.com/baditaflorin/go_word_frequency/internal/config"
	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
	"github.com/baditaflorin/go_word_frequency/internal/ports"
	"github.com/baditaflorin/go_word_frequency/pkg/wordfinder"
)

type runOptions struct {
	configPath string
	files      []string
	text       string
	encoding   string
	word       string
	count      string
	filter     string
	output     string
	sort       string
	format     string
	logLevel   string
}

// request is a validated runOptions.
type request struct {
	files     []string
	text      string
	encoding  string
	word      string
	count     string
	filter    *domain.Filter
	output    string
	sort      domain.SortOrder
	format    domain.Format
	logLevel  string
	logJSON   bool
	cacheSize int
}

func runAnalysis(cmd *cobra.Command, ctx *commandContext, opts *runOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	req, err := buildRequest(cmd, cfg, opts)
	if err != nil {
		return err
	}

	log, err := newLogger(req.logLevel, req.logJSON)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Close()

	finder, err := buildFinder(req.files, req.text, req.encoding, req.cacheSize, log)
	if err != nil {
		return err
	}

	return execute(cmd, finder, req)
}

// buildRequest merges flags over config and validates everything before any processing.
func buildRequest(cmd *cobra.Command, cfg *config.Config, opts *runOptions) (*request, error) {
	if len(opts.files) == 0 && opts.text == "" {
		return nil, domain.NewUsageError("at least one file or --text must be given")
	}

	flags := cmd.Flags()
	pick := func(name, flagValue, configValue string) string {
		if flags.Changed(name) || configValue == "" {
			return flagValue
		}
		return configValue
	}

	req := &request{
		files:     opts.files,
		text:      opts.text,
		encoding:  pick("encoding", opts.encoding, cfg.Input.Encoding),
		word:      opts.word,
		count:     opts.count,
		output:    opts.output,
		logLevel:  pick("log-level", opts.logLevel, cfg.Logging.Level),
		logJSON:   cfg.Logging.JSON,
		cacheSize: cfg.Cache.NormalizerSize,
	}

	if _, _, err := source.LookupEncoding(req.encoding); err != nil {
		return nil, &domain.UsageError{Message: err.Error()}
	}

	var err error
	if req.sort, err = domain.ParseSortOrder(pick("sort", opts.sort, cfg.Output.Sort)); err != nil {
		return nil, &domain.UsageError{Message: err.Error()}
	}
	if req.format, err = domain.ParseFormat(pick("format", opts.format, cfg.Output.Format)); err != nil {
		return nil, &domain.UsageError{Message: err.Error()}
	}
	if flags.Changed("filter") {
		if req.filter, err = parseFilter(opts.filter); err != nil {
			return nil, err
		}
	}
	return req, nil
}

// parseFilter splits MIN_LENGTH[,STARTS_WITH] at the first comma.
func parseFilter(value string) (*domain.Filter, error) {
	lengthText, prefix, hasPrefix := strings.Cut(value, ",")
	if hasPrefix && strings.Contains(prefix, ",") {
		return nil, domain.NewUsageError("--filter expects MIN_LENGTH[,STARTS_WITH], got %q", value)
	}
	minLength, err := strconv.Atoi(strings.TrimSpace(lengthText))
	if err != nil {
		return nil, domain.NewUsageError("MIN_LENGTH must be an integer, got %q", lengthText)
	}
	return &domain.Filter{MinLength: minLength, Prefix: prefix}, nil
}

// buildFinder prefers files over text when both are present.
func buildFinder(files []string, text, encoding string, cacheSize int, log ports.Logger) (ports.WordsFinder, error) {
	opts := []wordfinder.Option{
		wordfinder.WithLogger(log),
		wordfinder.WithCacheSize(cacheSize),
	}
	if len(files) > 0 {
		f, err := wordfinder.NewFileFinder(files, append(opts, wordfinder.WithEncoding(encoding))...)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	m, err := wordfinder.NewMemoryFinder(text, opts...)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func execute(cmd *cobra.Command, finder ports.WordsFinder, req *request) error {
	out := cmd.OutOrStdout()

	if req.word != "" {
		fmt.Fprintf(out, "Search results for '%s':\n", req.word)
		fmt.Fprintln(out, renderOccurrences(out, finder.Find(req.word)))
	}

	if req.count != "" {
		fmt.Fprintf(out, "Occurrences of '%s':\n", req.count)
		fmt.Fprintln(out, renderOccurrences(out, finder.CountWordOccurrences(req.count)))
	}

	if req.filter != nil {
		fmt.Fprintf(out, "Filtered words (length >= %d and starting with '%s'):\n", req.filter.MinLength, req.filter.Prefix)
		fmt.Fprintln(out, renderWordLists(out, finder.FilterWords(*req.filter)))
	}

	if req.output != "" {
		table := finder.CountAllWords()
		table = finder.SortResults(table, req.sort)
		if err := finder.SaveResults(table, req.output, req.format); err != nil {
			return err
		}
		fmt.Fprintf(out, "Word counts saved to: %s\n", req.output)
	}
	return nil
}
