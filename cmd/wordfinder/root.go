package main

import (
	"github.com/spf13/cobra"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

func newRootCommand() *cobra.Command {
	opts := &runOptions{}
	ctx := newCommandContext(&opts.configPath)

	rootCmd := &cobra.Command{
		Use:   "wordfinder [FILES...]",
		Short: "Search and analyse words in text files",
		Long: `Counts lowercase, punctuation-stripped words per file (or per in-memory text)
and answers lookups, filters, sorting and export over the counts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.files = args
			return runAnalysis(cmd, ctx, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.text, "text", "", "Text to process in memory (ignored when files are given)")
	flags.StringVar(&opts.encoding, "encoding", "utf-8", "File encoding: an IANA charset name (utf-8, iso-8859-1, windows-1251, us-ascii)\nor a Python alias (latin-1, cp1251, ascii)")
	flags.StringVar(&opts.word, "word", "", "Word to search for")
	flags.StringVar(&opts.count, "count", "", "Word to count occurrences of")
	flags.StringVar(&opts.filter, "filter", "", "Filter words: MIN_LENGTH[,STARTS_WITH]")
	flags.StringVarP(&opts.output, "output", "o", "", "File to save the word counts to")
	flags.StringVar(&opts.sort, "sort", "", "Sort saved results: frequency or alphabetical")
	flags.StringVar(&opts.format, "format", "text", "Saved results format: text or json")
	flags.StringVar(&opts.logLevel, "log-level", "ERROR", "Log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return domain.NewUsageError("%v", err)
	})
	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
