package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/baditaflorin/go_word_frequency/internal/core/domain"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		var usageErr *domain.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
			os.Exit(2)
		}
		os.Exit(1)
	}
}
