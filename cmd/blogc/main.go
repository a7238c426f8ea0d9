package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit code table, mirroring the core's distinct error kinds so a
// caller can distinguish failure classes without parsing stderr.
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitLexError         = 3
	ExitParseError       = 4
	ExitGenerationError  = 5
)

var lintWordsFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "blogc",
		Short:         "Compile the blogging DSL into HTML",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	buildCmd := &cobra.Command{
		Use:   "build <src> <dst>",
		Short: "Compile a source file and write the generated HTML",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(args[0], args[1])
		},
	}
	buildCmd.Flags().StringVar(&lintWordsFile, "lint-words", "", "path to a newline-separated banned-phrase list")

	watchCmd := &cobra.Command{
		Use:   "watch <src> <dst>",
		Short: "Rebuild <dst> every time <src> changes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(args[0], args[1])
		},
	}
	watchCmd.Flags().StringVar(&lintWordsFile, "lint-words", "", "path to a newline-separated banned-phrase list")

	rootCmd.AddCommand(buildCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "blogc: %v\n", err)
		os.Exit(exitCodeFor(err))
	}
}
