// Package cli wires spec.md §6's command-line contract — `tlisp [-v] [-q]
// [-x] <file>` — on top of cobra/pflag, the flag-parsing stack the teacher
// interpreter carried in go.mod but never exercised. Genuinely wiring it
// here (rather than the teacher's hand-rolled stdlib flag package) is the
// one CLI-shaped dependency the corpus offers.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theory-lisp/tlisp/internal/trace"
)

// Options holds the three CLI flags spec.md §6 names, shared by file mode
// and REPL mode so both behave identically under -v/-q.
type Options struct {
	Verbose bool
	Quiet   bool
	ExitAfterFile bool
}

// UsageError marks a failure that should exit 1 (spec.md §6: "1 usage
// error") — bad flags, a parse failure, or a malformed invocation.
type UsageError struct{ msg string }

func (e UsageError) Error() string { return e.msg }

// FileError marks an unreadable input file — spec.md §6's exit code 2.
type FileError struct{ msg string }

func (e FileError) Error() string { return e.msg }

// NewRootCmd builds the tlisp root command. Execute()'s returned error's
// concrete type (UsageError/FileError/plain error) tells main which spec.md
// §6 exit code to use.
func NewRootCmd() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "tlisp [flags] [file]",
		Short:         "Theory Lisp interpreter",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			trace.Init(opts.Verbose, os.Stderr)

			if len(args) == 0 {
				if opts.ExitAfterFile {
					return UsageError{msg: "-x requires a file argument"}
				}
				runREPL(opts)
				return nil
			}
			return runFile(args[0], opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false,
		"trace each top-level expression and its result")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"suppress result printing")
	cmd.PersistentFlags().BoolVarP(&opts.ExitAfterFile, "exit", "x", false,
		"exit after evaluating the file instead of entering a REPL")

	return cmd
}

// Execute runs the CLI and returns the spec.md §6 exit code.
func Execute() int {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintln(os.Stderr, err)
	switch err.(type) {
	case FileError:
		return 2
	default:
		return 1
	}
}
