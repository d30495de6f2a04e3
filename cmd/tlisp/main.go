// Command tlisp is the Theory Lisp interpreter's command-line entry point:
// `tlisp [-v] [-q] [-x] <file>` per spec.md §6, implemented in
// internal/cli.
package main

import (
	"os"

	"github.com/theory-lisp/tlisp/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
