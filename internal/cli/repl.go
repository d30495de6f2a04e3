package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/theory-lisp/tlisp/internal/trace"
	"github.com/theory-lisp/tlisp/internal/value"
	"github.com/theory-lisp/tlisp/pkg/eval"
	"github.com/theory-lisp/tlisp/pkg/lexer"
	"github.com/theory-lisp/tlisp/pkg/parser"
)

// runFile evaluates every top-level form in path, then — unless -x was
// given — falls through into a REPL sharing the same evaluator, per
// spec.md §6: "No file argument and no -x ⇒ REPL" implies a file argument
// without -x still ends in one.
func runFile(path string, opts *Options) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileError{msg: err.Error()}
	}

	p := parser.New(lexer.New(string(content)))
	nodes, perr := p.ParseProgram()
	if perr != nil {
		return UsageError{msg: perr.Error()}
	}

	e := eval.New()
	e.SetLibraryDir(filepath.Dir(path))

	for _, n := range nodes {
		result, err := e.Eval(n, e.Global)
		if err != nil {
			trace.Error(n.String(), err)
			return UsageError{msg: err.Error()}
		}
		printResult(n.String(), result, opts)
	}

	if !opts.ExitAfterFile {
		runREPLWith(e, opts)
	}
	return nil
}

// runREPL starts a fresh evaluator's interactive loop.
func runREPL(opts *Options) {
	runREPLWith(eval.New(), opts)
}

// runREPLWith drives a read-eval-print loop against e, so file mode and
// bare REPL mode can share one implementation and one evaluator state.
func runREPLWith(e *eval.Evaluator, opts *Options) {
	fmt.Println("tlisp - Type :quit to exit")
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("tlisp> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == ":quit" || line == ":q" {
			break
		}
		if strings.HasPrefix(line, ":") {
			handleReplCommand(line)
			continue
		}

		p := parser.New(lexer.New(line))
		node, err := p.Parse()
		if err != nil {
			fmt.Printf("parse error: %v\n", err)
			continue
		}

		result, err := e.Eval(node, e.Global)
		if err != nil {
			trace.Error(node.String(), err)
			fmt.Printf("evaluation error: %v\n", err)
			continue
		}
		printResult(node.String(), result, opts)
	}
}

func printResult(source string, result value.Value, opts *Options) {
	trace.Eval(source, result.String())
	if !opts.Quiet {
		fmt.Println(result.String())
	}
}

func handleReplCommand(cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Println("Available commands:")
		fmt.Println("  :help, :h    Show this help")
		fmt.Println("  :quit, :q    Exit the REPL")
	default:
		fmt.Printf("unknown command: %s\n", cmd)
		fmt.Println("Type :help for available commands")
	}
}
