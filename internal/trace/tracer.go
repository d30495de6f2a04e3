// Package trace provides `-v` execution tracing for the CLI: printing each
// top-level expression's source form and resulting value. Grounded on the
// pack's Tracer pattern (a global instance guarded by a mutex, writing
// through a plain io.Writer) rather than a structured-logging dependency —
// the pack's own interactive-interpreter precedent reaches for stdlib here,
// not a third-party logger (see DESIGN.md).
package trace

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Tracer prints top-level evaluation trace lines when enabled.
type Tracer struct {
	enabled bool
	writer  io.Writer
	mu      sync.Mutex
}

var global *Tracer

// Init installs the global tracer. writer defaults to os.Stderr if nil.
func Init(enabled bool, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	global = &Tracer{enabled: enabled, writer: writer}
}

// IsEnabled reports whether the global tracer is active.
func IsEnabled() bool {
	return global != nil && global.enabled
}

// Eval logs one top-level expression's source form and resulting value.
func (t *Tracer) Eval(source string, result string) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] %s => %s\n", source, result)
}

// Error logs a top-level expression that failed with a Go-level error
// (parse failure or interpreter fault, as opposed to an in-language Error
// value, which Eval already prints as an ordinary result).
func (t *Tracer) Error(source string, err error) {
	if !t.enabled {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.writer, "[TRACE] %s => error: %s\n", source, err)
}

// Eval logs through the global tracer, a no-op if tracing isn't enabled.
func Eval(source, result string) {
	if global != nil {
		global.Eval(source, result)
	}
}

// Error logs a failure through the global tracer.
func Error(source string, err error) {
	if global != nil {
		global.Error(source, err)
	}
}
