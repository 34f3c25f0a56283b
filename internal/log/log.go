// Package log provides context-aware diagnostic logging for gorg.
//
// Diagnostics always go to stderr so that primary output on stdout stays
// scriptable. Quiet suppresses everything, verbose adds command traces and
// key-value debug lines.
package log

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

type ctxKey struct{}

// Logger writes diagnostics. The zero value is not usable, construct it
// with New.
type Logger struct {
	out     io.Writer
	verbose bool
	quiet   bool
}

// New creates a new logger. Quiet wins over verbose.
func New(out io.Writer, verbose, quiet bool) *Logger {
	return &Logger{out: out, verbose: verbose, quiet: quiet}
}

// WithLogger attaches a logger to the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext retrieves the logger from context.
// Returns a no-op logger if none is attached.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return &Logger{out: io.Discard}
}

// Printf writes formatted output. Suppressed when quiet.
func (l *Logger) Printf(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.out, format, args...)
}

// Println writes a line of output. Suppressed when quiet.
func (l *Logger) Println(args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintln(l.out, args...)
}

// Command traces an external command execution. It prints the command line
// up front and returns a done func the caller invokes with the elapsed time.
// A no-op unless verbose mode is enabled.
func (l *Logger) Command(dir, name string, args ...string) func(time.Duration) {
	if !l.IsVerbose() {
		return func(time.Duration) {}
	}
	if dir != "" {
		fmt.Fprintf(l.out, "[%s] $ %s %s\n", dir, name, strings.Join(args, " "))
	} else {
		fmt.Fprintf(l.out, "$ %s %s\n", name, strings.Join(args, " "))
	}
	return func(d time.Duration) {
		fmt.Fprintf(l.out, "  done in %s\n", d)
	}
}

// Debug writes a message with key=value pairs. Only complete pairs are
// printed. A no-op unless verbose mode is enabled.
func (l *Logger) Debug(msg string, keyvals ...string) {
	if !l.IsVerbose() {
		return
	}
	var b strings.Builder
	b.WriteString(msg)
	for i := 0; i+1 < len(keyvals); i += 2 {
		b.WriteByte(' ')
		b.WriteString(keyvals[i])
		b.WriteByte('=')
		b.WriteString(keyvals[i+1])
	}
	fmt.Fprintln(l.out, b.String())
}

// IsVerbose reports whether verbose output is enabled.
func (l *Logger) IsVerbose() bool {
	return l.verbose && !l.quiet
}

// Writer returns the underlying writer.
func (l *Logger) Writer() io.Writer {
	return l.out
}
