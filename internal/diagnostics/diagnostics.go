// Package diagnostics is a small leveled-logging facade wrapping the
// standard library's log package, adapted from the teacher repo's direct
// use of log.SetPrefix/log.Fatalf into something a CLI's --verbose flag
// can toggle without every caller checking a bool itself.
package diagnostics

import (
	"io"
	"log"
	"os"
)

// Logger prints "level: message" lines to an underlying *log.Logger,
// suppressing Debug output unless Verbose is set.
type Logger struct {
	out     *log.Logger
	Verbose bool
}

// New builds a Logger writing to w with no timestamp prefix, matching the
// teacher's log.SetFlags(0) convention.
func New(w io.Writer) *Logger {
	return &Logger{out: log.New(w, "", 0)}
}

// Default is a Logger over os.Stderr, used where callers do not need to
// inject a custom writer (matching the teacher's direct log.* calls).
var Default = New(os.Stderr)

// Debugf logs a debug-level message only when Verbose is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.Verbose {
		l.out.Printf("debug: "+format, args...)
	}
}

// Infof logs an info-level message unconditionally.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.out.Printf("info: "+format, args...)
}

// Errorf logs an error-level message unconditionally.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.out.Printf("error: "+format, args...)
}
