// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logger provides debug logging for the pubmed-fetcher CLI.
// Messages are printed to stderr only when debug mode is enabled with
// the --debug flag.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu     sync.RWMutex
	debug  bool
	output io.Writer = os.Stderr
)

// SetDebug enables or disables debug logging.
func SetDebug(v bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = v
}

// IsDebug reports whether debug logging is enabled.
func IsDebug() bool {
	mu.RLock()
	defer mu.RUnlock()
	return debug
}

// SetOutput sets the writer for log messages. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message when debug logging is enabled.
func Debug(format string, args ...any) { logf("[DEBUG] ", format, args...) }

// Info prints an informational message when debug logging is enabled.
func Info(format string, args ...any) { logf("[INFO] ", format, args...) }

// Section prints a stage header when debug logging is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if debug {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}
