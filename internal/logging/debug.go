package logging

import (
	"fmt"
	"os"
)

// DebugEnabled returns true if debug mode is enabled via WT_DEBUG environment variable
func DebugEnabled() bool {
	return os.Getenv("WT_DEBUG") != ""
}

// Debugf prints a formatted debug message only if debug mode is enabled
func Debugf(format string, args ...interface{}) {
	if DebugEnabled() {
		fmt.Printf(format, args...)
	}
}

// Debugln prints a debug message followed by a newline only if debug mode is enabled
func Debugln(args ...interface{}) {
	if DebugEnabled() {
		fmt.Println(args...)
	}
}

// Errorf prints a formatted message to stderr regardless of debug mode,
// terminating the line. Used for best-effort failures that must be visible
// but never propagated, such as notification dispatch errors.
func Errorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
