// Package debug provides an opt-in file logger using Go's standard logging.
// Logging is off unless PRISM_DEBUG is set, so normal runs never touch the
// filesystem.
package debug

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"prism/config"
)

var logger *log.Logger

// Init opens the debug log when PRISM_DEBUG is set. Safe to call once at
// startup; Log is a no-op until then.
func Init() {
	if os.Getenv("PRISM_DEBUG") == "" {
		return
	}

	if err := config.EnsurePrismDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to create .prism directory: %v\n", err)
	}

	prismDir, err := config.GetPrismDir()
	if err != nil {
		// Fall back to current directory if we can't get the .prism dir
		prismDir = "."
	}

	logFile, err := os.OpenFile(filepath.Join(prismDir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Fall back to stderr if file creation fails
		logFile = os.Stderr
	}

	logger = log.New(logFile, "[DEBUG] ", log.LstdFlags|log.Lshortfile)
	logger.Println("=== Debug session started ===")
}

// Log writes a formatted message to the debug log if logging is enabled
func Log(format string, args ...interface{}) {
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}
