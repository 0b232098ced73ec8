// ABOUTME: Simple debug logger that writes to a log file in the config dir
// ABOUTME: Avoids interfering with terminal display while capturing errors

package debuglog

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	logFile *os.File
	enabled bool
)

// Init opens the debug log under configDir. An empty configDir disables
// logging entirely; every log call then becomes a no-op.
func Init(configDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		enabled = false
		return nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		enabled = false
		return err
	}

	f, err := os.OpenFile(filepath.Join(configDir, "debug.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		enabled = false
		return err
	}

	logFile = f
	enabled = true
	return nil
}

// Close closes the log file and disables logging
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	enabled = false
}

func write(level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logFile == nil {
		return
	}

	ts := time.Now().Format("2006-01-02 15:04:05")
	fmt.Fprintf(logFile, "[%s] %s: %s\n", ts, level, fmt.Sprintf(format, args...))
}

// Debugf logs low-importance diagnostics, e.g. swallowed credential errors
func Debugf(format string, args ...any) {
	write("DEBUG", format, args...)
}

// Warnf logs a warning message
func Warnf(format string, args ...any) {
	write("WARN", format, args...)
}

// Error logs an error with context; a nil error is ignored
func Error(context string, err error) {
	if err == nil {
		return
	}
	write("ERROR", "[%s] %v", context, err)
}
