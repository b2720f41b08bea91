package server

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

const logFileName = "app.log"

// setupLogging points the std logger at <logDir>/app.log, mirrored to console
// unless the app runs under air. The returned func restores console output and
// closes the file.
func setupLogging(logDir string, console io.Writer) (func() error, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log dir %s: %w", logDir, err)
	}

	path := filepath.Join(logDir, logFileName)
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	var out io.Writer = logFile
	// air already tails the log file
	if os.Getenv("AIR_RESTART_COUNT") == "" {
		out = io.MultiWriter(console, logFile)
	}
	log.SetOutput(out)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Printf("Logging to %s", path)

	return func() error {
		log.SetOutput(console)
		return logFile.Close()
	}, nil
}
