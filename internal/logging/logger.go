// Package logging provides the reporter object the walker writes through:
// leveled, optionally colored output gated by a verbosity level, with an
// optional file sink. No process-wide logging state is used.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ealtintas/turkish-filename-cleaner/internal/config"
)

// ANSI colors (empty when disabled)
var (
	Red    = ""
	Green  = ""
	Yellow = ""
	Blue   = ""
	Cyan   = ""
	NC     = ""
)

// Logger provides leveled, optionally colored logging with an optional file
// sink. Info, Success, and Warn print at verbosity >=1, Debug at >=2, and
// Error always. It is configured once at startup and passed to the walker.
type Logger struct {
	mu        sync.Mutex
	verbosity int
	color     bool
	file      *os.File
	filePath  string
}

// NewLogger initializes colors from cfg, records the verbosity level, and
// optionally opens cfg.LogFile. Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	l := &Logger{verbosity: cfg.Verbosity}
	enable := false
	switch cfg.ColorMode {
	case config.ColorAlways:
		enable = true
	case config.ColorNever:
		enable = false
	case config.ColorAuto:
		enable = isTerminal(os.Stdout) && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
	if enable {
		Red = "\033[1;91m"
		Green = "\033[1;92m"
		Yellow = "\033[1;93m"
		Blue = "\033[1;94m"
		Cyan = "\033[1;96m"
		NC = "\033[0m"
	} else {
		Red, Green, Yellow, Blue, Cyan, NC = "", "", "", "", "", ""
	}
	l.color = enable

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
		l.filePath = cfg.LogFile
	}
	return l, nil
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Verbosity returns the configured verbosity level.
func (l *Logger) Verbosity() int { return l.verbosity }

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// line writes one log line when the configured verbosity reaches min.
// Errors (min 0) go to stderr; everything else to stdout. The file sink
// always receives the plain (uncolored) line.
func (l *Logger) line(level, color, text string, min int) {
	if l.verbosity < min {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	plain := ts + " [" + level + "] " + text + "\n"
	out := os.Stdout
	if level == "ERROR" {
		out = os.Stderr
	}
	if color != "" {
		_, _ = io.WriteString(out, ts+" "+color+"["+level+"]"+NC+" "+text+"\n")
	} else {
		_, _ = io.WriteString(out, plain)
	}
	if l.file != nil {
		_, _ = io.WriteString(l.file, plain)
	}
}

// Info logs at INFO level (blue); shown at verbosity >=1.
func (l *Logger) Info(format string, args ...interface{}) {
	l.line("INFO", Blue, fmt.Sprintf(format, args...), 1)
}

// Success logs at SUCCESS level (green); shown at verbosity >=1.
func (l *Logger) Success(format string, args ...interface{}) {
	l.line("SUCCESS", Green, fmt.Sprintf(format, args...), 1)
}

// Warn logs at WARN level (yellow); shown at verbosity >=1.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", Yellow, fmt.Sprintf(format, args...), 1)
}

// Error logs at ERROR level (red) to stderr, regardless of verbosity.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", Red, fmt.Sprintf(format, args...), 0)
}

// Debug logs at DEBUG level (cyan); shown at verbosity >=2.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.line("DEBUG", Cyan, fmt.Sprintf(format, args...), 2)
}
