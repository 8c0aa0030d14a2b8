// Package config holds runtime configuration: defaults, CLI flag parsing,
// and validation. Transform toggles mirror the pipeline steps in
// internal/transform; the pipeline order itself is fixed there, not here.
package config

import (
	"errors"
	"strings"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it; after startup it is never mutated again.
type Config struct {
	// Target (set from the positional arg).
	TargetDir string

	// Transform toggles. Asciify is the only one enabled by default;
	// it is cleared by --no-asciify.
	Asciify        bool
	CollapseSpaces bool
	Underscore     bool
	StripNonASCII  bool
	SafeCharsOnly  bool
	ReplaceUnsafe  bool // Only meaningful with SafeCharsOnly.
	Lowercase      bool
	CamelCase      bool

	// Walk behavior.
	DryRun      bool
	ProcessDirs bool
	Extensions  []string // Normalized allow-list; empty means all files.

	// Display and logging.
	Verbosity int       // Default: 1. 0 = errors only, >=2 = skip reporting.
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
}

// DefaultConfig returns a Config matching the tool's documented defaults:
// only Turkish transliteration enabled, verbosity 1, live (non-dry) run.
func DefaultConfig() Config {
	return Config{
		Asciify:   true,
		Verbosity: 1,
		ColorMode: ColorAuto,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that a target directory was given and canonicalizes the
// extension allow-list. Whether the path actually exists is checked later,
// during pre-flight.
func (c *Config) Validate() error {
	if c.TargetDir == "" {
		return errors.New("need exactly one target directory")
	}
	c.Extensions = normalizeExtensions(c.Extensions)
	return nil
}

// normalizeExtensions lowercases each entry and ensures a leading dot, so
// "TXT" and ".txt" both mean the ".txt" extension. Empty entries are dropped.
func normalizeExtensions(exts []string) []string {
	if len(exts) == 0 {
		return nil
	}
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// ShouldProcessFile reports whether a file name passes the extension
// allow-list. An empty list means no filtering. Matching is a
// case-insensitive suffix check, so "notes.TXT" matches ".txt".
func (c *Config) ShouldProcessFile(name string) bool {
	if len(c.Extensions) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, ext := range c.Extensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
