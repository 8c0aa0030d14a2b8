// Command tfclean is the CLI entrypoint for the Turkish filename cleaner.
//
// It parses flags, validates configuration, checks the target directory,
// and runs the bottom-up rename walk.
package main

import (
	"fmt"
	"os"

	"github.com/ealtintas/turkish-filename-cleaner/internal/config"
	"github.com/ealtintas/turkish-filename-cleaner/internal/logging"
	"github.com/ealtintas/turkish-filename-cleaner/internal/walker"
)

// version is injected at build time via -ldflags. When built with plain
// "go build" it retains its default.
var version = "1.0.0-dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap — the logger doesn't exist yet, so errors go
	// directly to stderr via fmt. Once NewLogger succeeds, all output
	// goes through the logger for consistent formatting and log-file capture.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, version, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "tfclean: %v\n", err)
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "tfclean: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tfclean: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Pre-flight — the target must exist and be a directory.
	// Nothing has been touched yet, so this is a clean error exit.
	fi, err := os.Stat(cfg.TargetDir)
	if err != nil || !fi.IsDir() {
		log.Error("Provided path %s is not a directory or does not exist", cfg.TargetDir)
		return 1
	}

	log.Info("=== tfclean v%s ===", version)
	log.Info("Target: %s", cfg.TargetDir)
	if cfg.DryRun {
		log.Warn("DRY RUN — no files will be renamed")
	}

	// Phase 3: Walk. Per-entry rename failures are reported and counted
	// inside the walker; they do not affect the exit status.
	walker.Run(&cfg, log)
	return 0
}
