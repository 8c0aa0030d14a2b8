// Package walker traverses a directory tree bottom-up and applies the
// transform pipeline to each entry name, performing or simulating the
// renames. Traversal is strictly sequential; a failed rename is recorded
// and the walk continues with the next entry.
package walker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ealtintas/turkish-filename-cleaner/internal/config"
	"github.com/ealtintas/turkish-filename-cleaner/internal/logging"
	"github.com/ealtintas/turkish-filename-cleaner/internal/transform"
)

type walker struct {
	cfg   *config.Config
	log   *logging.Logger
	stats RunStats
}

// Run walks cfg.TargetDir and applies renames according to cfg, reporting
// through log. The caller is expected to have verified that TargetDir
// exists and is a directory.
func Run(cfg *config.Config, log *logging.Logger) RunStats {
	w := &walker{cfg: cfg, log: log}
	logRunHeader(cfg, log)
	w.walk(cfg.TargetDir)
	logSummary(cfg, log, &w.stats)
	return w.stats
}

// walk visits dir bottom-up: descend into subdirectories first, then
// process this directory's files, then (when directory processing is
// enabled) rename the subdirectories themselves. Children are therefore
// always handled before their container, so no emitted path ever
// references an already-renamed ancestor.
func (w *walker) walk(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		w.log.Error("Cannot read directory %s: %v", dir, err)
		w.stats.Failed++
		return
	}

	var subdirs, files []string
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, e.Name())
		} else {
			files = append(files, e.Name())
		}
	}

	for _, name := range subdirs {
		w.walk(filepath.Join(dir, name))
	}
	for _, name := range files {
		w.processEntry(dir, name, KindFile)
	}
	if w.cfg.ProcessDirs {
		for _, name := range subdirs {
			w.processEntry(dir, name, KindDir)
		}
	}
}

// processEntry transforms one name and, when it changed, applies the
// rename. Extension filtering applies to files only.
func (w *walker) processEntry(dir, name string, kind EntryKind) {
	if kind == KindFile && !w.cfg.ShouldProcessFile(name) {
		w.stats.Filtered++
		return
	}

	newName := transform.ProcessName(name, w.cfg)
	oldPath := filepath.Join(dir, name)

	if newName == name {
		w.stats.Unchanged++
		if w.cfg.DryRun {
			w.log.Debug("[SKIP] %s %s (no changes)", kind, oldPath)
		}
		return
	}

	res := w.apply(RenameOp{Kind: kind, OldPath: oldPath, NewPath: filepath.Join(dir, newName)})
	w.stats.Operations = append(w.stats.Operations, res)
	if res.Err != nil {
		w.log.Error("Failed to rename %s to %s: %v", res.Op.OldPath, res.Op.NewPath, res.Err)
		w.stats.Failed++
		return
	}
	w.stats.Renamed++
}

// apply reports the operation and performs it unless dry-run. The
// destination is probed first so an existing entry fails this one
// operation instead of being silently replaced by os.Rename.
func (w *walker) apply(op RenameOp) RenameResult {
	marker := "[RENAME]"
	if w.cfg.DryRun {
		marker = "[DRY-RUN]"
	}
	w.log.Info("%s %s %s -> %s", marker, op.Kind, op.OldPath, op.NewPath)

	if w.cfg.DryRun {
		return RenameResult{Op: op}
	}
	if _, err := os.Lstat(op.NewPath); err == nil {
		return RenameResult{Op: op, Err: fmt.Errorf("destination exists: %w", fs.ErrExist)}
	}
	if err := os.Rename(op.OldPath, op.NewPath); err != nil {
		return RenameResult{Op: op, Err: err}
	}
	return RenameResult{Op: op}
}

// --- Logging helpers ---

func logRunHeader(cfg *config.Config, log *logging.Logger) {
	steps := transform.EnabledSteps(cfg)
	if len(steps) == 0 {
		log.Warn("No transforms enabled; all names pass through unchanged")
	} else {
		log.Info("Transforms: %s", strings.Join(steps, ", "))
	}
	if len(cfg.Extensions) > 0 {
		log.Info("Extensions: %s", strings.Join(cfg.Extensions, ", "))
	}
	if cfg.ProcessDirs {
		log.Info("Directories: renamed too")
	}
	log.Info("")
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("")
	if cfg.DryRun {
		log.Info("Done (dry run): %d would be renamed, %d unchanged, %d failed",
			stats.Renamed, stats.Unchanged, stats.Failed)
		return
	}
	log.Info("Done: %d renamed, %d unchanged, %d failed",
		stats.Renamed, stats.Unchanged, stats.Failed)
}
