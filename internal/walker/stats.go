package walker

// EntryKind labels a rename target as a file or a directory.
type EntryKind string

const (
	KindFile EntryKind = "FILE"
	KindDir  EntryKind = "DIR"
)

// RenameOp is one intended rename: the original full path and the new full
// path, sharing the same (unchanged) parent directory.
type RenameOp struct {
	Kind    EntryKind
	OldPath string
	NewPath string
}

// RenameResult is the outcome of applying (or simulating) one RenameOp.
// Err is nil on success or in dry-run mode.
type RenameResult struct {
	Op  RenameOp
	Err error
}

// RunStats aggregates counters across a walk, plus the ordered list of
// attempted operations. Failures are contained here rather than aborting
// the walk.
type RunStats struct {
	Renamed   int // Renames applied (or reported, in dry-run mode).
	Unchanged int // Entries whose name the pipeline left as-is.
	Filtered  int // Files skipped by the extension allow-list.
	Failed    int // Per-entry failures (rename errors, unreadable dirs).

	// Operations holds every attempted rename in emission order,
	// including failed ones.
	Operations []RenameResult
}

// Failures returns the subset of Operations that errored.
func (s *RunStats) Failures() []RenameResult {
	var out []RenameResult
	for _, r := range s.Operations {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
