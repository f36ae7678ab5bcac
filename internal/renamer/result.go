package renamer

import "tmtidy/internal/faults"

// RenameOp pairs an artifact's current path with its canonical target.
type RenameOp struct {
	Source string
	Target string
}

// Outcome records what happened to one meeting spreadsheet.
type Outcome struct {
	// Spreadsheet is the export that drove this meeting.
	Spreadsheet string
	// Theme and BaseName are set once extraction succeeded.
	Theme    string
	BaseName string
	// Ops are the renames that were applied (or, in a dry run, planned).
	Ops []RenameOp
	// Planned marks a dry run where Ops were computed but not applied.
	Planned bool
	// Err is the failure or rejection that stopped this meeting, nil on
	// success.
	Err error
}

// Skipped reports whether the meeting was left untouched.
func (o Outcome) Skipped() bool { return o.Err != nil }

// Reason returns the short classification label for a skipped meeting.
func (o Outcome) Reason() string { return faults.Kind(o.Err) }

// BatchResult aggregates one run over a batch root. It replaces any notion of
// process-global counters; everything a caller needs to report is here.
type BatchResult struct {
	// RunID uniquely identifies this invocation in logs.
	RunID string
	// Root is the directory that was processed.
	Root string
	// Outcomes holds one entry per discovered spreadsheet, in processing
	// order.
	Outcomes []Outcome
}

// Processed returns the number of spreadsheets examined.
func (b *BatchResult) Processed() int { return len(b.Outcomes) }

// Renamed returns the number of meetings whose files were moved (or planned,
// in a dry run).
func (b *BatchResult) Renamed() int {
	n := 0
	for _, o := range b.Outcomes {
		if !o.Skipped() {
			n++
		}
	}
	return n
}

// Skipped returns the number of meetings left untouched.
func (b *BatchResult) Skipped() int { return b.Processed() - b.Renamed() }

// Moves returns the total number of applied (or planned) rename operations.
func (b *BatchResult) Moves() int {
	n := 0
	for _, o := range b.Outcomes {
		if !o.Skipped() {
			n += len(o.Ops)
		}
	}
	return n
}
