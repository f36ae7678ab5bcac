package meeting

import (
	"strings"
	"time"

	"tmtidy/internal/faults"
)

// Record holds the validated identity and timing facts of one meeting,
// derived once from its spreadsheet and immutable afterwards.
type Record struct {
	// Theme is the meeting topic, used verbatim (after filename
	// sanitization) in canonical output names.
	Theme string
	// Number is the meeting identifier embedded literally in video
	// filenames.
	Number string

	// EarliestJoin is the first participant's join time, or the scheduled
	// start in the scheduled variant. It anchors video patterns and the
	// canonical date.
	EarliestJoin time.Time
	// EarliestLeave and LatestLeave anchor transcription and summary
	// patterns. Those artifacts are stamped by whichever participant's
	// leave closed them out, so both ends of the leave column are anchors.
	// In the scheduled variant both equal scheduled start plus duration.
	EarliestLeave time.Time
	LatestLeave   time.Time

	// Scheduled reports that timing came from the scheduled-start/duration
	// layout rather than the observed attendance table.
	Scheduled bool

	// SourceDir contains the spreadsheet; artifact files are its siblings.
	SourceDir string
	// SourcePath is the spreadsheet itself.
	SourcePath string

	baseName string
}

// BaseName returns the canonical output stem `【YYYY-MM-DD】<theme>`, computed
// exactly once at extraction so every artifact of the meeting shares it.
func (r *Record) BaseName() string {
	return r.baseName
}

// Validate reports whether the record carries everything pattern generation
// and renaming depend on.
func (r *Record) Validate() error {
	const stage = "validating record"
	if r == nil {
		return faults.Wrap(faults.ErrInvalidRecord, stage, "", "record is nil", nil)
	}
	if strings.TrimSpace(r.Theme) == "" {
		return faults.Wrap(faults.ErrInvalidRecord, stage, "", "theme is empty", nil)
	}
	if strings.TrimSpace(r.Number) == "" {
		return faults.Wrap(faults.ErrInvalidRecord, stage, "", "meeting number is empty", nil)
	}
	if r.EarliestJoin.IsZero() || r.EarliestLeave.IsZero() || r.LatestLeave.IsZero() {
		return faults.Wrap(faults.ErrInvalidRecord, stage, "", "timing anchors are unset", nil)
	}
	if strings.TrimSpace(r.SourceDir) == "" || strings.TrimSpace(r.SourcePath) == "" {
		return faults.Wrap(faults.ErrInvalidRecord, stage, "", "source paths are unset", nil)
	}
	if r.baseName == "" {
		return faults.Wrap(faults.ErrInvalidRecord, stage, "", "canonical base name is unset", nil)
	}
	return nil
}
