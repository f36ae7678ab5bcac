package renamer

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"tmtidy/internal/faults"
	"tmtidy/internal/fileutil"
	"tmtidy/internal/logging"
	"tmtidy/internal/match"
	"tmtidy/internal/meeting"
	"tmtidy/internal/sheet"
)

// SpreadsheetPattern matches pending meeting exports directly under the batch
// root. Renamed outputs no longer match it, which is what makes re-running a
// batch idempotent.
const SpreadsheetPattern = "*-[0-9]*-[0-9a-zA-Z]*.xlsx"

const lockFileName = ".tmtidy.lock"

// canonicalPrefix opens every renamed output's filename; the export pipeline
// never produces names starting with it.
const canonicalPrefix = "【"

const spreadsheetSuffix = ".xlsx"

var kindSuffixes = map[match.Kind]string{
	match.KindVideo:         ".mp4",
	match.KindTranscription: "_Transcription.txt",
	match.KindSummary:       "_Summary.txt",
}

// Policy decides whether a meeting's files may be renamed given partial match
// results across artifact kinds.
type Policy string

const (
	// PolicyStrict renames nothing unless every artifact kind resolved.
	PolicyStrict Policy = "strict"
	// PolicyLoose renames the resolved subset plus the spreadsheet.
	PolicyLoose Policy = "loose"
)

// ParsePolicy converts a configuration string into a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case PolicyStrict:
		return PolicyStrict, nil
	case PolicyLoose:
		return PolicyLoose, nil
	default:
		return "", fmt.Errorf("unknown admission policy %q", value)
	}
}

// Options controls one batch run.
type Options struct {
	Window match.Window
	Policy Policy
	// DryRun computes the full rename plan without moving anything.
	DryRun bool
}

// Renamer drives batch processing of a directory of meeting exports.
type Renamer struct {
	logger *slog.Logger
}

// New constructs a Renamer. A nil logger is replaced with a no-op logger.
func New(logger *slog.Logger) *Renamer {
	return &Renamer{logger: logging.WithComponent(logger, "renamer")}
}

// Run processes every meeting export under root. Per-meeting failures are
// recorded and skipped; only a missing root or a held lock aborts the run.
func (r *Renamer) Run(root string, opts Options) (*BatchResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, faults.Wrap(faults.ErrDirectoryNotFound, "batch", "open root", root, err)
		}
		return nil, faults.Wrap(faults.ErrDirectoryNotFound, "batch", "stat root", root, err)
	}
	if !info.IsDir() {
		return nil, faults.Wrap(faults.ErrDirectoryNotFound, "batch", "open root",
			fmt.Sprintf("%s is not a directory", root), nil)
	}

	if !opts.DryRun {
		lock := flock.New(filepath.Join(root, lockFileName))
		held, err := lock.TryLock()
		if err != nil {
			return nil, fmt.Errorf("acquire batch lock: %w", err)
		}
		if !held {
			return nil, fmt.Errorf("another run is already processing %s", root)
		}
		defer func() {
			_ = lock.Unlock()
			_ = os.Remove(lock.Path())
		}()
	}

	result := &BatchResult{RunID: uuid.NewString(), Root: root}
	logger := r.logger.With(logging.String("run_id", result.RunID))

	sheets, err := match.Dir(root, []string{SpreadsheetPattern})
	if err != nil {
		return nil, err
	}
	// Canonical outputs keep the .xlsx suffix and their dates satisfy the
	// glob, so already-renamed exports must be filtered out or a second run
	// would re-trigger on its own output.
	pending := sheets[:0]
	for _, s := range sheets {
		if strings.HasPrefix(filepath.Base(s), canonicalPrefix) {
			continue
		}
		pending = append(pending, s)
	}
	sheets = pending
	if len(sheets) == 0 {
		logger.Info("no meeting spreadsheets found", logging.String("root", root))
		return result, nil
	}

	logger.Info("processing batch",
		logging.String("root", root),
		logging.Int("spreadsheets", len(sheets)),
		logging.String("policy", string(opts.Policy)),
		logging.Bool("dry_run", opts.DryRun),
	)

	for _, spreadsheet := range sheets {
		outcome := r.processMeeting(logger, spreadsheet, opts)
		result.Outcomes = append(result.Outcomes, outcome)

		if outcome.Skipped() {
			logger.Warn("meeting skipped",
				logging.String("spreadsheet", spreadsheet),
				logging.String("reason", outcome.Reason()),
				logging.Error(outcome.Err),
			)
			continue
		}
		logger.Info("meeting renamed",
			logging.String("spreadsheet", spreadsheet),
			logging.String("base_name", outcome.BaseName),
			logging.Int("files", len(outcome.Ops)),
			logging.Bool("dry_run", outcome.Planned),
		)
	}

	logger.Info("batch completed",
		logging.Int("processed", result.Processed()),
		logging.Int("renamed", result.Renamed()),
		logging.Int("skipped", result.Skipped()),
	)
	return result, nil
}

// processMeeting runs extraction, matching, admission, and renaming for one
// spreadsheet. Every failure is captured in the outcome; nothing escapes to
// abort the batch.
func (r *Renamer) processMeeting(logger *slog.Logger, spreadsheet string, opts Options) Outcome {
	outcome := Outcome{Spreadsheet: spreadsheet, Planned: opts.DryRun}

	rows, err := sheet.Read(spreadsheet)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	rec, err := meeting.Extract(spreadsheet, rows)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Theme = rec.Theme
	outcome.BaseName = rec.BaseName()

	set, err := match.Patterns(rec, opts.Window)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	resolutions, err := match.Resolve(rec.SourceDir, set)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	ops, err := plan(logger, rec, resolutions, opts.Policy)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	// Refuse the whole meeting before moving anything if any target is
	// taken; renames within a meeting go together or not at all.
	for _, op := range ops {
		if _, err := os.Stat(op.Target); err == nil {
			outcome.Err = faults.Wrap(faults.ErrTargetExists, "renaming", "check target", op.Target, nil)
			return outcome
		} else if !errors.Is(err, os.ErrNotExist) {
			outcome.Err = fmt.Errorf("check target %s: %w", op.Target, err)
			return outcome
		}
	}

	if opts.DryRun {
		outcome.Ops = ops
		return outcome
	}

	for _, op := range ops {
		if err := fileutil.RenameNoReplace(op.Source, op.Target); err != nil {
			if errors.Is(err, os.ErrExist) {
				err = faults.Wrap(faults.ErrTargetExists, "renaming", "move", op.Target, err)
			}
			outcome.Err = err
			return outcome
		}
		outcome.Ops = append(outcome.Ops, op)
	}
	return outcome
}

// plan applies the admission policy and materializes the rename operations
// for one meeting. The spreadsheet itself always leads the plan.
func plan(logger *slog.Logger, rec *meeting.Record, resolutions map[match.Kind]match.Resolution, policy Policy) ([]RenameOp, error) {
	target := func(suffix string) string {
		return filepath.Join(rec.SourceDir, rec.BaseName()+suffix)
	}

	var rejections []error
	ops := []RenameOp{{Source: rec.SourcePath, Target: target(spreadsheetSuffix)}}
	for _, kind := range match.Kinds() {
		res := resolutions[kind]
		if reject := res.Reject(); reject != nil {
			rejections = append(rejections, reject)
			if len(res.Candidates) > 1 {
				logger.Warn("ambiguous artifact left untouched",
					logging.String("spreadsheet", rec.SourcePath),
					logging.String("kind", string(kind)),
					logging.Int("candidates", len(res.Candidates)),
				)
			}
			continue
		}
		ops = append(ops, RenameOp{Source: res.Path(), Target: target(kindSuffixes[kind])})
	}

	switch policy {
	case PolicyLoose:
		return ops, nil
	case PolicyStrict:
		if len(rejections) > 0 {
			return nil, errors.Join(rejections...)
		}
		return ops, nil
	default:
		return nil, faults.Wrap(faults.ErrInvalidRecord, "renaming", "policy",
			fmt.Sprintf("unknown admission policy %q", policy), nil)
	}
}
