package faults

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingFile       = errors.New("missing file")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrMalformedSchedule = errors.New("malformed schedule")
	ErrInvalidRecord     = errors.New("invalid record")
	ErrNoMatch           = errors.New("no match")
	ErrAmbiguousMatch    = errors.New("ambiguous match")
	ErrTargetExists      = errors.New("target exists")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrInvalidRecord
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Fatal reports whether an error should abort the whole batch rather than
// just the meeting it occurred on. Only a missing batch root qualifies;
// everything else is isolated per meeting.
func Fatal(err error) bool {
	return errors.Is(err, ErrDirectoryNotFound)
}

// Kind returns a short classification label for summaries and logs.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMissingFile):
		return "missing_file"
	case errors.Is(err, ErrDirectoryNotFound):
		return "directory_not_found"
	case errors.Is(err, ErrMalformedSchedule):
		return "malformed_schedule"
	case errors.Is(err, ErrInvalidRecord):
		return "invalid_record"
	case errors.Is(err, ErrNoMatch):
		return "no_match"
	case errors.Is(err, ErrAmbiguousMatch):
		return "ambiguous_match"
	case errors.Is(err, ErrTargetExists):
		return "target_exists"
	default:
		return "error"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "failure"
	}
	return strings.Join(parts, ": ")
}
