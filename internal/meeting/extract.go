package meeting

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"tmtidy/internal/faults"
	"tmtidy/internal/textutil"
)

// Fixed cells of the export layout. Rows and columns are zero-based.
const (
	themeRow  = 0
	numberRow = 1
	labelCol  = 1

	scheduledStartRow = 3
	durationRow       = 5
)

// Column headers of the attendance table, matched literally.
const (
	joinHeader  = "首次入会时间"
	leaveHeader = "最后退会时间"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
}

// Extract interprets decoded workbook rows as a meeting export and builds a
// validated Record. The attendance-table layout is preferred; when no table
// is present the scheduled-start/duration cells are used instead. All timing
// problems surface as MalformedSchedule, fatal for this meeting only.
func Extract(path string, rows [][]string) (*Record, error) {
	const stage = "extracting"

	theme := strings.TrimSpace(cell(rows, themeRow, labelCol))
	if theme == "" {
		return nil, faults.Wrap(faults.ErrMalformedSchedule, stage, "theme", "cell is empty", nil)
	}
	number := strings.TrimSpace(cell(rows, numberRow, labelCol))
	if number == "" {
		return nil, faults.Wrap(faults.ErrMalformedSchedule, stage, "meeting number", "cell is empty", nil)
	}

	rec := &Record{
		Theme:      theme,
		Number:     number,
		SourceDir:  filepath.Dir(path),
		SourcePath: path,
	}

	if headerRow, joinCol, leaveCol, ok := findAttendanceHeader(rows); ok {
		if err := extractObserved(rec, rows, headerRow, joinCol, leaveCol); err != nil {
			return nil, err
		}
	} else {
		if err := extractScheduled(rec, rows); err != nil {
			return nil, err
		}
	}

	if rec.EarliestJoin.After(rec.LatestLeave) {
		return nil, faults.Wrap(faults.ErrMalformedSchedule, stage, "timing",
			fmt.Sprintf("first join %s is after last leave %s",
				rec.EarliestJoin.Format(timeLayouts[0]), rec.LatestLeave.Format(timeLayouts[0])), nil)
	}

	safeTheme := textutil.SanitizeTheme(theme)
	if safeTheme == "" {
		return nil, faults.Wrap(faults.ErrMalformedSchedule, stage, "theme", "no usable characters for a filename", nil)
	}
	rec.baseName = fmt.Sprintf("【%s】%s", rec.EarliestJoin.Format("2006-01-02"), safeTheme)

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// extractObserved derives timing from the attendance table: minimum of the
// join column, and both extremes of the leave column.
func extractObserved(rec *Record, rows [][]string, headerRow, joinCol, leaveCol int) error {
	const stage = "extracting"

	seen := 0
	for i := headerRow + 1; i < len(rows); i++ {
		joinRaw := strings.TrimSpace(cell(rows, i, joinCol))
		leaveRaw := strings.TrimSpace(cell(rows, i, leaveCol))
		if joinRaw == "" && leaveRaw == "" {
			continue
		}

		join, err := parseTime(joinRaw)
		if err != nil {
			return faults.Wrap(faults.ErrMalformedSchedule, stage, "join time",
				fmt.Sprintf("row %d: %q", i+1, joinRaw), err)
		}
		leave, err := parseTime(leaveRaw)
		if err != nil {
			return faults.Wrap(faults.ErrMalformedSchedule, stage, "leave time",
				fmt.Sprintf("row %d: %q", i+1, leaveRaw), err)
		}

		if seen == 0 {
			rec.EarliestJoin = join
			rec.EarliestLeave = leave
			rec.LatestLeave = leave
		} else {
			if join.Before(rec.EarliestJoin) {
				rec.EarliestJoin = join
			}
			if leave.Before(rec.EarliestLeave) {
				rec.EarliestLeave = leave
			}
			if leave.After(rec.LatestLeave) {
				rec.LatestLeave = leave
			}
		}
		seen++
	}
	if seen == 0 {
		return faults.Wrap(faults.ErrMalformedSchedule, stage, "attendance table", "no participant rows", nil)
	}
	return nil
}

// extractScheduled derives timing from the scheduled start and duration
// cells. End time is start plus duration and anchors transcription/summary.
func extractScheduled(rec *Record, rows [][]string) error {
	const stage = "extracting"

	startRaw := strings.TrimSpace(cell(rows, scheduledStartRow, labelCol))
	start, err := parseTime(startRaw)
	if err != nil {
		return faults.Wrap(faults.ErrMalformedSchedule, stage, "scheduled start",
			fmt.Sprintf("%q", startRaw), err)
	}
	durRaw := strings.TrimSpace(cell(rows, durationRow, labelCol))
	dur, err := parseClockDuration(durRaw)
	if err != nil {
		return faults.Wrap(faults.ErrMalformedSchedule, stage, "duration",
			fmt.Sprintf("%q", durRaw), err)
	}

	end := start.Add(dur)
	rec.Scheduled = true
	rec.EarliestJoin = start
	rec.EarliestLeave = end
	rec.LatestLeave = end
	return nil
}

// findAttendanceHeader locates the row carrying both timing column headers.
func findAttendanceHeader(rows [][]string) (headerRow, joinCol, leaveCol int, ok bool) {
	for i, row := range rows {
		joinCol, leaveCol = -1, -1
		for j, value := range row {
			switch strings.TrimSpace(value) {
			case joinHeader:
				joinCol = j
			case leaveHeader:
				leaveCol = j
			}
		}
		if joinCol >= 0 && leaveCol >= 0 {
			return i, joinCol, leaveCol, true
		}
	}
	return 0, 0, 0, false
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timeLayouts {
		if ts, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable timestamp %q", value)
}

// parseClockDuration parses "H:MM:SS" or "H:MM" duration strings.
func parseClockDuration(value string) (time.Duration, error) {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("unparsable duration %q", value)
	}
	total := time.Duration(0)
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("unparsable duration %q", value)
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}

// cell returns the trimmed value at (row, col), or "" when out of range. The
// decoder drops trailing empty cells, so absence equals emptiness here.
func cell(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}
