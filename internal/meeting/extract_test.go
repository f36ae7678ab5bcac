package meeting

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"tmtidy/internal/faults"
)

func rowsWithAttendance(participants [][3]string) [][]string {
	rows := make([][]string, 0, 10+len(participants))
	rows = append(rows,
		[]string{"会议主题", "Q3 Planning"},
		[]string{"会议号", "713309188"},
		nil, nil, nil, nil, nil, nil,
		[]string{"昵称", "首次入会时间", "最后退会时间"},
	)
	for _, p := range participants {
		rows = append(rows, []string{p[0], p[1], p[2]})
	}
	return rows
}

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.ParseInLocation("2006-01-02 15:04:05", value, time.Local)
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestExtractObservedTiming(t *testing.T) {
	rows := rowsWithAttendance([][3]string{
		{"alice", "2023-09-12 09:58:03", "2023-09-12 11:00:02"},
		{"bob", "2023-09-12 10:01:17", "2023-09-12 10:45:00"},
		{"carol", "2023-09-12 09:59:30", "2023-09-12 11:02:41"},
	})

	rec, err := Extract(filepath.Join("exports", "a-713309188-abc.xlsx"), rows)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := rec.EarliestJoin, mustTime(t, "2023-09-12 09:58:03"); !got.Equal(want) {
		t.Errorf("earliest join = %v, want %v", got, want)
	}
	if got, want := rec.EarliestLeave, mustTime(t, "2023-09-12 10:45:00"); !got.Equal(want) {
		t.Errorf("earliest leave = %v, want %v", got, want)
	}
	if got, want := rec.LatestLeave, mustTime(t, "2023-09-12 11:02:41"); !got.Equal(want) {
		t.Errorf("latest leave = %v, want %v", got, want)
	}
	if rec.Scheduled {
		t.Error("attendance layout must not be marked scheduled")
	}
	if rec.SourceDir != "exports" {
		t.Errorf("source dir = %q", rec.SourceDir)
	}
	if got, want := rec.BaseName(), "【2023-09-12】Q3 Planning"; got != want {
		t.Errorf("base name = %q, want %q", got, want)
	}
}

func TestExtractBaseNameIsStable(t *testing.T) {
	rows := rowsWithAttendance([][3]string{
		{"alice", "2023-09-12 09:58:03", "2023-09-12 11:00:02"},
	})
	first, err := Extract("a-713309188-x.xlsx", rows)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Extract("a-713309188-x.xlsx", rows)
	if err != nil {
		t.Fatal(err)
	}
	if first.BaseName() != second.BaseName() {
		t.Fatalf("base name not deterministic: %q vs %q", first.BaseName(), second.BaseName())
	}
}

func TestExtractScheduledFallback(t *testing.T) {
	rows := [][]string{
		{"会议主题", "架构评审"},
		{"会议号", "990011223"},
		nil,
		{"会议开始时间", "2023-09-12 14:00:00"},
		nil,
		{"会议时长", "1:30:00"},
	}

	rec, err := Extract("b-990011223-def.xlsx", rows)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.Scheduled {
		t.Error("expected scheduled variant")
	}
	if got, want := rec.EarliestJoin, mustTime(t, "2023-09-12 14:00:00"); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}
	end := mustTime(t, "2023-09-12 15:30:00")
	if !rec.EarliestLeave.Equal(end) || !rec.LatestLeave.Equal(end) {
		t.Errorf("end anchors = %v / %v, want %v", rec.EarliestLeave, rec.LatestLeave, end)
	}
	if got, want := rec.BaseName(), "【2023-09-12】架构评审"; got != want {
		t.Errorf("base name = %q, want %q", got, want)
	}
}

func TestExtractEmptyAttendanceTable(t *testing.T) {
	rows := rowsWithAttendance(nil)
	_, err := Extract("c.xlsx", rows)
	if !errors.Is(err, faults.ErrMalformedSchedule) {
		t.Fatalf("empty table must be malformed schedule, got %v", err)
	}
}

func TestExtractUnparsableTimestamp(t *testing.T) {
	rows := rowsWithAttendance([][3]string{
		{"alice", "tomorrow-ish", "2023-09-12 11:00:02"},
	})
	_, err := Extract("c.xlsx", rows)
	if !errors.Is(err, faults.ErrMalformedSchedule) {
		t.Fatalf("unparsable join time must be malformed schedule, got %v", err)
	}
}

func TestExtractNonNumericDuration(t *testing.T) {
	rows := [][]string{
		{"会议主题", "sync"},
		{"会议号", "1234567"},
		nil,
		{"会议开始时间", "2023-09-12 14:00:00"},
		nil,
		{"会议时长", "ninety minutes"},
	}
	_, err := Extract("d.xlsx", rows)
	if !errors.Is(err, faults.ErrMalformedSchedule) {
		t.Fatalf("non-numeric duration must be malformed schedule, got %v", err)
	}
}

func TestExtractMissingThemeOrNumber(t *testing.T) {
	rows := rowsWithAttendance([][3]string{
		{"alice", "2023-09-12 09:58:03", "2023-09-12 11:00:02"},
	})
	rows[0] = []string{"会议主题", ""}
	if _, err := Extract("e.xlsx", rows); !errors.Is(err, faults.ErrMalformedSchedule) {
		t.Fatalf("missing theme: got %v", err)
	}

	rows[0] = []string{"会议主题", "sync"}
	rows[1] = []string{"会议号"}
	if _, err := Extract("e.xlsx", rows); !errors.Is(err, faults.ErrMalformedSchedule) {
		t.Fatalf("missing number: got %v", err)
	}
}

func TestExtractJoinAfterLeaveRejected(t *testing.T) {
	rows := rowsWithAttendance([][3]string{
		{"alice", "2023-09-12 12:00:00", "2023-09-12 11:00:00"},
	})
	_, err := Extract("f.xlsx", rows)
	if !errors.Is(err, faults.ErrMalformedSchedule) {
		t.Fatalf("inverted timing must be malformed schedule, got %v", err)
	}
}

func TestExtractSanitizesThemeInBaseName(t *testing.T) {
	rows := rowsWithAttendance([][3]string{
		{"alice", "2023-09-12 09:58:03", "2023-09-12 11:00:02"},
	})
	rows[0] = []string{"会议主题", "ops/oncall: weekly"}
	rec, err := Extract("g.xlsx", rows)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := rec.BaseName(), "【2023-09-12】ops-oncall- weekly"; got != want {
		t.Fatalf("base name = %q, want %q", got, want)
	}
	// Theme itself stays verbatim; only the filename stem is sanitized.
	if rec.Theme != "ops/oncall: weekly" {
		t.Fatalf("theme mutated: %q", rec.Theme)
	}
}

func TestValidate(t *testing.T) {
	var nilRec *Record
	if err := nilRec.Validate(); !errors.Is(err, faults.ErrInvalidRecord) {
		t.Fatalf("nil record: got %v", err)
	}
	if err := (&Record{}).Validate(); !errors.Is(err, faults.ErrInvalidRecord) {
		t.Fatalf("zero record: got %v", err)
	}
}
