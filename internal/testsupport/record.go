package testsupport

import (
	"testing"

	"tmtidy/internal/meeting"
)

// ExtractRecord builds a meeting record through the real extractor from a
// minimal attendance layout. The first participant contributes the join and
// earliest-leave anchors, the second the latest-leave anchor.
func ExtractRecord(t testing.TB, path, theme, number, join, earliestLeave, latestLeave string) *meeting.Record {
	t.Helper()

	rows := [][]string{
		{"会议主题", theme},
		{"会议号", number},
		nil, nil, nil, nil, nil, nil,
		{"昵称", "首次入会时间", "最后退会时间"},
		{"p1", join, earliestLeave},
		{"p2", join, latestLeave},
	}
	rec, err := meeting.Extract(path, rows)
	if err != nil {
		t.Fatalf("extract record: %v", err)
	}
	return rec
}
