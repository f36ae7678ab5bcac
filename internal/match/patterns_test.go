package match

import (
	"errors"
	"slices"
	"testing"

	"tmtidy/internal/faults"
	"tmtidy/internal/testsupport"
)

func TestPatternsVideoWindow(t *testing.T) {
	rec := testsupport.ExtractRecord(t, "a-713309188-x.xlsx",
		"Q3 Planning", "713309188",
		"2023-09-12 09:58:03", "2023-09-12 11:00:00", "2023-09-12 11:00:00")

	set, err := Patterns(rec, Window{Min: -5, Max: 5})
	if err != nil {
		t.Fatal(err)
	}

	video := set[KindVideo]
	if len(video) != 11 {
		t.Fatalf("expected 11 video patterns, got %d", len(video))
	}
	if video[0] != "TM-20230912095758-713309188-*.mp4" {
		t.Errorf("first pattern = %q", video[0])
	}
	if video[5] != "TM-20230912095803-713309188-*.mp4" {
		t.Errorf("zero-offset pattern = %q", video[5])
	}
	if video[10] != "TM-20230912095808-713309188-*.mp4" {
		t.Errorf("last pattern = %q", video[10])
	}
}

func TestPatternsLeaveAnchors(t *testing.T) {
	rec := testsupport.ExtractRecord(t, "a-713309188-x.xlsx",
		"Q3 Planning", "713309188",
		"2023-09-12 09:58:03", "2023-09-12 10:45:00", "2023-09-12 11:00:00")

	set, err := Patterns(rec, Window{Min: 0, Max: 0})
	if err != nil {
		t.Fatal(err)
	}

	wantTranscription := []string{
		"TencentMeeting_(20230912104500)_Transcription*.txt",
		"TencentMeeting_(20230912110000)_Transcription*.txt",
	}
	if !slices.Equal(set[KindTranscription], wantTranscription) {
		t.Errorf("transcription patterns = %v, want %v", set[KindTranscription], wantTranscription)
	}

	wantSummary := []string{
		"TencentMeeting_20230912104500_Summary*.txt",
		"TencentMeeting_20230912110000_Summary*.txt",
	}
	if !slices.Equal(set[KindSummary], wantSummary) {
		t.Errorf("summary patterns = %v, want %v", set[KindSummary], wantSummary)
	}
}

func TestPatternsSingleLeaveAnchorDeduplicated(t *testing.T) {
	rec := testsupport.ExtractRecord(t, "a-713309188-x.xlsx",
		"sync", "713309188",
		"2023-09-12 09:58:03", "2023-09-12 11:00:00", "2023-09-12 11:00:00")

	set, err := Patterns(rec, Window{Min: -2, Max: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(set[KindTranscription]) != 5 {
		t.Fatalf("identical leave anchors must not double the patterns: got %d", len(set[KindTranscription]))
	}
}

func TestPatternsWindowMonotonicity(t *testing.T) {
	rec := testsupport.ExtractRecord(t, "a-713309188-x.xlsx",
		"sync", "713309188",
		"2023-09-12 09:58:03", "2023-09-12 10:45:00", "2023-09-12 11:00:00")

	narrow, err := Patterns(rec, Window{Min: -5, Max: 5})
	if err != nil {
		t.Fatal(err)
	}
	wide, err := Patterns(rec, Window{Min: -90, Max: 89})
	if err != nil {
		t.Fatal(err)
	}

	for _, kind := range Kinds() {
		for _, pattern := range narrow[kind] {
			if !slices.Contains(wide[kind], pattern) {
				t.Errorf("%s pattern %q missing from wider window", kind, pattern)
			}
		}
	}
}

func TestPatternsInvalidWindow(t *testing.T) {
	rec := testsupport.ExtractRecord(t, "a-713309188-x.xlsx",
		"sync", "713309188",
		"2023-09-12 09:58:03", "2023-09-12 10:45:00", "2023-09-12 11:00:00")

	_, err := Patterns(rec, Window{Min: 5, Max: -5})
	if !errors.Is(err, faults.ErrInvalidRecord) {
		t.Fatalf("inverted window: got %v", err)
	}
}

func TestPatternsNilRecord(t *testing.T) {
	_, err := Patterns(nil, Window{Min: -5, Max: 5})
	if !errors.Is(err, faults.ErrInvalidRecord) {
		t.Fatalf("nil record: got %v", err)
	}
}

func TestPatternsMidnightRollover(t *testing.T) {
	rec := testsupport.ExtractRecord(t, "a-555-x.xlsx",
		"late sync", "555001",
		"2023-09-12 23:59:58", "2023-09-13 00:00:01", "2023-09-13 00:00:01")

	set, err := Patterns(rec, Window{Min: 0, Max: 5})
	if err != nil {
		t.Fatal(err)
	}
	video := set[KindVideo]
	if video[0] != "TM-20230912235958-555001-*.mp4" {
		t.Errorf("pre-midnight pattern = %q", video[0])
	}
	if video[3] != "TM-20230913000001-555001-*.mp4" {
		t.Errorf("post-midnight pattern = %q", video[3])
	}
}
