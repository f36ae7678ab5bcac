package match

import (
	"fmt"
	"time"

	"tmtidy/internal/faults"
	"tmtidy/internal/meeting"
)

// Kind identifies one artifact produced by the recording pipeline.
type Kind string

const (
	KindVideo         Kind = "video"
	KindTranscription Kind = "transcription"
	KindSummary       Kind = "summary"
)

// Kinds returns all artifact kinds in resolution order.
func Kinds() []Kind {
	return []Kind{KindVideo, KindTranscription, KindSummary}
}

// Window is an inclusive range of signed second offsets applied to anchor
// timestamps. It absorbs the skew between a meeting's logical timestamps and
// the wall-clock write times the recording service embeds in filenames.
type Window struct {
	Min int
	Max int
}

func (w Window) validate() error {
	if w.Min > w.Max {
		return faults.Wrap(faults.ErrInvalidRecord, "generating patterns", "window",
			fmt.Sprintf("min offset %d exceeds max offset %d", w.Min, w.Max), nil)
	}
	return nil
}

// Filename timestamps are second-resolution local time, no timezone.
const stampLayout = "20060102150405"

// PatternSet holds the candidate filename patterns for one meeting, keyed by
// artifact kind.
type PatternSet map[Kind][]string

// Patterns generates the candidate pattern set for a record. Video is
// anchored at the earliest join; transcription and summary at both leave
// extremes, one pattern per (anchor, offset) pair. Patterns for a narrower
// window are always a subset of those for a wider one.
func Patterns(rec *meeting.Record, w Window) (PatternSet, error) {
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	if err := w.validate(); err != nil {
		return nil, err
	}

	leaveAnchors := []time.Time{rec.EarliestLeave}
	if !rec.LatestLeave.Equal(rec.EarliestLeave) {
		leaveAnchors = append(leaveAnchors, rec.LatestLeave)
	}

	set := PatternSet{
		KindVideo: expand([]time.Time{rec.EarliestJoin}, w, func(stamp string) string {
			return fmt.Sprintf("TM-%s-%s-*.mp4", stamp, rec.Number)
		}),
		KindTranscription: expand(leaveAnchors, w, func(stamp string) string {
			return fmt.Sprintf("TencentMeeting_(%s)_Transcription*.txt", stamp)
		}),
		KindSummary: expand(leaveAnchors, w, func(stamp string) string {
			return fmt.Sprintf("TencentMeeting_%s_Summary*.txt", stamp)
		}),
	}
	return set, nil
}

func expand(anchors []time.Time, w Window, format func(stamp string) string) []string {
	patterns := make([]string, 0, len(anchors)*(w.Max-w.Min+1))
	for _, anchor := range anchors {
		for delta := w.Min; delta <= w.Max; delta++ {
			stamp := anchor.Add(time.Duration(delta) * time.Second).Format(stampLayout)
			patterns = append(patterns, format(stamp))
		}
	}
	return patterns
}
