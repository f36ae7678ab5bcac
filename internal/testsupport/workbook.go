package testsupport

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

// Participant is one row of a meeting export's attendance table.
type Participant struct {
	Name  string
	Join  string
	Leave string
}

// MeetingSheet describes a meeting export workbook fixture. Either
// Participants or ScheduledStart+Duration should be set, mirroring the two
// export layouts.
type MeetingSheet struct {
	Theme          string
	Number         string
	ScheduledStart string
	Duration       string
	Participants   []Participant
}

// Attendance table header offset used by the exports (ninth spreadsheet row).
const participantHeaderRow = 9

// WriteMeetingWorkbook writes an .xlsx fixture laid out like a meeting
// attendance export.
func WriteMeetingWorkbook(t testing.TB, path string, ms MeetingSheet) {
	t.Helper()

	book := excelize.NewFile()
	defer book.Close()
	sheetName := book.GetSheetName(0)

	set := func(cell string, value string) {
		t.Helper()
		if err := book.SetCellValue(sheetName, cell, value); err != nil {
			t.Fatalf("set %s: %v", cell, err)
		}
	}

	set("A1", "会议主题")
	set("B1", ms.Theme)
	set("A2", "会议号")
	set("B2", ms.Number)

	if ms.ScheduledStart != "" {
		set("A4", "会议开始时间")
		set("B4", ms.ScheduledStart)
		set("A6", "会议时长")
		set("B6", ms.Duration)
	}

	if len(ms.Participants) > 0 {
		header := []any{"昵称", "首次入会时间", "最后退会时间"}
		cell, err := excelize.CoordinatesToCellName(1, participantHeaderRow)
		if err != nil {
			t.Fatal(err)
		}
		if err := book.SetSheetRow(sheetName, cell, &header); err != nil {
			t.Fatal(err)
		}
		for i, p := range ms.Participants {
			cell, err := excelize.CoordinatesToCellName(1, participantHeaderRow+1+i)
			if err != nil {
				t.Fatal(err)
			}
			row := []any{p.Name, p.Join, p.Leave}
			if err := book.SetSheetRow(sheetName, cell, &row); err != nil {
				t.Fatal(err)
			}
		}
	}

	if err := book.SaveAs(path); err != nil {
		t.Fatalf("save workbook %s: %v", path, err)
	}
}
