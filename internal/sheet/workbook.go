package sheet

import (
	"errors"
	"os"

	"github.com/xuri/excelize/v2"

	"tmtidy/internal/faults"
)

// Read opens an .xlsx workbook and returns the cell values of its first sheet
// as plain rows. Trailing empty cells and rows are absent, matching how the
// meeting exports are laid out; consumers must bounds-check their accesses.
func Read(path string) ([][]string, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, faults.Wrap(faults.ErrMissingFile, "reading workbook", "open", path, err)
		}
		return nil, faults.Wrap(faults.ErrMissingFile, "reading workbook", "stat", path, err)
	}

	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrMalformedSchedule, "reading workbook", "decode", path, err)
	}
	defer book.Close()

	name := book.GetSheetName(0)
	if name == "" {
		return nil, faults.Wrap(faults.ErrMalformedSchedule, "reading workbook", "sheets", "workbook has no sheets", nil)
	}
	rows, err := book.GetRows(name)
	if err != nil {
		return nil, faults.Wrap(faults.ErrMalformedSchedule, "reading workbook", "rows", path, err)
	}
	return rows, nil
}
