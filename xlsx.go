package csv2graph

import (
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a worksheet of an Excel workbook, the first row is the header. An empty sheet name selects the first sheet.
func ReadXLSX(r io.Reader, sheet string, xInData bool) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if sheet == "" {
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	} else if !slices.Contains(sheets, sheet) {
		return nil, fmt.Errorf("sheet %q not found", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	} else if len(rows) == 0 {
		return nil, ErrNoHeader
	}
	return newTableFromRecords(rows[0], rows[1:], xInData), nil
}
