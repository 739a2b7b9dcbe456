package csv2graph

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// IndexColumn is the name of the synthetic x column holding the 1-based row index.
const IndexColumn = "_"

// ErrNoHeader is returned when the input has no header row.
var ErrNoHeader = errors.New("missing header row")

// Value is a single table cell. Numeric is set when Text parses as a float.
type Value struct {
	Text    string
	Num     float64
	Numeric bool
}

// ParseValue parses a cell, surrounding whitespace is ignored for the numeric value. NaN and infinities are not numeric.
func ParseValue(s string) Value {
	v := Value{Text: s}
	if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && isFinite(f) {
		v.Num = f
		v.Numeric = true
	}
	return v
}

// NumValue returns a numeric cell.
func NumValue(f float64) Value {
	return Value{Text: strconv.FormatFloat(f, 'g', -1, 64), Num: f, Numeric: true}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Table is an in-memory table with named columns. Column 0 is the x column.
type Table struct {
	Header []string
	Rows   [][]Value

	index map[string]int
}

// NewTable returns a table with the given header and rows. Rows must have the same length as the header.
func NewTable(header []string, rows [][]Value) *Table {
	t := &Table{
		Header: header,
		Rows:   rows,
		index:  make(map[string]int, len(header)),
	}
	for i, name := range header {
		if _, ok := t.index[name]; !ok {
			t.index[name] = i
		}
	}
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// XName returns the name of the x column.
func (t *Table) XName() string {
	if len(t.Header) == 0 {
		return ""
	}
	return t.Header[0]
}

// Column returns the index of the first column with the given name.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// X returns the x value of row i.
func (t *Table) X(i int) (float64, bool) {
	return t.Float(i, 0)
}

// Float returns the numeric value at row i and column j.
func (t *Table) Float(i, j int) (float64, bool) {
	if i < 0 || len(t.Rows) <= i || j < 0 || len(t.Rows[i]) <= j {
		return 0.0, false
	}
	v := t.Rows[i][j]
	return v.Num, v.Numeric
}

// WithRows returns a table sharing the header with a different set of rows.
func (t *Table) WithRows(rows [][]Value) *Table {
	return &Table{
		Header: t.Header,
		Rows:   rows,
		index:  t.index,
	}
}

// MapX returns a copy of the table with f applied to every numeric x value.
func (t *Table) MapX(f func(float64) float64) *Table {
	rows := make([][]Value, len(t.Rows))
	for i, row := range t.Rows {
		rows[i] = append([]Value{}, row...)
		if 0 < len(row) && row[0].Numeric {
			rows[i][0] = NumValue(f(row[0].Num))
		}
	}
	return t.WithRows(rows)
}

// LoadOptions control how a data file is read.
type LoadOptions struct {
	XInData bool   // first column holds the x values
	Sheet   string // worksheet for XLSX files, empty is the first sheet
}

// LoadFile reads a data file, the format is chosen by the extension.
func LoadFile(filename string, opts LoadOptions) (*Table, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *Table
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm":
		t, err = ReadXLSX(f, opts.Sheet, opts.XInData)
	case ".tsv", ".tab":
		t, err = ReadCSV(f, '\t', opts.XInData)
	default:
		t, err = ReadCSV(f, ',', opts.XInData)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return t, nil
}

// ReadCSV reads delimited text with a header row. Rows must have as many fields as the header.
func ReadCSV(r io.Reader, comma rune, xInData bool) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	} else if err != nil {
		return nil, err
	}
	header = append([]string{}, header...)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	records := [][]string{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return newTableFromRecords(header, records, xInData), nil
}

func newTableFromRecords(header []string, records [][]string, xInData bool) *Table {
	if !xInData {
		header = append([]string{IndexColumn}, header...)
	}

	rows := make([][]Value, 0, len(records))
	for i, record := range records {
		row := make([]Value, 0, len(header))
		if !xInData {
			row = append(row, NumValue(float64(i+1)))
		}
		for _, field := range record {
			row = append(row, ParseValue(field))
		}
		for len(row) < len(header) {
			row = append(row, Value{})
		}
		rows = append(rows, row[:len(header)])
	}
	return NewTable(header, rows)
}
