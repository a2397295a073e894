package sampling

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Table is a design table: one row per design point, one column per
// variable. Every row has exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Cell is one named value of a design point.
type Cell struct {
	Name  string
	Value any
}

// Point is one design point as ordered name/value pairs.
type Point []Cell

// ErrBadTable indicates a malformed persisted table (ragged rows, no header).
var ErrBadTable = errors.New("sampling: malformed table")

// tableFromColumns transposes column slices (all of length n) into rows.
func tableFromColumns(names []string, cols [][]any, n int) *Table {
	t := &Table{Columns: names, Rows: make([][]any, n)}
	for i := 0; i < n; i++ {
		row := make([]any, len(cols))
		for j, col := range cols {
			row[j] = col[i]
		}
		t.Rows[i] = row
	}
	return t
}

// Len returns the number of design points.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []any {
	out := make([]any, len(t.Rows[i]))
	copy(out, t.Rows[i])
	return out
}

// Column returns every value of column name, in row order.
func (t *Table) Column(name string) ([]any, bool) {
	j := t.index(name)
	if j < 0 {
		return nil, false
	}
	out := make([]any, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[j]
	}
	return out, true
}

// Point returns row i as ordered name/value pairs.
func (t *Table) Point(i int) Point {
	p := make(Point, len(t.Columns))
	for j, name := range t.Columns {
		p[j] = Cell{Name: name, Value: t.Rows[i][j]}
	}
	return p
}

// Points returns every row as a Point.
func (t *Table) Points() []Point {
	out := make([]Point, len(t.Rows))
	for i := range t.Rows {
		out[i] = t.Point(i)
	}
	return out
}

func (t *Table) index(name string) int {
	for j, c := range t.Columns {
		if c == name {
			return j
		}
	}
	return -1
}

// WriteCSV writes a header row followed by one record per design point.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	record := make([]string, len(t.Columns))
	for i, row := range t.Rows {
		for j, v := range row {
			record[j] = formatCell(v)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV. Cells are typed back as bool,
// int, float64 or string, in that order of preference.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("ReadCSV: no header: %w", ErrBadTable)
	}
	if err != nil {
		return nil, fmt.Errorf("ReadCSV: %w", err)
	}
	cr.FieldsPerRecord = len(header)

	t := &Table{Columns: header}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("ReadCSV: %v: %w", err, ErrBadTable)
		}
		row := make([]any, len(record))
		for j, s := range record {
			row[j] = parseCell(s)
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

func formatCell(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprint(x)
	}
}

func parseCell(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
