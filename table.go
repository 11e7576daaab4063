package charts

import (
	"math"
	"strconv"
	"strings"
)

// Table holds the raw cells of a dataset. Rows may be shorter than the
// header. A Table is never modified once built.
type Table struct {
	columns []string
	rows    [][]string
}

func NewTable(columns []string, rows [][]string) *Table {
	t := Table{
		columns: append([]string(nil), columns...),
		rows:    make([][]string, 0, len(rows)),
	}
	for _, r := range rows {
		if r == nil {
			continue
		}
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	return &t
}

func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

func (t *Table) Column(i int) string {
	if i < 0 || i >= len(t.columns) {
		return "col" + strconv.Itoa(i)
	}
	return t.columns[i]
}

func (t *Table) ColumnCount() int {
	return len(t.columns)
}

func (t *Table) RowCount() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) Row(i int) []string {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append([]string(nil), t.rows[i]...)
}

func (t *Table) Rows() [][]string {
	list := make([][]string, len(t.rows))
	for i := range t.rows {
		list[i] = t.Row(i)
	}
	return list
}

// Cell returns the cell at the given position and whether the row is long
// enough to contain it.
func (t *Table) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.rows) {
		return "", false
	}
	r := t.rows[row]
	if col < 0 || col >= len(r) {
		return "", false
	}
	return r[col], true
}

// Project builds a series using column x for the labels and column y for the
// values.
func (t *Table) Project(x, y int) Series {
	var (
		labels = make([]string, 0, len(t.rows))
		values = make([]float64, 0, len(t.rows))
	)
	for i, row := range t.rows {
		label := strconv.Itoa(i)
		if x >= 0 && x < len(row) {
			label = row[x]
		} else if len(row) > 0 {
			label = row[0]
		}
		value := math.NaN()
		if y >= 0 && y < len(row) {
			value = ParseNumber(row[y])
		}
		labels = append(labels, label)
		values = append(values, value)
	}
	return Series{
		name:   t.Column(y),
		labels: labels,
		values: values,
	}
}

// ParseNumber reads a cell as a float. Thousands separators are accepted.
// Anything else gives NaN.
func ParseNumber(str string) float64 {
	str = strings.TrimSpace(str)
	if str == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(str, 64)
	if err != nil {
		f, err = strconv.ParseFloat(strings.ReplaceAll(str, ",", ""), 64)
	}
	if err != nil || !isFinite(f) {
		return math.NaN()
	}
	return f
}
