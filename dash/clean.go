package dash

import (
	"regexp"
	"strings"

	charts "github.com/midbel/tabchart"
)

type Fix int

const (
	FixTrim Fix = iota
	FixNull
	FixNumber
)

func (f Fix) String() string {
	switch f {
	case FixTrim:
		return "trim"
	case FixNull:
		return "null"
	case FixNumber:
		return "number"
	default:
		return "unknown"
	}
}

func (f Fix) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// Suggestion proposes to replace the cell at Row and Col by Value.
type Suggestion struct {
	Row      int    `json:"row" yaml:"row"`
	Col      int    `json:"col" yaml:"col"`
	Original string `json:"original" yaml:"original"`
	Value    string `json:"value" yaml:"value"`
	Fix      Fix    `json:"fix" yaml:"fix"`
}

var (
	nullTokens = []string{"n/a", "na", "-", "--"}
	currency   = strings.NewReplacer("$", "", "€", "", "₹", "", "£", "", "¥", "", ",", "")
	plainNum   = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// Suggest scans every cell of the table. A cell can receive more than one
// suggestion, each one being computed from the original content of the cell.
// Applied in order, the last suggestion wins.
func Suggest(t *charts.Table) []Suggestion {
	var list []Suggestion
	for r := 0; r < t.RowCount(); r++ {
		for c, str := range t.Row(r) {
			list = append(list, suggestCell(r, c, str)...)
		}
	}
	return list
}

func suggestCell(row, col int, str string) []Suggestion {
	var (
		list    []Suggestion
		trimmed = strings.TrimSpace(str)
		suggest = func(value string, fix Fix) Suggestion {
			return Suggestion{
				Row:      row,
				Col:      col,
				Original: str,
				Value:    value,
				Fix:      fix,
			}
		}
	)
	if trimmed != str {
		list = append(list, suggest(trimmed, FixTrim))
	}
	if isNullToken(trimmed) {
		list = append(list, suggest("", FixNull))
	}
	if num := currency.Replace(trimmed); num != trimmed && plainNum.MatchString(num) {
		list = append(list, suggest(num, FixNumber))
	}
	return list
}

func isNullToken(str string) bool {
	str = strings.ToLower(str)
	for _, tok := range nullTokens {
		if str == tok {
			return true
		}
	}
	return false
}

// Apply returns a new table with the suggestions applied. Suggestions that
// point outside of a row are ignored.
func Apply(t *charts.Table, list []Suggestion) *charts.Table {
	rows := t.Rows()
	for _, s := range list {
		if s.Row < 0 || s.Row >= len(rows) {
			continue
		}
		if s.Col < 0 || s.Col >= len(rows[s.Row]) {
			continue
		}
		rows[s.Row][s.Col] = s.Value
	}
	return charts.NewTable(t.Columns(), rows)
}

// Filter keeps the suggestions of the given kinds.
func Filter(list []Suggestion, fixes ...Fix) []Suggestion {
	var res []Suggestion
	for _, s := range list {
		for _, f := range fixes {
			if s.Fix == f {
				res = append(res, s)
				break
			}
		}
	}
	return res
}
