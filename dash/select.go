package dash

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	charts "github.com/midbel/tabchart"
)

var ErrIndex = errors.New("invalid index")

// SelectColumn resolves str to a column of t. str is first read as an index
// then as the name of a column, names being compared without case.
func SelectColumn(t *charts.Table, str string) (int, error) {
	str = strings.TrimSpace(str)
	if i, err := strconv.Atoi(str); err == nil {
		if i < 0 || i >= t.ColumnCount() {
			return 0, fmt.Errorf("%d: %w", i, ErrIndex)
		}
		return i, nil
	}
	for i, c := range t.Columns() {
		if strings.EqualFold(strings.TrimSpace(c), str) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s: %w", str, ErrIndex)
}
