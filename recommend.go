package charts

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	NumericSample  = 200
	TemporalSample = 40

	numericRatio   = 0.8
	temporalRatio  = 0.6
	temporalMin    = 3
	pieMaxCategory = 6
	barMaxCategory = 30
	fewTimePoints  = 5
	moderateRows   = 50
)

type Recommendation struct {
	Kind    Kind     `json:"kind" yaml:"kind"`
	Reasons []string `json:"reasons" yaml:"reasons"`
}

func (r Recommendation) Explanation() string {
	return strings.Join(r.Reasons, " ")
}

// Profile is what the recommender measured on a pair of columns.
type Profile struct {
	Rows int

	NumericCount int
	NumericTotal int

	DateCount int
	DateTotal int

	Cardinality int
}

func (p Profile) NumericRatio() float64 {
	if p.NumericTotal == 0 {
		return 0
	}
	return float64(p.NumericCount) / float64(p.NumericTotal)
}

func (p Profile) Numeric() bool {
	if p.NumericTotal == 0 {
		return false
	}
	return float64(p.NumericCount) >= numericRatio*float64(p.NumericTotal)
}

func (p Profile) Temporal() bool {
	need := math.Max(temporalMin, temporalRatio*float64(p.DateTotal))
	return float64(p.DateCount) >= need
}

func ProfileColumns(t *Table, x, y int) Profile {
	p := Profile{
		Rows:        t.RowCount(),
		Cardinality: countDistinct(t, x),
	}
	p.NumericCount, p.NumericTotal = sampleNumeric(t, y)
	p.DateCount, p.DateTotal = sampleDates(t, x)
	return p
}

type rule struct {
	Kind
	accept  func(Profile) bool
	explain func(Profile) []string
}

// rules are evaluated in order, the first accepting rule wins.
var rules = []rule{
	{
		Kind: KindLine,
		accept: func(p Profile) bool {
			return p.Temporal() && p.Numeric()
		},
		explain: func(p Profile) []string {
			list := []string{
				fmt.Sprintf("X looks like a time axis (%d of %d sampled values are dates) and Y is numeric: a line chart shows the trend over time.", p.DateCount, p.DateTotal),
			}
			if p.Cardinality <= fewTimePoints {
				list = append(list, fmt.Sprintf("Only %d distinct time points: a line still works but a bar chart may read more clearly.", p.Cardinality))
			}
			return list
		},
	},
	{
		Kind: KindPie,
		accept: func(p Profile) bool {
			return !p.Numeric() && p.Cardinality <= pieMaxCategory
		},
		explain: func(p Profile) []string {
			return []string{
				nonNumericReason(p),
				fmt.Sprintf("X has %d categories (at most %d): a pie chart shows the share of each part.", p.Cardinality, pieMaxCategory),
			}
		},
	},
	{
		Kind: KindBar,
		accept: func(p Profile) bool {
			return !p.Numeric()
		},
		explain: func(p Profile) []string {
			return []string{
				nonNumericReason(p),
				fmt.Sprintf("X has %d categories (more than %d): a bar chart stays readable.", p.Cardinality, pieMaxCategory),
			}
		},
	},
	{
		Kind: KindBar,
		accept: func(p Profile) bool {
			return p.Cardinality <= pieMaxCategory
		},
		explain: func(p Profile) []string {
			return []string{
				fmt.Sprintf("X has %d categories and Y is numeric: a bar chart compares them directly, a pie chart is possible for shares.", p.Cardinality),
			}
		},
	},
	{
		Kind: KindLine,
		accept: func(p Profile) bool {
			return p.Rows <= moderateRows && p.Cardinality <= barMaxCategory
		},
		explain: func(p Profile) []string {
			return []string{
				fmt.Sprintf("Moderate number of points (%d rows, %d categories): a line chart shows the progression, bars would show discrete comparisons.", p.Rows, p.Cardinality),
			}
		},
	},
	{
		Kind:   KindBar,
		accept: func(Profile) bool { return true },
		explain: func(p Profile) []string {
			return []string{
				fmt.Sprintf("Large dataset (%d rows, %d categories): a bar chart is the safest default for comparisons.", p.Rows, p.Cardinality),
			}
		},
	},
}

func nonNumericReason(p Profile) string {
	pct := strconv.FormatFloat(p.NumericRatio()*100, 'f', 0, 64)
	return fmt.Sprintf("Y is not numeric (%s%% of %d sampled values are numbers): charting counts or shares.", pct, p.NumericTotal)
}

// Recommend proposes a chart kind for column x (labels) and column y (values)
// of t.
func Recommend(t *Table, x, y int) Recommendation {
	if t == nil {
		return Recommendation{
			Kind:    KindBar,
			Reasons: []string{"No data loaded."},
		}
	}
	return RecommendProfile(ProfileColumns(t, x, y))
}

func RecommendProfile(p Profile) Recommendation {
	for _, r := range rules {
		if !r.accept(p) {
			continue
		}
		return Recommendation{
			Kind:    r.Kind,
			Reasons: r.explain(p),
		}
	}
	return Recommendation{Kind: KindBar}
}

var currency = strings.NewReplacer(",", "", "$", "", "€", "", "₹", "", "£", "", "¥", "")

func LooksNumeric(str string) (bool, bool) {
	str = currency.Replace(strings.TrimSpace(str))
	if str == "" {
		return false, false
	}
	f, err := strconv.ParseFloat(str, 64)
	return err == nil && isFinite(f), true
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d{4}-\d{1,2}-\d{1,2}$`),
	regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`),
	regexp.MustCompile(`^\d{1,2}-\d{1,2}-\d{4}$`),
	regexp.MustCompile(`^\d{4}/\d{1,2}/\d{1,2}$`),
	regexp.MustCompile(`^\d{1,2} [A-Za-z]{3,} \d{4}$`),
}

func LooksLikeDate(str string) bool {
	for _, re := range datePatterns {
		if re.MatchString(str) {
			return true
		}
	}
	_, err := time.Parse(time.DateOnly, str)
	return err == nil
}

func sampleNumeric(t *Table, col int) (int, int) {
	var count, total int
	for i := 0; i < min(t.RowCount(), NumericSample); i++ {
		cell, ok := t.Cell(i, col)
		if !ok {
			continue
		}
		numeric, filled := LooksNumeric(cell)
		if !filled {
			continue
		}
		total++
		if numeric {
			count++
		}
	}
	return count, total
}

func sampleDates(t *Table, col int) (int, int) {
	var count, total int
	for i := 0; i < min(t.RowCount(), TemporalSample); i++ {
		cell, ok := t.Cell(i, col)
		if !ok {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		total++
		if LooksLikeDate(cell) {
			count++
		}
	}
	return count, total
}

func countDistinct(t *Table, col int) int {
	seen := make(map[string]struct{})
	for i := 0; i < t.RowCount(); i++ {
		cell, ok := t.Cell(i, col)
		if !ok {
			continue
		}
		seen[cell] = struct{}{}
	}
	return len(seen)
}
