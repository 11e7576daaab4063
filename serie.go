package charts

import (
	"fmt"
	"math"
)

// Series is an immutable sequence of labelled values. Values may be NaN when
// the source cell could not be read as a number.
type Series struct {
	name   string
	labels []string
	values []float64
}

func NewSeries(name string, labels []string, values []float64) Series {
	n := min(len(labels), len(values))
	s := Series{
		name:   name,
		labels: make([]string, n),
		values: make([]float64, n),
	}
	copy(s.labels, labels)
	copy(s.values, values)
	return s
}

func SeriesFromPoints(name string, points []Point) Series {
	s := Series{
		name:   name,
		labels: make([]string, len(points)),
		values: make([]float64, len(points)),
	}
	for i, pt := range points {
		s.labels[i] = pt.Label
		s.values[i] = pt.Value
	}
	return s
}

func (s Series) Name() string {
	return s.name
}

func (s Series) Rename(name string) Series {
	x := s
	x.name = name
	return x
}

func (s Series) Len() int {
	return len(s.values)
}

func (s Series) Empty() bool {
	return s.Len() == 0
}

func (s Series) Labels() []string {
	return append([]string(nil), s.labels...)
}

func (s Series) Values() []float64 {
	return append([]float64(nil), s.values...)
}

func (s Series) At(i int) Point {
	if i < 0 || i >= s.Len() {
		return Point{Value: math.NaN()}
	}
	return CategoryPoint(s.labels[i], s.values[i])
}

func (s Series) Points() []Point {
	list := make([]Point, s.Len())
	for i := range list {
		list[i] = CategoryPoint(s.labels[i], s.values[i])
	}
	return list
}

func (s Series) Sum() float64 {
	var total float64
	for _, v := range s.values {
		if isFinite(v) {
			total += v
		}
	}
	return total
}

func (s Series) Mean() float64 {
	var (
		total float64
		count int
	)
	for _, v := range s.values {
		if !isFinite(v) {
			continue
		}
		total += v
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func (s Series) Min() float64 {
	return s.extremum(func(a, b float64) bool { return a < b })
}

func (s Series) Max() float64 {
	return s.extremum(func(a, b float64) bool { return a > b })
}

func (s Series) extremum(better func(float64, float64) bool) float64 {
	var (
		res float64
		set bool
	)
	for _, v := range s.values {
		if !isFinite(v) {
			continue
		}
		if !set || better(v, res) {
			res, set = v, true
		}
	}
	return res
}

func (s Series) String() string {
	return fmt.Sprintf("series(%s, %d points)", s.name, s.Len())
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
