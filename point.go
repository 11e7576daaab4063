package charts

import (
	"math"
)

type Point struct {
	Label string
	Value float64
}

func CategoryPoint(label string, value float64) Point {
	return Point{
		Label: label,
		Value: value,
	}
}

// Finite returns the value of the point with NaN and infinities replaced by 0.
func (p Point) Finite() float64 {
	return finite(p.Value)
}

func (p Point) Missing() bool {
	return math.IsNaN(p.Value)
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
