package charts

import (
	"math"
)

const tukeyFactor = 1.5

// BoxStats is the five-number summary of a list of values along with the
// values lying outside the Tukey fences.
type BoxStats struct {
	Min      float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      float64
	Outliers []float64
}

func (b BoxStats) IQR() float64 {
	return b.Q3 - b.Q1
}

func (b BoxStats) Fences() (float64, float64) {
	return b.Q1 - tukeyFactor*b.IQR(), b.Q3 + tukeyFactor*b.IQR()
}

func (b BoxStats) Empty() bool {
	return math.IsNaN(b.Min)
}

// Quartiles selects how the sorted values are split in halves.
type Quartiles int

const (
	// SplitMedian leaves the middle value out of both halves when the count
	// is odd.
	SplitMedian Quartiles = iota
	// TukeyHinges puts the middle value in both halves when the count is odd.
	TukeyHinges
)

func (q Quartiles) halves(list []float64) ([]float64, []float64) {
	n := len(list)
	if q == TukeyHinges && n%2 == 1 {
		return list[:n/2+1], list[n/2:]
	}
	return list[:n/2], list[(n+1)/2:]
}

// ComputeBoxStats never modifies values. The quartiles are the medians of the
// lower and upper halves of the sorted values, the middle value being part of
// neither half when the count is odd.
func ComputeBoxStats(values []float64) BoxStats {
	return SplitMedian.Compute(values)
}

func (q Quartiles) Compute(values []float64) BoxStats {
	if len(values) == 0 {
		nan := math.NaN()
		return BoxStats{
			Min:    nan,
			Q1:     nan,
			Median: nan,
			Q3:     nan,
			Max:    nan,
		}
	}
	var (
		list = sorted(values)
		n    = len(list)
		st   BoxStats
	)
	st.Min = list[0]
	st.Max = list[n-1]
	st.Median = median(list)
	lower, upper := q.halves(list)
	st.Q1 = median(lower)
	st.Q3 = median(upper)
	if n == 1 {
		st.Q1, st.Q3 = st.Median, st.Median
	}

	low, high := st.Fences()
	for _, v := range list {
		if v < low || v > high {
			st.Outliers = append(st.Outliers, v)
		}
	}
	return st
}
