package charts

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

type Aggregator int

const (
	AggregateMean Aggregator = iota
	AggregateSum
	AggregateMedian
	AggregateCount
)

func ParseAggregator(str string) (Aggregator, error) {
	switch strings.ToLower(str) {
	case "mean", "avg", "average", "":
		return AggregateMean, nil
	case "sum":
		return AggregateSum, nil
	case "median":
		return AggregateMedian, nil
	case "count":
		return AggregateCount, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized aggregate function", str)
	}
}

func (a Aggregator) String() string {
	switch a {
	case AggregateSum:
		return "sum"
	case AggregateMedian:
		return "median"
	case AggregateCount:
		return "count"
	default:
		return "mean"
	}
}

// Apply computes the aggregate of values. NaN is returned for an empty list.
func (a Aggregator) Apply(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	switch a {
	case AggregateSum:
		return sum(values)
	case AggregateMedian:
		return median(sorted(values))
	case AggregateCount:
		return float64(len(values))
	default:
		return sum(values) / float64(len(values))
	}
}

type Bucket struct {
	Label  string
	Values []float64
}

const (
	maxLabelLength = 20
	cutLabelLength = 18
	ellipsis       = "…"
)

// Partition returns the size of each bucket when n points are split into
// bins groups. Bins smaller than 1 are treated as 1. When bins is not
// smaller than n, a nil slice is returned as no partitioning is needed.
func Partition(n, bins int) []int {
	if bins <= 0 {
		bins = 1
	}
	if bins >= n {
		return nil
	}
	var (
		base  = n / bins
		rem   = n % bins
		sizes = make([]int, bins)
	)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}

// Aggregate reduces serie to at most bins points. Each point is the
// aggregate of the non missing values of consecutive points of serie.
func Aggregate(serie Series, bins int, agg Aggregator) Series {
	sizes := Partition(serie.Len(), bins)
	if sizes == nil {
		return serie
	}
	var (
		labels []string
		values []float64
		offset int
	)
	for _, size := range sizes {
		if size == 0 {
			continue
		}
		b := makeBucket(serie, offset, size)
		labels = append(labels, b.Label)
		values = append(values, agg.Apply(b.Values))
		offset += size
	}
	name := fmt.Sprintf("%s (binned %d)", serie.Name(), len(sizes))
	return Series{
		name:   name,
		labels: labels,
		values: values,
	}
}

// Bucketize splits serie into groups of consecutive points keeping the raw
// values of each group.
func Bucketize(serie Series, bins int) []Bucket {
	sizes := Partition(serie.Len(), bins)
	if sizes == nil {
		list := make([]Bucket, serie.Len())
		for i := range list {
			list[i] = makeBucket(serie, i, 1)
			list[i].Label = serie.labels[i]
		}
		return list
	}
	var (
		list   = make([]Bucket, 0, len(sizes))
		offset int
	)
	for _, size := range sizes {
		list = append(list, makeBucket(serie, offset, size))
		offset += size
	}
	return list
}

func makeBucket(serie Series, offset, size int) Bucket {
	var (
		names  = serie.labels[offset : offset+size]
		values []float64
	)
	for _, v := range serie.values[offset : offset+size] {
		if isFinite(v) {
			values = append(values, v)
		}
	}
	return Bucket{
		Label:  bucketLabel(names),
		Values: values,
	}
}

func bucketLabel(names []string) string {
	str := strings.Join(names, ", ")
	if rs := []rune(str); len(rs) > maxLabelLength {
		str = string(rs[:cutLabelLength]) + ellipsis
	}
	return str
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

func sorted(values []float64) []float64 {
	list := append([]float64(nil), values...)
	sort.Float64s(list)
	return list
}

// median expects a sorted list.
func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	if n%2 == 1 {
		return values[n/2]
	}
	return (values[n/2-1] + values[n/2]) / 2
}
