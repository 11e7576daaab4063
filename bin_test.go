package charts

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		Name string
		N    int
		Bins int
		Want []int
	}{
		{Name: "even", N: 10, Bins: 5, Want: []int{2, 2, 2, 2, 2}},
		{Name: "remainder", N: 10, Bins: 3, Want: []int{4, 3, 3}},
		{Name: "scenario", N: 5, Bins: 2, Want: []int{3, 2}},
		{Name: "zero bins", N: 4, Bins: 0, Want: []int{4}},
		{Name: "negative bins", N: 4, Bins: -3, Want: []int{4}},
		{Name: "more bins than points", N: 3, Bins: 5, Want: nil},
		{Name: "as many bins as points", N: 3, Bins: 3, Want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, Partition(tt.N, tt.Bins))
		})
	}
}

func TestPartitionSizes(t *testing.T) {
	for n := 1; n <= 60; n++ {
		for bins := 1; bins < n; bins++ {
			var (
				sizes = Partition(n, bins)
				rem   = n % bins
				total int
			)
			require.Len(t, sizes, bins)
			for i, s := range sizes {
				want := n / bins
				if i < rem {
					want++
				}
				assert.Equal(t, want, s, "n=%d, bins=%d, bucket=%d", n, bins, i)
				total += s
			}
			assert.Equal(t, n, total)
		}
	}
}

func TestBucketizeKeepsOrder(t *testing.T) {
	var (
		labels []string
		values []float64
	)
	for i := 0; i < 23; i++ {
		labels = append(labels, string(rune('a'+i)))
		values = append(values, float64(i))
	}
	serie := NewSeries("order", labels, values)

	var all []float64
	for _, b := range Bucketize(serie, 4) {
		all = append(all, b.Values...)
	}
	assert.Equal(t, values, all)
}

func TestAggregateScenario(t *testing.T) {
	serie := NewSeries("v", []string{"A", "B", "C", "D", "E"}, []float64{1, 2, 3, 4, math.NaN()})

	got := Aggregate(serie, 2, AggregateMean)
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "v (binned 2)", got.Name())
	assert.Equal(t, []string{"A, B, C", "D, E"}, got.Labels())
	assert.Equal(t, []float64{2, 4}, got.Values())
}

func TestAggregateIdentity(t *testing.T) {
	serie := NewSeries("v", []string{"a", "b", "c"}, []float64{3, 1, 2})
	for _, bins := range []int{3, 4, 100} {
		assert.Equal(t, serie, Aggregate(serie, bins, AggregateSum))
	}
}

func TestAggregateFunctions(t *testing.T) {
	serie := NewSeries("v", []string{"a", "b", "c", "d"}, []float64{4, 1, 3, 2})
	tests := []struct {
		Aggregator
		Want float64
	}{
		{Aggregator: AggregateSum, Want: 10},
		{Aggregator: AggregateMean, Want: 2.5},
		{Aggregator: AggregateMedian, Want: 2.5},
		{Aggregator: AggregateCount, Want: 4},
	}
	for _, tt := range tests {
		t.Run(tt.Aggregator.String(), func(t *testing.T) {
			got := Aggregate(serie, 1, tt.Aggregator)
			require.Equal(t, 1, got.Len())
			assert.Equal(t, tt.Want, got.At(0).Value)
		})
	}
	assert.Equal(t, []float64{4, 1, 3, 2}, serie.Values(), "input modified")
}

func TestAggregateMedianOdd(t *testing.T) {
	serie := NewSeries("v", []string{"a", "b", "c", "d", "e", "f"}, []float64{9, 1, 5, 7, 7, 7})
	got := Aggregate(serie, 2, AggregateMedian)
	assert.Equal(t, []float64{5, 7}, got.Values())
}

func TestAggregateMissingBucket(t *testing.T) {
	nan := math.NaN()
	serie := NewSeries("v", []string{"a", "b", "c", "d"}, []float64{nan, nan, 1, 2})
	for _, agg := range []Aggregator{AggregateSum, AggregateMean, AggregateMedian, AggregateCount} {
		got := Aggregate(serie, 2, agg)
		require.Equal(t, 2, got.Len())
		assert.True(t, math.IsNaN(got.At(0).Value), agg.String())
		assert.False(t, math.IsNaN(got.At(1).Value), agg.String())
	}
}

func TestAggregateLongLabel(t *testing.T) {
	serie := NewSeries("v", []string{"alpha", "beta", "gamma", "delta"}, []float64{1, 2, 3, 4})
	got := Aggregate(serie, 1, AggregateSum)
	assert.Equal(t, []string{"alpha, beta, gamma…"}, got.Labels())

	serie = NewSeries("v", []string{"0123456789", "abcdefgh"}, []float64{1, 2})
	got = Aggregate(serie, 1, AggregateSum)
	assert.Equal(t, []string{"0123456789, abcdefgh"}, got.Labels())
}

func TestBucketize(t *testing.T) {
	nan := math.NaN()
	serie := NewSeries("v", []string{"a", "b", "c", "d", "e"}, []float64{1, nan, 3, 4, 5})

	got := Bucketize(serie, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "a, b, c", got[0].Label)
	assert.Equal(t, []float64{1, 3}, got[0].Values)
	assert.Equal(t, "d, e", got[1].Label)
	assert.Equal(t, []float64{4, 5}, got[1].Values)
}

func TestBucketizeIdentity(t *testing.T) {
	nan := math.NaN()
	serie := NewSeries("v", []string{"a very long label for a single point", "b", "c"}, []float64{1, nan, 3})

	got := Bucketize(serie, 10)
	require.Len(t, got, 3)
	assert.Equal(t, "a very long label for a single point", got[0].Label)
	assert.Equal(t, []float64{1}, got[0].Values)
	assert.Empty(t, got[1].Values)
	assert.Equal(t, []float64{3}, got[2].Values)
}

func TestParseAggregator(t *testing.T) {
	for _, str := range []string{"sum", "MEAN", "median", "Count", "avg"} {
		_, err := ParseAggregator(str)
		assert.NoError(t, err, str)
	}
	_, err := ParseAggregator("mode")
	assert.Error(t, err)
}

func TestBucketizeDropsNonFinite(t *testing.T) {
	serie := NewSeries("v", []string{"a", "b", "c", "d"}, []float64{1, 2, math.Inf(1), 3})
	got := Bucketize(serie, 1)
	require.Len(t, got, 1)
	assert.Equal(t, []float64{1, 2, 3}, got[0].Values)

	serie = NewSeries("v", []string{"a", "b"}, []float64{math.Inf(-1), math.NaN()})
	got = Bucketize(serie, 2)
	require.Len(t, got, 2)
	assert.Empty(t, got[0].Values)
	assert.Empty(t, got[1].Values)
}
