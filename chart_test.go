package charts

import (
	"bytes"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequence(n int) Series {
	var (
		labels = make([]string, n)
		values = make([]float64, n)
	)
	for i := range labels {
		labels[i] = strconv.Itoa(i)
		values[i] = float64(i % 7)
	}
	return NewSeries("seq", labels, values)
}

func TestPrepare(t *testing.T) {
	opts := DefaultOptions()

	got, ok := Prepare(sequence(250), opts)
	assert.True(t, ok)
	assert.Equal(t, DefaultBins, got.Len())

	got, ok = Prepare(sequence(DefaultThreshold), opts)
	assert.False(t, ok)
	assert.Equal(t, DefaultThreshold, got.Len())

	opts.Auto = false
	_, ok = Prepare(sequence(250), opts)
	assert.False(t, ok)

	opts = DefaultOptions()
	opts.Kind = KindBox
	got, ok = Prepare(sequence(250), opts)
	assert.False(t, ok)
	assert.Equal(t, 250, got.Len())
}

func TestChartDraw(t *testing.T) {
	ch := Chart{
		Title:   "sales",
		Width:   640,
		Height:  480,
		Options: DefaultOptions(),
	}
	ch.Kind = KindLine

	var rec Recorder
	require.NoError(t, ch.Draw(&rec, sequence(20)))
	require.NotEmpty(t, rec.Commands)

	bg := rec.Commands[0]
	assert.Equal(t, OpFillRect, bg.Op)
	assert.Equal(t, []float64{0, 0, 640, 480}, bg.Args)
	assert.Equal(t, "white", bg.Color)

	title := rec.Commands[1]
	assert.Equal(t, OpText, title.Op)
	assert.Equal(t, "sales", title.Text)
	assert.Equal(t, AnchorMiddle, title.Anchor)
	assert.Equal(t, []float64{320, 20}, title.Args)

	assert.Len(t, rec.Filter(OpCircle), 20)
}

func TestChartDrawAggregates(t *testing.T) {
	ch := Chart{
		Width:   400,
		Height:  300,
		Options: DefaultOptions(),
	}
	var rec Recorder
	require.NoError(t, ch.Draw(&rec, sequence(500)))
	assert.Len(t, rec.Filter(OpFillRect), DefaultBins+1)
}

func TestChartDrawUnknownKind(t *testing.T) {
	ch := Chart{Width: 10, Height: 10}
	ch.Kind = Kind(12)

	var rec Recorder
	assert.Error(t, ch.Draw(&rec, sequence(3)))
	assert.Empty(t, rec.Commands)
}

func TestChartRender(t *testing.T) {
	for _, k := range Kinds {
		ch := Chart{
			Title:   k.String(),
			Width:   400,
			Height:  300,
			Options: DefaultOptions(),
		}
		ch.Kind = k

		var buf bytes.Buffer
		require.NoError(t, ch.Render(&buf, sequence(30)), k.String())
		assert.Contains(t, buf.String(), "svg", k.String())
		assert.Contains(t, buf.String(), k.String())
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestChartRenderWriteError(t *testing.T) {
	ch := Chart{Width: 400, Height: 300, Options: DefaultOptions()}
	assert.EqualError(t, ch.Render(failWriter{}, sequence(5)), "disk full")
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		Input string
		Want  Kind
	}{
		{Input: "", Want: KindBar},
		{Input: "BAR", Want: KindBar},
		{Input: " line ", Want: KindLine},
		{Input: "pie", Want: KindPie},
		{Input: "box", Want: KindBox},
		{Input: "boxplot", Want: KindBox},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.Input)
		require.NoError(t, err, tt.Input)
		assert.Equal(t, tt.Want, got, tt.Input)
	}
	_, err := ParseKind("scatter")
	assert.Error(t, err)

	var k Kind
	require.NoError(t, k.UnmarshalText([]byte("pie")))
	assert.Equal(t, KindPie, k)
	b, _ := k.MarshalText()
	assert.Equal(t, "pie", string(b))
}
