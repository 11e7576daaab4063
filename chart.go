package charts

import (
	"fmt"
	"io"
	"strings"
)

type Kind int

const (
	KindBar Kind = iota
	KindLine
	KindPie
	KindBox
)

var Kinds = []Kind{KindBar, KindLine, KindPie, KindBox}

func ParseKind(str string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "bar", "":
		return KindBar, nil
	case "line":
		return KindLine, nil
	case "pie":
		return KindPie, nil
	case "box", "boxplot":
		return KindBox, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized chart type", str)
	}
}

func (k Kind) String() string {
	switch k {
	case KindBar:
		return "bar"
	case KindLine:
		return "line"
	case KindPie:
		return "pie"
	case KindBox:
		return "box"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	x, err := ParseKind(string(b))
	if err == nil {
		*k = x
	}
	return err
}

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

func (p Padding) zero() bool {
	return p == Padding{}
}

const DefaultThreshold = 200

type Options struct {
	Kind       Kind
	Bins       int
	Aggregator Aggregator
	Threshold  int
	Auto       bool
}

func DefaultOptions() Options {
	return Options{
		Kind:       KindBar,
		Bins:       DefaultBins,
		Aggregator: AggregateMean,
		Threshold:  DefaultThreshold,
		Auto:       true,
	}
}

// Prepare aggregates serie when it has more points than the threshold. Box
// plots are never aggregated since they bucket their input themselves. The
// second value reports whether serie was aggregated.
func Prepare(serie Series, opts Options) (Series, bool) {
	if !opts.Auto || opts.Kind == KindBox || serie.Len() <= opts.Threshold {
		return serie, false
	}
	return Aggregate(serie, opts.Bins, opts.Aggregator), true
}

type Chart struct {
	Title   string
	Width   float64
	Height  float64
	Padding Padding
	Point   PointFunc

	Style
	Options
}

func (c Chart) Area() Rect {
	return NewRect(0, 0, c.Width, c.Height)
}

// Draw prepares serie and sends the drawing commands of the chart to cv.
func (c Chart) Draw(cv Canvas, serie Series) error {
	rdr, err := c.renderer()
	if err != nil {
		return err
	}
	serie, _ = Prepare(serie, c.Options)

	style := c.Style.merge(DefaultStyle())
	cv.FillRect(c.Area(), style.Background)
	if c.Title != "" {
		font := Font{
			Size:   16,
			Bold:   true,
			Anchor: AnchorMiddle,
		}
		cv.Text(c.Width/2, 20, c.Title, font, style.Text)
	}
	rdr.Render(cv, c.Area(), serie)
	return nil
}

func (c Chart) renderer() (Renderer, error) {
	rdr, err := RendererFor(c.Kind, c.Style)
	if err != nil {
		return nil, err
	}
	switch r := rdr.(type) {
	case BarRenderer:
		r.Padding = c.Padding
		rdr = r
	case LineRenderer:
		r.Padding = c.Padding
		if c.Point != nil {
			r.Point = c.Point
		}
		rdr = r
	case BoxRenderer:
		r.Bins = c.Bins
		rdr = r
	}
	return rdr, nil
}

func (c Chart) Render(w io.Writer, serie Series) error {
	cv := NewSVGCanvas(c.Width, c.Height)
	if err := c.Draw(cv, serie); err != nil {
		return err
	}
	return cv.Render(w)
}
