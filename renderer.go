package charts

import (
	"fmt"
	"math"

	"github.com/midbel/slices"
)

type Renderer interface {
	Render(Canvas, Rect, Series)
}

var DefaultPadding = Padding{
	Top:    40,
	Right:  20,
	Bottom: 40,
	Left:   40,
}

const (
	DefaultBins    = 10
	DefaultSpacing = 6.0
	DefaultMinBar  = 6.0
)

func RendererFor(kind Kind, style Style) (Renderer, error) {
	switch kind {
	case KindBar:
		return BarRenderer{Style: style}, nil
	case KindLine:
		return LineRenderer{Style: style, Point: DrawCircle}, nil
	case KindPie:
		return PieRenderer{Style: style}, nil
	case KindBox:
		return BoxRenderer{Style: style}, nil
	default:
		return nil, fmt.Errorf("%d: unrecognized chart renderer", kind)
	}
}

type BarRenderer struct {
	Style
	Padding  Padding
	Spacing  float64
	MinWidth float64
}

func (r BarRenderer) Render(c Canvas, area Rect, serie Series) {
	r.Style = r.Style.merge(DefaultStyle())
	if r.Padding.zero() {
		r.Padding = DefaultPadding
	}
	if r.Spacing <= 0 {
		r.Spacing = DefaultSpacing
	}
	if r.MinWidth <= 0 {
		r.MinWidth = DefaultMinBar
	}
	inner := area.Inset(r.Padding)
	if serie.Empty() {
		drawMessage(c, inner, "No data", r.Style)
		return
	}
	var (
		points = serie.Points()
		top    float64
	)
	for _, pt := range points {
		top = math.Max(top, pt.Finite())
	}
	if top == 0 {
		top = 1
	}
	var (
		width     = math.Max(r.MinWidth, inner.W/float64(len(points))-r.Spacing)
		height    = NumberScaler(NumberDomain(0, top), NewRange(0, inner.H))
		axis      = NumberScaler(NumberDomain(0, top), NewRange(inner.Bottom(), inner.Top()))
		labels    = make([]string, 0, len(points))
		positions = make([]float64, 0, len(points))
		x         = inner.Left()
	)
	for _, pt := range points {
		h := math.Max(0, height.Scale(pt.Finite()))
		c.FillRect(NewRect(x, inner.Bottom()-h, width, math.Max(1, h)), r.Bar)

		labels = append(labels, pt.Label)
		positions = append(positions, x+width/2)
		x += width + r.Spacing
	}
	drawAxis(c, inner, axis, labels, positions, r.Style)
}

type LineRenderer struct {
	Style
	Padding Padding
	Width   float64
	Point   PointFunc
}

func (r LineRenderer) Render(c Canvas, area Rect, serie Series) {
	r.Style = r.Style.merge(DefaultStyle())
	if r.Padding.zero() {
		r.Padding = DefaultPadding
	}
	if r.Width <= 0 {
		r.Width = 2
	}
	inner := area.Inset(r.Padding)
	if serie.Empty() {
		drawMessage(c, inner, "No data to display", r.Style)
		return
	}
	var (
		points    = serie.Points()
		n         = len(points)
		step      = math.Max(1, inner.W/float64(max(1, n-1)))
		scale     = NumberScaler(Extent(serie.Values()).Widen(), NewRange(inner.Bottom(), inner.Top()))
		labels    = make([]string, 0, n)
		positions = make([]float64, 0, n)
	)
	position := func(i int, pt Point) (float64, float64) {
		return inner.Left() + float64(i)*step, scale.Scale(pt.Finite())
	}
	px, py := position(0, slices.Fst(points))
	r.drawPoint(c, px, py)
	labels = append(labels, slices.Fst(points).Label)
	positions = append(positions, px)
	for i, pt := range slices.Rest(points) {
		x, y := position(i+1, pt)
		c.Line(px, py, x, y, r.Line, r.Width)
		r.drawPoint(c, x, y)

		labels = append(labels, pt.Label)
		positions = append(positions, x)
		px, py = x, y
	}
	drawAxis(c, inner, scale, labels, positions, r.Style)
}

func (r LineRenderer) drawPoint(c Canvas, x, y float64) {
	if r.Point == nil {
		return
	}
	r.Point(c, x, y, r.Line)
}

type PieRenderer struct {
	Style
	Radius float64
}

const (
	legendWidth  = 140
	legendTop    = 40
	legendRow    = 20
	legendSwatch = 12
)

func (r PieRenderer) Render(c Canvas, area Rect, serie Series) {
	r.Style = r.Style.merge(DefaultStyle())
	if serie.Empty() {
		drawMessage(c, area, "No data", r.Style)
		return
	}
	var (
		points = serie.Points()
		angles = PieAngles(serie.Values())
		cx     = area.X + area.W/2
		cy     = area.Y + area.H/2 + 10
		radius = r.Radius
		start  int
	)
	if radius <= 0 {
		radius = math.Max(10, math.Min(area.W, area.H)/4)
	}
	for i, angle := range angles {
		if angle > 0 {
			c.Sector(cx, cy, radius, float64(start), float64(angle), r.Palette.At(i))
		}
		start += angle
	}

	var (
		lx   = area.Right() - legendWidth
		ly   = area.Top() + legendTop
		font = Font{Size: FontSize}
	)
	for i, pt := range points {
		y := ly + float64(i*legendRow)
		c.FillRect(NewRect(lx, y, legendSwatch, legendSwatch), r.Palette.At(i))
		str := fmt.Sprintf("%s (%s)", pt.Label, FormatValue(pt.Finite()))
		c.Text(lx+legendSwatch+6, y+FontSize, str, font, r.Text)
	}
}

// PieAngles gives the angle in degrees of each slice of a pie. Negative and
// missing values count as 0. The last slice receives whatever remains of the
// circle so that the angles always add up to 360.
func PieAngles(values []float64) []int {
	var total float64
	for _, v := range values {
		total += math.Max(0, finite(v))
	}
	if total <= 0 {
		total = 1
	}
	var (
		angles = make([]int, len(values))
		start  int
	)
	for i, v := range values {
		var angle int
		if i == len(values)-1 {
			angle = fullcircle - start
		} else {
			angle = int(math.Round(math.Max(0, finite(v)) / total * fullcircle))
			if rest := fullcircle - start; angle > rest {
				angle = max(0, rest)
			}
		}
		angles[i] = angle
		start += angle
		if start >= fullcircle {
			break
		}
	}
	return angles
}

type BoxRenderer struct {
	Style
	Title     string
	Bins      int
	Quartiles Quartiles
}

const (
	boxLeft    = 40
	boxTop     = 30
	boxBottom  = 40
	boxMinStep = 10
	boxOutlier = 3
)

func (r BoxRenderer) Render(c Canvas, area Rect, serie Series) {
	r.Style = r.Style.merge(DefaultStyle())
	if r.Bins <= 0 {
		r.Bins = DefaultBins
	}
	if r.Title == "" {
		r.Title = "Box Plot"
	}
	var (
		buckets = Bucketize(serie, r.Bins)
		stats   = make([]BoxStats, len(buckets))
		dom     Domain
		found   bool
	)
	for i := range buckets {
		stats[i] = r.Quartiles.Compute(buckets[i].Values)
		if stats[i].Empty() {
			continue
		}
		curr := NumberDomain(stats[i].Min, stats[i].Max)
		if !found {
			dom, found = curr, true
		} else {
			dom = dom.Merge(curr)
		}
	}

	var (
		left   = area.Left() + boxLeft
		top    = area.Top() + boxTop
		bottom = area.Bottom() - boxBottom
		per    = math.Max(boxMinStep, (area.W-2*boxLeft)/float64(max(1, len(buckets))))
	)
	if !found {
		drawMessage(c, NewRect(left, top, area.W, area.H), "No numeric data to display for boxplot", r.Style)
		return
	}
	var (
		scale = NumberScaler(dom, NewRange(bottom, top))
		x     = left + 10
		font  = Font{Size: FontSize}
	)
	for i, st := range stats {
		if st.Empty() {
			x += per
			continue
		}
		var (
			cx   = x + per/2
			yMin = scale.Scale(st.Min)
			yQ1  = scale.Scale(st.Q1)
			yMed = scale.Scale(st.Median)
			yQ3  = scale.Scale(st.Q3)
			yMax = scale.Scale(st.Max)
		)
		c.Line(cx, yMax, cx, yQ3, r.Muted, 1)
		c.Line(cx, yQ1, cx, yMin, r.Muted, 1)

		box := NewRect(cx-per/4, math.Min(yQ1, yQ3), per/2, math.Max(2, math.Abs(yQ3-yQ1)))
		c.FillRect(box, r.Box)
		c.StrokeRect(box, r.Text)
		c.Line(cx-per/4, yMed, cx+per/4, yMed, r.Median, 1)

		for _, v := range st.Outliers {
			c.Circle(cx, scale.Scale(v), boxOutlier, r.Outlier)
		}
		c.Text(cx-per/2+2, bottom+14, buckets[i].Label, font, r.Muted)
		x += per
	}
	c.Text(area.Left()+8, area.Top()+16, r.Title, Font{Size: 14, Bold: true}, r.Muted)
}

func drawAxis(c Canvas, area Rect, scale Scaler, labels []string, positions []float64, style Style) {
	left := NumberAxis{
		Scaler:      scale,
		Color:       style.Text,
		Orientation: OrientLeft,
	}
	bottom := CategoryAxis{
		Labels:      labels,
		Positions:   positions,
		Color:       style.Text,
		Orientation: OrientBottom,
	}
	left.Render(c, area)
	bottom.Render(c, area)
}

func drawMessage(c Canvas, area Rect, str string, style Style) {
	c.Text(area.Left()+10, area.Top()+20, str, Font{Size: FontSize}, style.Muted)
}
