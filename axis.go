package charts

import (
	"math"
	"strconv"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

type Axis interface {
	Render(Canvas, Rect)
}

type NumberAxis struct {
	Ticks  int
	Scaler Scaler
	Format func(float64) string
	Color  string
	Orientation
}

func (a NumberAxis) Render(c Canvas, area Rect) {
	var (
		ticks  = a.Ticks
		format = a.Format
		color  = a.Color
	)
	if ticks <= 0 {
		ticks = 5
	}
	if format == nil {
		format = FormatValue
	}
	if color == "" {
		color = "black"
	}
	x := area.Left()
	if a.Orientation == OrientRight {
		x = area.Right()
	}
	c.Line(x, area.Top(), x, area.Bottom(), color, 1)

	step := a.Scaler.Extend() / float64(ticks)
	for i := 0; i <= ticks; i++ {
		var (
			val = a.Scaler.Min() + float64(i)*step
			pos = a.Scaler.Scale(val)
		)
		if a.Orientation == OrientRight {
			c.Line(x, pos, x+tickSize, pos, color, 1)
			c.Text(x+tickSize+2, pos+axisFont.Size/3, format(val), axisFont, color)
			continue
		}
		c.Line(x-tickSize, pos, x, pos, color, 1)
		font := axisFont
		font.Anchor = AnchorEnd
		c.Text(x-tickSize-2, pos+axisFont.Size/3, format(val), font, color)
	}
}

type CategoryAxis struct {
	Labels    []string
	Positions []float64
	Color     string
	Orientation
}

func (a CategoryAxis) Render(c Canvas, area Rect) {
	color := a.Color
	if color == "" {
		color = "black"
	}
	y := area.Bottom()
	if a.Orientation == OrientTop {
		y = area.Top()
	}
	c.Line(area.Left(), y, area.Right(), y, color, 1)

	font := Font{
		Size:   FontSize,
		Anchor: AnchorMiddle,
	}
	for i, str := range a.Labels {
		if i >= len(a.Positions) {
			break
		}
		c.Text(a.Positions[i], y+FontSize*1.2, str, font, color)
	}
}

const tickSize = 4

var axisFont = Font{
	Size: FontSize * 0.8,
}

// FormatValue prints v with at most two decimals and no trailing zeros.
func FormatValue(v float64) string {
	v = math.Round(finite(v)*100) / 100
	if v == 0 {
		// negative zero
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
