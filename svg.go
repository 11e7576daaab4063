package charts

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/svg"
)

const (
	fullcircle = 360.0
	halfcircle = 180.0
	deg2rad    = math.Pi / halfcircle
)

// SVGCanvas is a Canvas producing an SVG document.
type SVGCanvas struct {
	Width  float64
	Height float64

	grp svg.Group
}

func NewSVGCanvas(width, height float64) *SVGCanvas {
	return &SVGCanvas{
		Width:  width,
		Height: height,
		grp:    getBaseGroup("", "chart"),
	}
}

func (c *SVGCanvas) FillRect(r Rect, color string) {
	var el svg.Rect
	el.Pos = svg.NewPos(r.X, r.Y)
	el.Dim = svg.NewDim(r.W, r.H)
	el.Fill = svg.NewFill(color)
	c.grp.Append(el.AsElement())
}

func (c *SVGCanvas) StrokeRect(r Rect, color string) {
	c.Line(r.Left(), r.Top(), r.Right(), r.Top(), color, 1)
	c.Line(r.Right(), r.Top(), r.Right(), r.Bottom(), color, 1)
	c.Line(r.Right(), r.Bottom(), r.Left(), r.Bottom(), color, 1)
	c.Line(r.Left(), r.Bottom(), r.Left(), r.Top(), color, 1)
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, color string, width float64) {
	li := svg.NewLine(svg.NewPos(x1, y1), svg.NewPos(x2, y2))
	li.Stroke = svg.NewStroke(color, width)
	c.grp.Append(li.AsElement())
}

func (c *SVGCanvas) Sector(cx, cy, radius, start, extent float64, color string) {
	if extent <= 0 || radius <= 0 {
		return
	}
	if extent >= fullcircle {
		c.Circle(cx, cy, radius, color)
		return
	}
	var (
		center = svg.NewPos(cx, cy)
		pos1   = getPosFromAngle(center, start*deg2rad, radius)
		pos2   = getPosFromAngle(center, (start+extent)*deg2rad, radius)
		pat    svg.Path
	)
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(color)
	pat.AbsMoveTo(center)
	pat.AbsLineTo(pos1)
	pat.AbsArcTo(pos2, radius, radius, 0, extent > halfcircle, false)
	pat.ClosePath()
	c.grp.Append(pat.AsElement())
}

func (c *SVGCanvas) Circle(cx, cy, radius float64, color string) {
	var el svg.Circle
	el.Pos = svg.NewPos(cx, cy)
	el.Radius = radius
	el.Fill = svg.NewFill(color)
	c.grp.Append(el.AsElement())
}

func (c *SVGCanvas) Text(x, y float64, str string, font Font, color string) {
	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(x, y)
	txt.Font = svg.NewFont(font.Size)
	switch font.Anchor {
	case AnchorMiddle:
		txt.Anchor = "middle"
	case AnchorEnd:
		txt.Anchor = "end"
	default:
		txt.Anchor = "start"
	}
	grp := getBaseGroup(color, "text")
	if font.Bold {
		grp.Class = append(grp.Class, "bold")
	}
	grp.Append(txt.AsElement())
	c.grp.Append(grp.AsElement())
}

func (c *SVGCanvas) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true
	el.Append(c.grp.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}

// getPosFromAngle flips the sine so that positive angles turn counter
// clockwise on a surface where y grows downward.
func getPosFromAngle(center svg.Pos, angle, radius float64) svg.Pos {
	var (
		x = center.X + radius*math.Cos(angle)
		y = center.Y - radius*math.Sin(angle)
	)
	return svg.NewPos(x, y)
}
