package charts

// Rect is a region of the drawing surface. The origin is the top left corner
// and y grows downward.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{
		X: x,
		Y: y,
		W: w,
		H: h,
	}
}

func (r Rect) Left() float64 {
	return r.X
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Top() float64 {
	return r.Y
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Inset shrinks the rect by the given padding.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X: r.X + p.Left,
		Y: r.Y + p.Top,
		W: r.W - p.Horizontal(),
		H: r.H - p.Vertical(),
	}
}

type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

type Font struct {
	Size   float64
	Bold   bool
	Anchor Anchor
}

// Canvas receives the drawing commands of the renderers. Angles are in
// degrees, counter clockwise from the positive x axis.
type Canvas interface {
	FillRect(Rect, string)
	StrokeRect(Rect, string)
	Line(x1, y1, x2, y2 float64, color string, width float64)
	Sector(cx, cy, radius, start, extent float64, color string)
	Circle(cx, cy, radius float64, color string)
	Text(x, y float64, str string, font Font, color string)
}

type Op int

const (
	OpFillRect Op = iota
	OpStrokeRect
	OpLine
	OpSector
	OpCircle
	OpText
)

func (o Op) String() string {
	switch o {
	case OpFillRect:
		return "fill-rect"
	case OpStrokeRect:
		return "stroke-rect"
	case OpLine:
		return "line"
	case OpSector:
		return "sector"
	case OpCircle:
		return "circle"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Command is one recorded drawing call. Args keeps the numeric arguments in
// the order of the matching Canvas method.
type Command struct {
	Op
	Args  []float64
	Text  string
	Color string
	Font
}

// Recorder is a Canvas keeping every call it receives.
type Recorder struct {
	Commands []Command
}

func (r *Recorder) FillRect(rec Rect, color string) {
	r.push(Command{Op: OpFillRect, Args: []float64{rec.X, rec.Y, rec.W, rec.H}, Color: color})
}

func (r *Recorder) StrokeRect(rec Rect, color string) {
	r.push(Command{Op: OpStrokeRect, Args: []float64{rec.X, rec.Y, rec.W, rec.H}, Color: color})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, color string, width float64) {
	r.push(Command{Op: OpLine, Args: []float64{x1, y1, x2, y2, width}, Color: color})
}

func (r *Recorder) Sector(cx, cy, radius, start, extent float64, color string) {
	r.push(Command{Op: OpSector, Args: []float64{cx, cy, radius, start, extent}, Color: color})
}

func (r *Recorder) Circle(cx, cy, radius float64, color string) {
	r.push(Command{Op: OpCircle, Args: []float64{cx, cy, radius}, Color: color})
}

func (r *Recorder) Text(x, y float64, str string, font Font, color string) {
	r.push(Command{Op: OpText, Args: []float64{x, y}, Text: str, Font: font, Color: color})
}

func (r *Recorder) Filter(op Op) []Command {
	var list []Command
	for _, c := range r.Commands {
		if c.Op == op {
			list = append(list, c)
		}
	}
	return list
}

func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

func (r *Recorder) push(c Command) {
	r.Commands = append(r.Commands, c)
}
