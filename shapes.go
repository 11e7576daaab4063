package charts

var DefaultSize float64 = 6

type PointFunc func(Canvas, float64, float64, string)

func DrawCircle(c Canvas, x, y float64, color string) {
	c.Circle(x, y, DefaultSize/2, color)
}

func DrawSquare(c Canvas, x, y float64, color string) {
	half := DefaultSize / 2
	c.FillRect(NewRect(x-half, y-half, DefaultSize, DefaultSize), color)
}
