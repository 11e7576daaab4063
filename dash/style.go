package dash

import (
	"strings"

	charts "github.com/midbel/tabchart"
)

const (
	PointCircle = "circle"
	PointSquare = "square"
)

type Style struct {
	Palette    string `mapstructure:"palette" yaml:"palette"`
	Background string `mapstructure:"background" yaml:"background,omitempty"`
	Stroke     string `mapstructure:"stroke" yaml:"stroke,omitempty"`
	Point      string `mapstructure:"point" yaml:"point,omitempty"`
}

// Chart builds the chart style. Colors left empty fall back on the ones of
// charts.DefaultStyle.
func (s Style) Chart() (charts.Style, error) {
	pal, err := charts.PaletteByName(s.Palette)
	if err != nil {
		return charts.Style{}, err
	}
	return charts.Style{
		Palette:    pal,
		Background: s.Background,
		Bar:        pal.At(0),
		Line:       s.Stroke,
	}, nil
}

func (s Style) getPointFunc() charts.PointFunc {
	switch strings.ToLower(s.Point) {
	case "", PointCircle:
		return charts.DrawCircle
	case PointSquare:
		return charts.DrawSquare
	default:
		return nil
	}
}
