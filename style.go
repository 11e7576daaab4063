package charts

const currentColour = "currentColor"

const FontSize = 12.0

type Style struct {
	Palette    Palette
	Background string
	Bar        string
	Line       string
	Text       string
	Muted      string
	Box        string
	Median     string
	Outlier    string
}

func DefaultStyle() Style {
	return Style{
		Palette:    Classic,
		Background: "white",
		Bar:        "blue",
		Line:       "red",
		Text:       "black",
		Muted:      "dimgray",
		Box:        "rgba(33,150,243,0.63)",
		Median:     "red",
		Outlier:    "magenta",
	}
}

// merge fills the empty fields of s with the ones of g.
func (s Style) merge(g Style) Style {
	if len(s.Palette) == 0 {
		s.Palette = g.Palette
	}
	if s.Background == "" {
		s.Background = g.Background
	}
	if s.Bar == "" {
		s.Bar = g.Bar
	}
	if s.Line == "" {
		s.Line = g.Line
	}
	if s.Text == "" {
		s.Text = g.Text
	}
	if s.Muted == "" {
		s.Muted = g.Muted
	}
	if s.Box == "" {
		s.Box = g.Box
	}
	if s.Median == "" {
		s.Median = g.Median
	}
	if s.Outlier == "" {
		s.Outlier = g.Outlier
	}
	return s
}
