package dash

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charts "github.com/midbel/tabchart"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const Stdout = "-"

// Plan is the outcome of preparing a chart from a table: the chart to draw,
// the series it draws and why its type was selected.
type Plan struct {
	Chart          charts.Chart
	Serie          charts.Series
	Recommendation charts.Recommendation
	Aggregated     bool
}

func (c Config) Source() (DataSource, error) {
	if c.Input == "" {
		return nil, fmt.Errorf("input: %w", ErrEmpty)
	}
	return Open(c.Input, c.Sheet)
}

func (c Config) Table(ctx context.Context, logger *zap.Logger) (*charts.Table, error) {
	logger = nopIfNil(logger)
	src, err := c.Source()
	if err != nil {
		return nil, err
	}
	tab, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("source loaded",
		zap.String("input", c.Input),
		zap.Int("rows", tab.RowCount()),
		zap.Int("columns", tab.ColumnCount()),
	)
	return tab, nil
}

// Plan builds the chart for the configured columns of tab. The chart type
// comes from the recommender unless the configuration names one.
func (c Config) Plan(tab *charts.Table, logger *zap.Logger) (Plan, error) {
	logger = nopIfNil(logger)
	var p Plan
	if tab.RowCount() == 0 {
		return p, fmt.Errorf("%s: %w", c.Input, ErrEmpty)
	}
	x, y, err := c.columns(tab)
	if err != nil {
		return p, err
	}
	p.Recommendation = charts.Recommend(tab, x, y)

	kind := p.Recommendation.Kind
	if !c.Recommended() {
		k, err := charts.ParseKind(c.Kind)
		if err != nil {
			return p, fmt.Errorf("%s: %w", c.Kind, ErrKind)
		}
		kind = k
	}
	logger.Debug("chart type selected",
		zap.Stringer("kind", kind),
		zap.Stringer("recommended", p.Recommendation.Kind),
		zap.Strings("reasons", p.Recommendation.Reasons),
	)
	p.Chart, p.Serie, p.Aggregated = c.build(kind, tab.Project(x, y))
	if p.Aggregated {
		logger.Info("series aggregated",
			zap.Int("points", tab.RowCount()),
			zap.Int("bins", p.Serie.Len()),
			zap.Stringer("aggregator", p.Chart.Aggregator),
		)
	}
	return p, nil
}

func (c Config) build(kind charts.Kind, serie charts.Series) (charts.Chart, charts.Series, bool) {
	style, _ := c.Style.Chart()
	ch := charts.Chart{
		Title:   c.Title,
		Width:   c.Width,
		Height:  c.Height,
		Padding: c.Pad,
		Point:   c.getPointFunc(),
		Style:   style,
		Options: c.Options(kind),
	}
	serie, ok := charts.Prepare(serie, ch.Options)
	ch.Auto = false
	return ch, serie, ok
}

// Render loads the input, draws the chart and writes the SVG document to the
// configured output.
func (c Config) Render(ctx context.Context, logger *zap.Logger) error {
	logger = nopIfNil(logger)
	tab, err := c.Table(ctx, logger)
	if err != nil {
		return err
	}
	p, err := c.Plan(tab, logger)
	if err != nil {
		return err
	}
	if err := writeChart(c.Path, p); err != nil {
		return err
	}
	logger.Info("chart written", zap.String("output", c.Path), zap.Stringer("kind", p.Chart.Kind))
	return nil
}

// Gallery draws the configured columns of tab once per chart type. The charts
// are rendered concurrently in dir and the written files are returned in the
// order of charts.Kinds.
func (c Config) Gallery(ctx context.Context, tab *charts.Table, dir string, logger *zap.Logger) ([]string, error) {
	logger = nopIfNil(logger)
	if tab.RowCount() == 0 {
		return nil, fmt.Errorf("%s: %w", c.Input, ErrEmpty)
	}
	x, y, err := c.columns(tab)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var (
		serie = tab.Project(x, y)
		files = make([]string, len(charts.Kinds))
		base  = galleryBase(c.Input)
	)
	grp, ctx := errgroup.WithContext(ctx)
	for i, kind := range charts.Kinds {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var p Plan
			p.Chart, p.Serie, p.Aggregated = c.build(kind, serie)
			if p.Chart.Title == "" {
				p.Chart.Title = fmt.Sprintf("%s (%s)", serie.Name(), kind)
			}
			file := filepath.Join(dir, fmt.Sprintf("%s-%s.svg", base, kind))
			if err := writeChart(file, p); err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			logger.Debug("gallery chart written", zap.String("output", file), zap.Bool("aggregated", p.Aggregated))
			files[i] = file
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

func (c Config) columns(tab *charts.Table) (int, int, error) {
	x, err := SelectColumn(tab, c.X)
	if err != nil {
		return 0, 0, err
	}
	y, err := SelectColumn(tab, c.Y)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func galleryBase(input string) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." || base == "/" {
		base = "chart"
	}
	return base
}

func writeChart(file string, p Plan) error {
	if file == "" || file == Stdout {
		return p.Chart.Render(os.Stdout, p.Serie)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := p.Chart.Render(f, p.Serie); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func nopIfNil(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
