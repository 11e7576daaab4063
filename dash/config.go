package dash

import (
	"errors"
	"fmt"
	"io"
	"strings"

	charts "github.com/midbel/tabchart"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultPath   = "out.svg"
)

const (
	MinBins = 2
	MaxBins = 200

	KindAuto = "auto"

	EnvPrefix = "tabchart"
)

var (
	ErrScheme    = errors.New("unsupported scheme")
	ErrEmpty     = errors.New("no data")
	ErrKind      = errors.New("unknown chart type")
	ErrAggregate = errors.New("unknown aggregator")
	ErrSize      = errors.New("invalid size")
)

type Config struct {
	Title  string         `mapstructure:"title" yaml:"title"`
	Width  float64        `mapstructure:"width" yaml:"width"`
	Height float64        `mapstructure:"height" yaml:"height"`
	Pad    charts.Padding `mapstructure:"padding" yaml:"padding"`

	Input string `mapstructure:"input" yaml:"input"`
	Sheet string `mapstructure:"sheet" yaml:"sheet,omitempty"`
	X     string `mapstructure:"x" yaml:"x"`
	Y     string `mapstructure:"y" yaml:"y"`

	Kind       string `mapstructure:"kind" yaml:"kind"`
	Bins       int    `mapstructure:"bins" yaml:"bins"`
	Aggregator string `mapstructure:"aggregator" yaml:"aggregator"`
	Threshold  int    `mapstructure:"threshold" yaml:"threshold"`
	Auto       bool   `mapstructure:"auto" yaml:"auto"`

	Style `mapstructure:",squash" yaml:",inline"`
	Path  string `mapstructure:"output" yaml:"output"`
}

func Default() Config {
	return Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Pad:        charts.DefaultPadding,
		X:          "0",
		Y:          "1",
		Kind:       KindAuto,
		Bins:       charts.DefaultBins,
		Aggregator: charts.AggregateMean.String(),
		Threshold:  charts.DefaultThreshold,
		Auto:       true,
		Style: Style{
			Palette: "classic",
			Point:   PointCircle,
		},
		Path: DefaultPath,
	}
}

// Load reads the configuration from the defaults, then the given file, then
// the TABCHART_* environment variables and finally the flags that were set.
func Load(file string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s: %w", file, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, err
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding configuration: %w", err)
	}
	cfg.Bins = ClampBins(cfg.Bins)
	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("title", cfg.Title)
	v.SetDefault("width", cfg.Width)
	v.SetDefault("height", cfg.Height)
	v.SetDefault("padding.top", cfg.Pad.Top)
	v.SetDefault("padding.right", cfg.Pad.Right)
	v.SetDefault("padding.bottom", cfg.Pad.Bottom)
	v.SetDefault("padding.left", cfg.Pad.Left)
	v.SetDefault("input", cfg.Input)
	v.SetDefault("sheet", cfg.Sheet)
	v.SetDefault("x", cfg.X)
	v.SetDefault("y", cfg.Y)
	v.SetDefault("kind", cfg.Kind)
	v.SetDefault("bins", cfg.Bins)
	v.SetDefault("aggregator", cfg.Aggregator)
	v.SetDefault("threshold", cfg.Threshold)
	v.SetDefault("auto", cfg.Auto)
	v.SetDefault("palette", cfg.Palette)
	v.SetDefault("background", cfg.Background)
	v.SetDefault("stroke", cfg.Stroke)
	v.SetDefault("point", cfg.Point)
	v.SetDefault("output", cfg.Path)
}

func ClampBins(n int) int {
	return max(MinBins, min(n, MaxBins))
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%gx%g: %w", c.Width, c.Height, ErrSize)
	}
	if !c.Recommended() {
		if _, err := charts.ParseKind(c.Kind); err != nil {
			return fmt.Errorf("%s: %w", c.Kind, ErrKind)
		}
	}
	if _, err := charts.ParseAggregator(c.Aggregator); err != nil {
		return fmt.Errorf("%s: %w", c.Aggregator, ErrAggregate)
	}
	if _, err := charts.PaletteByName(c.Palette); err != nil {
		return err
	}
	if c.getPointFunc() == nil {
		return fmt.Errorf("%s: unknown point shape", c.Point)
	}
	return nil
}

// Recommended reports whether the chart type has to be chosen from the data.
func (c Config) Recommended() bool {
	return c.Kind == "" || strings.EqualFold(c.Kind, KindAuto)
}

func (c Config) Options(kind charts.Kind) charts.Options {
	agg, _ := charts.ParseAggregator(c.Aggregator)
	return charts.Options{
		Kind:       kind,
		Bins:       ClampBins(c.Bins),
		Aggregator: agg,
		Threshold:  c.Threshold,
		Auto:       c.Auto,
	}
}

func (c Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}
