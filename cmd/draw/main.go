package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	charts "github.com/midbel/tabchart"
	"github.com/midbel/tabchart/dash"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	configFile string
	logLevel   string
	logFormat  string

	format  string
	apply   bool
	fixes   []string
	gallery string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := newRoot().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "draw [input]",
		Short:        "Draw a chart from a CSV file or an xlsx workbook",
		Long:         "draw reads a table, picks the chart that fits two of its columns and writes it as SVG.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runDraw,
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&configFile, "config", "c", "", "configuration file")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	pf.String("sheet", "", "sheet to read from xlsx workbooks")
	pf.String("x", "0", "index or name of the label column")
	pf.String("y", "1", "index or name of the value column")

	fs := root.Flags()
	fs.String("title", "", "chart title")
	fs.Float64("width", dash.DefaultWidth, "chart width")
	fs.Float64("height", dash.DefaultHeight, "chart height")
	fs.String("kind", dash.KindAuto, "chart type (auto, bar, line, pie, box)")
	fs.Int("bins", charts.DefaultBins, "number of bins")
	fs.String("aggregator", charts.AggregateMean.String(), "aggregate function (mean, sum, median, count)")
	fs.Int("threshold", charts.DefaultThreshold, "number of points above which series are aggregated")
	fs.Bool("auto", true, "aggregate large series")
	fs.String("palette", "classic", "color palette (classic, category10, tableau10)")
	fs.String("point", dash.PointCircle, "shape of the points of line charts (circle, square)")
	fs.StringP("output", "o", dash.DefaultPath, "output file, - for stdout")

	recommend := &cobra.Command{
		Use:   "recommend [input]",
		Short: "Print the recommended chart type and why",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRecommend,
	}
	recommend.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json, yaml)")

	clean := &cobra.Command{
		Use:   "clean [input]",
		Short: "List the cleaning suggestions of a table or apply them",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClean,
	}
	clean.Flags().StringVarP(&format, "format", "f", "text", "output format of the suggestions (text, json, yaml)")
	clean.Flags().BoolVar(&apply, "apply", false, "write the cleaned table as CSV")
	clean.Flags().StringSliceVar(&fixes, "fix", []string{"trim", "null", "number"}, "suggestions to keep")
	clean.Flags().StringP("output", "o", dash.Stdout, "output file of the cleaned table")

	galleryCmd := &cobra.Command{
		Use:   "gallery [input]",
		Short: "Draw the columns with every chart type",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGallery,
	}
	galleryCmd.Flags().StringVarP(&gallery, "dir", "d", "gallery", "directory of the charts")
	galleryCmd.Flags().String("title", "", "chart title")
	galleryCmd.Flags().String("palette", "classic", "color palette")

	columns := &cobra.Command{
		Use:   "columns [input]",
		Short: "List the columns of a table",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runColumns,
	}

	config := &cobra.Command{
		Use:   "config",
		Short: "Print the configuration in use",
		Args:  cobra.NoArgs,
		RunE:  runConfig,
	}

	root.AddCommand(recommend, clean, galleryCmd, columns, config)
	return root
}

func setup(cmd *cobra.Command, args []string) (dash.Config, *zap.Logger, error) {
	logger, err := newLogger(logLevel, logFormat)
	if err != nil {
		return dash.Config{}, nil, err
	}
	cfg, err := dash.Load(configFile, cmd.Flags())
	if err != nil {
		return cfg, nil, err
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	return cfg, logger, nil
}

func runDraw(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()
	return cfg.Render(cmd.Context(), logger)
}

type recommendation struct {
	Input string `json:"input" yaml:"input"`
	X     string `json:"x" yaml:"x"`
	Y     string `json:"y" yaml:"y"`

	charts.Recommendation `yaml:",inline"`
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tab, err := cfg.Table(cmd.Context(), logger)
	if err != nil {
		return err
	}
	x, err := dash.SelectColumn(tab, cfg.X)
	if err != nil {
		return err
	}
	y, err := dash.SelectColumn(tab, cfg.Y)
	if err != nil {
		return err
	}
	res := recommendation{
		Input:          cfg.Input,
		X:              tab.Column(x),
		Y:              tab.Column(y),
		Recommendation: charts.Recommend(tab, x, y),
	}
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return encodeJSON(w, res)
	case "yaml":
		return yaml.NewEncoder(w).Encode(res)
	case "text", "":
		fmt.Fprintf(w, "%s: %s\n", res.Kind, res.Explanation())
		return nil
	default:
		return fmt.Errorf("%s: unrecognized format", format)
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tab, err := cfg.Table(cmd.Context(), logger)
	if err != nil {
		return err
	}
	var keep []dash.Fix
	for _, f := range fixes {
		fix, err := parseFix(f)
		if err != nil {
			return err
		}
		keep = append(keep, fix)
	}
	list := dash.Filter(dash.Suggest(tab), keep...)
	logger.Info("cleaning suggestions", zap.Int("count", len(list)))

	if apply {
		out, _ := cmd.Flags().GetString("output")
		return writeCSV(out, dash.Apply(tab, list))
	}
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return encodeJSON(w, list)
	case "yaml":
		return yaml.NewEncoder(w).Encode(list)
	case "text", "":
		tw := tabwriter.NewWriter(w, 1, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "row\tcolumn\tfix\toriginal\tsuggestion")
		for _, s := range list {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%q\t%q\n", s.Row, tab.Column(s.Col), s.Fix, s.Original, s.Value)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("%s: unrecognized format", format)
	}
}

func parseFix(str string) (dash.Fix, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "trim":
		return dash.FixTrim, nil
	case "null":
		return dash.FixNull, nil
	case "number":
		return dash.FixNumber, nil
	default:
		return 0, fmt.Errorf("%s: unrecognized fix", str)
	}
}

func runGallery(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tab, err := cfg.Table(cmd.Context(), logger)
	if err != nil {
		return err
	}
	files, err := cfg.Gallery(cmd.Context(), tab, gallery, logger)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintln(cmd.OutOrStdout(), f)
	}
	return nil
}

func runColumns(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup(cmd, args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tab, err := cfg.Table(cmd.Context(), logger)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 1, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "index\tname\tdistinct\tnumeric\tdates")
	for i := 0; i < tab.ColumnCount(); i++ {
		p := charts.ProfileColumns(tab, i, i)
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%t\n", i, tab.Column(i), p.Cardinality, percent(p.NumericRatio()), p.Temporal())
	}
	return tw.Flush()
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := dash.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	return cfg.Dump(cmd.OutOrStdout())
}

func percent(f float64) string {
	return strconv.FormatFloat(f*100, 'f', 0, 64) + "%"
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(file string, tab *charts.Table) error {
	if file == "" || file == dash.Stdout {
		return encodeCSV(os.Stdout, tab)
	}
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := encodeCSV(f, tab); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeCSV(w io.Writer, tab *charts.Table) error {
	ws := csv.NewWriter(w)
	ws.Write(tab.Columns())
	ws.WriteAll(tab.Rows())
	return ws.Error()
}
