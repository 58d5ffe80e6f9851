package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/parquet"
	"github.com/tempograph/tempograph/schema"
)

// WriteHeatmap outputs the heatmap aggregate, dispatching on the configured output format.
func WriteHeatmap(cfg *contract.Config, data *schema.HeatmapData) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON heatmap")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVHeatmap(w, data, cfg)
		}, "Wrote CSV heatmap")

	case schema.ParquetOut:
		rows := parquet.ConvertHeatmap(data)
		if err := parquet.WriteRows(rows, cfg.OutputFile); err != nil {
			return err
		}
		writeParquetNote(cfg.OutputFile, len(rows))
		return nil

	default:
		return printHeatmapTable(cfg, data)
	}
}

// printHeatmapTable prints the heatmap cells in a four-column table with
// values colored by intensity.
func printHeatmapTable(cfg *contract.Config, data *schema.HeatmapData) error {
	fmtFloat, fmtNullable := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Value", "Count", "Entries"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	paint := intensityPainter(cfg, data.MinValue, data.MaxValue)
	maxWidth := GetMaxTablePathWidth(cfg)

	var rows [][]string
	for _, cell := range data.Cells {
		value := fmtNullable(cell.Value)
		if cell.Value != nil {
			value = paint(*cell.Value, value)
		}
		rows = append(rows, []string{
			cell.Key,
			value,
			fmt.Sprintf("%d", cell.Count),
			entrySummary(cell.Entries, maxWidth),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%s: %d cells at %s granularity, value range %s to %s\n",
		data.DisplayName, len(data.Cells), data.Granularity,
		fmtFloat(data.MinValue), fmtFloat(data.MaxValue))
	return nil
}

// intensityPainter returns a closure coloring a value by its position in
// the [min, max] range: green for the lower third, yellow for the middle,
// red for the upper third.
func intensityPainter(cfg *contract.Config, minValue, maxValue float64) func(float64, string) string {
	if !cfg.UseColors || maxValue <= minValue {
		return func(_ float64, s string) string { return s }
	}
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	span := maxValue - minValue
	return func(v float64, s string) string {
		switch pos := (v - minValue) / span; {
		case pos > 2.0/3.0:
			return red(s)
		case pos > 1.0/3.0:
			return yellow(s)
		default:
			return green(s)
		}
	}
}
