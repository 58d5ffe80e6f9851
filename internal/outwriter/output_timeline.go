package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/internal/parquet"
	"github.com/tempograph/tempograph/schema"
)

// WriteTimeline outputs the timeline aggregate, dispatching on the configured output format.
func WriteTimeline(cfg *contract.Config, data *schema.TimelineData) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON timeline")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVTimeline(w, data, cfg)
		}, "Wrote CSV timeline")

	case schema.ParquetOut:
		rows := parquet.ConvertTimeline(data)
		if err := parquet.WriteRows(rows, cfg.OutputFile); err != nil {
			return err
		}
		writeParquetNote(cfg.OutputFile, len(rows))
		return nil

	default:
		return printTimelineTable(cfg, data)
	}
}

// printTimelineTable prints one row per timeline point.
func printTimelineTable(cfg *contract.Config, data *schema.TimelineData) error {
	_, fmtNullable := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Date", "Label", "Value", "Entries"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	var rows [][]string
	for _, p := range data.Points {
		rows = append(rows, []string{
			p.Date.Format("2006-01-02"),
			p.Label,
			fmtNullable(p.Value),
			entrySummary(p.Entries, maxWidth),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%s: %d points from %s to %s\n",
		data.DisplayName, len(data.Points),
		data.MinDate.Format("2006-01-02"), data.MaxDate.Format("2006-01-02"))
	return nil
}
