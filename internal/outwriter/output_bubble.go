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

// WriteBubble outputs the bubble aggregate, dispatching on the configured output format.
func WriteBubble(cfg *contract.Config, data *schema.BubbleChartData) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON bubble chart")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVBubble(w, data, cfg)
		}, "Wrote CSV bubble chart")

	case schema.ParquetOut:
		rows := parquet.ConvertBubble(data)
		if err := parquet.WriteRows(rows, cfg.OutputFile); err != nil {
			return err
		}
		writeParquetNote(cfg.OutputFile, len(rows))
		return nil

	default:
		return printBubbleTable(cfg, data)
	}
}

// printBubbleTable prints one row per bubble.
func printBubbleTable(cfg *contract.Config, data *schema.BubbleChartData) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"X", "Y", "Radius", "Count", "Entries"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	var rows [][]string
	for _, p := range data.Points {
		rows = append(rows, []string{
			fmtFloat(p.X),
			fmtFloat(p.Y),
			fmtFloat(p.R),
			fmt.Sprintf("%d", p.Count),
			entrySummary(p.Entries, maxWidth),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%s: %d bubbles at %s granularity\n", data.DisplayName, len(data.Points), data.Granularity)
	return nil
}
