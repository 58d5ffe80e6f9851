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

// WriteScatter outputs the scatter aggregate, dispatching on the configured output format.
func WriteScatter(cfg *contract.Config, data *schema.ScatterChartData) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON scatter")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVScatter(w, data, cfg)
		}, "Wrote CSV scatter")

	case schema.ParquetOut:
		rows := parquet.ConvertScatter(data)
		if err := parquet.WriteRows(rows, cfg.OutputFile); err != nil {
			return err
		}
		writeParquetNote(cfg.OutputFile, len(rows))
		return nil

	default:
		return printScatterTable(cfg, data)
	}
}

// printScatterTable prints one row per point.
func printScatterTable(cfg *contract.Config, data *schema.ScatterChartData) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"X", "Y", "Entries"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	var rows [][]string
	for _, p := range data.Points {
		rows = append(rows, []string{
			fmtFloat(p.X),
			fmtFloat(p.Y),
			entrySummary(p.Entries, maxWidth),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%s: %d points\n", data.DisplayName, len(data.Points))
	return nil
}
