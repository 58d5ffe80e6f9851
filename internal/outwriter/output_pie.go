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

// WritePie outputs the categorical aggregate, dispatching on the configured output format.
func WritePie(cfg *contract.Config, data *schema.PieChartData) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON distribution")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVPie(w, data)
		}, "Wrote CSV distribution")

	case schema.ParquetOut:
		rows := parquet.ConvertPie(data)
		if err := parquet.WriteRows(rows, cfg.OutputFile); err != nil {
			return err
		}
		writeParquetNote(cfg.OutputFile, len(rows))
		return nil

	default:
		return printPieTable(cfg, data)
	}
}

// printPieTable prints one row per category with its share of the total.
func printPieTable(cfg *contract.Config, data *schema.PieChartData) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Label", "Count", "Share", "Entries"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	var rows [][]string
	for _, slice := range data.Slices {
		share := 0.0
		if data.Total > 0 {
			share = float64(slice.Count) / float64(data.Total) * 100
		}
		rows = append(rows, []string{
			slice.Label,
			fmt.Sprintf("%d", slice.Count),
			fmt.Sprintf("%.*f%%", cfg.Precision, share),
			entrySummary(slice.Entries, maxWidth),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%s: %d categories across %d entries\n", data.DisplayName, len(data.Slices), data.Total)
	return nil
}
