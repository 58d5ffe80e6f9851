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

// WriteSeries outputs the time-series aggregate, dispatching on the configured output format.
func WriteSeries(cfg *contract.Config, data *schema.ChartData) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON series")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVSeries(w, data, cfg)
		}, "Wrote CSV series")

	case schema.ParquetOut:
		rows := parquet.ConvertSeries(data)
		if err := parquet.WriteRows(rows, cfg.OutputFile); err != nil {
			return err
		}
		writeParquetNote(cfg.OutputFile, len(rows))
		return nil

	default:
		return printSeriesTable(cfg, data)
	}
}

// printSeriesTable prints one row per bucket per dataset.
func printSeriesTable(cfg *contract.Config, data *schema.ChartData) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Period", "Dataset", "Value", "Entries"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTablePathWidth(cfg)
	var rows [][]string
	for _, ds := range data.Datasets {
		for i, label := range data.Labels {
			row := []string{label, ds.Label, "", ""}
			if i < len(ds.Values) {
				row[2] = fmtFloat(ds.Values[i])
			}
			if i < len(ds.Entries) {
				row[3] = entrySummary(ds.Entries[i], maxWidth)
			}
			rows = append(rows, row)
		}
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%d buckets at %s granularity\n", len(data.Labels), data.Granularity)
	return nil
}
