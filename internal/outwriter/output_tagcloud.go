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

// WriteTagCloud outputs the tag-frequency aggregate, dispatching on the configured output format.
func WriteTagCloud(cfg *contract.Config, data *schema.TagCloudData) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, data)
		}, "Wrote JSON tag cloud")

	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVTagCloud(w, data)
		}, "Wrote CSV tag cloud")

	case schema.ParquetOut:
		rows := parquet.ConvertTagCloud(data)
		if err := parquet.WriteRows(rows, cfg.OutputFile); err != nil {
			return err
		}
		writeParquetNote(cfg.OutputFile, len(rows))
		return nil

	default:
		return printTagCloudTable(cfg, data)
	}
}

// printTagCloudTable prints one row per tag, coloring the busiest tags.
func printTagCloudTable(cfg *contract.Config, data *schema.TagCloudData) error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Tag", "Frequency", "Entries"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	highlight := func(s string) string { return s }
	if cfg.UseColors && data.MaxFrequency > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		highlight = func(s string) string { return cyan(s) }
	}

	maxWidth := GetMaxTablePathWidth(cfg)
	var rows [][]string
	for _, t := range data.Tags {
		tag := t.Tag
		if t.Frequency == data.MaxFrequency {
			tag = highlight(tag)
		}
		rows = append(rows, []string{
			tag,
			fmt.Sprintf("%d", t.Frequency),
			entrySummary(t.Entries, maxWidth),
		})
	}

	if err := table.Bulk(rows); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%s: %d tags, max frequency %d\n", data.DisplayName, len(data.Tags), data.MaxFrequency)
	return nil
}
