package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// writeCSVHeatmap writes the heatmap cells to a CSV writer.
func writeCSVHeatmap(w io.Writer, data *schema.HeatmapData, cfg *contract.Config) error {
	_, fmtNullable := createFormatters(cfg.Precision)
	header := []string{
		"property",
		"granularity",
		"bucket_key",
		"date",
		"value",
		"count",
		"entries",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cell := range data.Cells {
			row := []string{
				data.PropertyID,
				string(data.Granularity),
				cell.Key,
				cell.Date.Format(contract.DateTimeFormat),
				fmtNullable(cell.Value),
				fmt.Sprintf("%d", cell.Count),
				strings.Join(cell.Entries, "|"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
