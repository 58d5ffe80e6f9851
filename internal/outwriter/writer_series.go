package outwriter

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// writeCSVSeries writes the time-series positions to a CSV writer.
func writeCSVSeries(w io.Writer, data *schema.ChartData, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{
		"property",
		"granularity",
		"dataset",
		"bucket_key",
		"value",
		"entries",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, ds := range data.Datasets {
			for i, label := range data.Labels {
				value := ""
				if i < len(ds.Values) {
					value = fmtFloat(ds.Values[i])
				}
				entries := ""
				if i < len(ds.Entries) {
					entries = strings.Join(ds.Entries[i], "|")
				}
				row := []string{
					data.PropertyID,
					string(data.Granularity),
					ds.Label,
					label,
					value,
					entries,
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
