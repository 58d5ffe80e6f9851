package outwriter

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// writeCSVScatter writes the scatter points to a CSV writer.
func writeCSVScatter(w io.Writer, data *schema.ScatterChartData, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{
		"property",
		"x",
		"y",
		"entries",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range data.Points {
			row := []string{
				data.PropertyID,
				fmtFloat(p.X),
				fmtFloat(p.Y),
				strings.Join(p.Entries, "|"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
