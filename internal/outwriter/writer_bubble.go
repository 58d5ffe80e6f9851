package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// writeCSVBubble writes the bubble points to a CSV writer.
func writeCSVBubble(w io.Writer, data *schema.BubbleChartData, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	header := []string{
		"property",
		"granularity",
		"x",
		"y",
		"r",
		"count",
		"entries",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range data.Points {
			row := []string{
				data.PropertyID,
				string(data.Granularity),
				fmtFloat(p.X),
				fmtFloat(p.Y),
				fmtFloat(p.R),
				fmt.Sprintf("%d", p.Count),
				strings.Join(p.Entries, "|"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
