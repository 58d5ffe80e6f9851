package outwriter

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/tempograph/tempograph/internal/contract"
	"github.com/tempograph/tempograph/schema"
)

// writeCSVTimeline writes the timeline points to a CSV writer.
func writeCSVTimeline(w io.Writer, data *schema.TimelineData, cfg *contract.Config) error {
	_, fmtNullable := createFormatters(cfg.Precision)
	header := []string{
		"property",
		"date",
		"label",
		"value",
		"entries",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, p := range data.Points {
			row := []string{
				data.PropertyID,
				p.Date.Format(contract.DateTimeFormat),
				p.Label,
				fmtNullable(p.Value),
				strings.Join(p.Entries, "|"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
