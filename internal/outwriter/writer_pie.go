package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tempograph/tempograph/schema"
)

// writeCSVPie writes the categorical slices to a CSV writer.
func writeCSVPie(w io.Writer, data *schema.PieChartData) error {
	header := []string{
		"property",
		"label",
		"count",
		"entries",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, slice := range data.Slices {
			row := []string{
				data.PropertyID,
				slice.Label,
				fmt.Sprintf("%d", slice.Count),
				strings.Join(slice.Entries, "|"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
