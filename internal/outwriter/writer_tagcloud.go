package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/tempograph/tempograph/schema"
)

// writeCSVTagCloud writes the tag counts to a CSV writer.
func writeCSVTagCloud(w io.Writer, data *schema.TagCloudData) error {
	header := []string{
		"property",
		"tag",
		"frequency",
		"entries",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, t := range data.Tags {
			row := []string{
				data.PropertyID,
				t.Tag,
				fmt.Sprintf("%d", t.Frequency),
				strings.Join(t.Entries, "|"),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
