// Package outwriter has output and writer logic for every aggregate shape.
package outwriter

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tempograph/tempograph/internal/contract"
)

// GetMaxTablePathWidth calculates the maximum width for entry paths in
// table output based on terminal width.
func GetMaxTablePathWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default for narrow terminals and CI
			termWidth = 80
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the fixed columns with borders and padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// entrySummary renders a back-reference list as a single table cell:
// the first entry path (truncated) plus a count of the rest.
func entrySummary(entries []string, maxWidth int) string {
	switch len(entries) {
	case 0:
		return ""
	case 1:
		return contract.TruncatePath(entries[0], maxWidth)
	default:
		return fmt.Sprintf("%s +%d", contract.TruncatePath(entries[0], maxWidth), len(entries)-1)
	}
}
