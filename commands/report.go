package commands

import (
	"fmt"
	"io"

	"github.com/pivotal-cf/password-meter/strength"
)

const separator = "--------------------------------------------------"

// writeReport renders an evaluation for the terminal. The password itself
// is never echoed.
func writeReport(w io.Writer, result strength.Result) {
	color := labelColor(result.Label)

	fmt.Fprintln(w, color(fmt.Sprintf("Password Strength: %s", result.Label)))
	fmt.Fprintf(w, "Score: %d/%d (%.1f%%)\n", result.Score, result.MaxScore, result.Percentage)
	fmt.Fprintf(w, "Entropy: %.2f bits\n", result.EntropyBits)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Criteria Check:")
	for _, criterion := range result.Criteria {
		status := green("✓")
		if !criterion.Passed {
			status = red("✗")
		}
		fmt.Fprintf(w, "  %s %s\n", status, criterion.Description)
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Issues Found:")
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  - %s\n", yellow(warning))
		}
	}
}
