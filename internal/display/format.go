// Package display formats the human-readable run output.
package display

import "fmt"

// SummaryLine is the one line printed to stdout after a successful run.
func SummaryLine(changed int) string {
	return fmt.Sprintf("%d entries changed", changed)
}

// DoneLine is the closing log line of a run.
func DoneLine(changed, errors int, logPath string) string {
	return fmt.Sprintf("Done: %d changed, %d %s, log: %s", changed, errors, plural(errors, "error", "errors"), logPath)
}

// YesNo renders a boolean setting for the run header.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
