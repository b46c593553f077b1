package cli

import (
	"os"

	"github.com/fatih/color"

	"navmap"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
)

// printVerdict reports one point's validation result
func printVerdict(label string, p navmap.Point, r navmap.Result) {
	if r.OK {
		_, _ = successColor.Printf("✓ %s (%g,%g): %s\n", label, p.X, p.Y, r)
		return
	}
	_, _ = errorColor.Fprintf(os.Stderr, "✗ %s (%g,%g): %s\n", label, p.X, p.Y, r)
}

// PrintSuccess prints a success message with a checkmark
func PrintSuccess(msg string) {
	_, _ = successColor.Printf("✓ %s\n", msg)
}

// PrintWarning prints a warning message
func PrintWarning(msg string) {
	_, _ = warningColor.Printf("⚠ %s\n", msg)
}
