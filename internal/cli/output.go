package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorGreen  = lipgloss.Color("82")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("204")
	colorCyan   = lipgloss.Color("14")
)

var (
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleNoun    = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim     = lipgloss.NewStyle().Faint(true)

	colorEnabled = true
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func setColorEnabled(enabled bool) {
	colorEnabled = enabled
}

func render(style lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return style.Render(s)
}

// printInfo prints an informational message
func printInfo(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintln(stdout, msg)
}

// printSuccess prints a success message
func printSuccess(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", render(styleSuccess, "✓"), msg)
}

// printWarning prints a warning message
func printWarning(msg string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "%s %s\n", render(styleWarning, "⚠"), msg)
}

// printWriting prints the per-file status line.
func printWriting(dest string, dryRun bool) {
	if globalQuiet {
		return
	}
	verb := "writing to:"
	if dryRun {
		verb = "would write:"
	}
	fmt.Fprintf(stdout, "%s %s\n", render(styleDim, verb), render(styleNoun, dest))
}

// printCopied prints the per-template status line of apply-all.
func printCopied(src, dst string) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(stdout, "copied: %s :: %s\n", render(styleNoun, src), render(styleNoun, dst))
}

// printError prints an error to stderr. Errors are shown even in quiet mode.
func printError(err error) {
	fmt.Fprintf(stderr, "%s %v\n", render(styleError, "Error:"), err)
}
