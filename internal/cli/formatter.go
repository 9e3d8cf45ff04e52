package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/idelchi/fsaudit/internal/audit"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintReport writes the duplicate, large-file and suspicious-name sections.
// Every header is printed even when its section is empty.
//
//nolint:forbidigo // This function prints output to the console.
func PrintReport(result *audit.Result, thresholdMB float64, writer io.Writer, useColor bool) error {
	header := color.New(color.FgCyan, color.Bold)
	if useColor {
		header.EnableColor()
	} else {
		header.DisableColor()
	}

	w := bufio.NewWriter(writer)

	fmt.Fprintf(w, "\n%s\n", header.Sprint("=== Duplicate Files ==="))

	for _, group := range result.Duplicates {
		fmt.Fprintf(w, "%s:\n", group.Name)

		for _, p := range group.Paths {
			fmt.Fprintf(w, "  - %s\n", p)
		}
	}

	fmt.Fprintf(w, "\n%s\n", header.Sprintf("=== Large Files (>%sMB) ===", formatThreshold(thresholdMB)))

	for _, f := range result.LargeFiles {
		fmt.Fprintf(w, "%s - %.2f MB\n", f.Path, f.SizeMB)
	}

	fmt.Fprintf(w, "\n%s\n", header.Sprint("=== Suspicious File Names ==="))

	for _, s := range result.Suspicious {
		fmt.Fprintln(w, s.Path)
	}

	return w.Flush()
}

// formatThreshold renders the threshold with at most two decimals.
func formatThreshold(mb float64) string {
	return strconv.FormatFloat(math.Round(mb*100)/100, 'f', -1, 64)
}

// PrintSummary outputs scan statistics in a small table.
func PrintSummary(result *audit.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "\nStats:\t\t")
	fmt.Fprintf(w, "Total files:\t%d\n", result.FilesScanned)
	fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n",
		humanize.IBytes(uint64(result.TotalBytes)), result.TotalBytes) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(w, "Duplicate names:\t%d\n", len(result.Duplicates))
	fmt.Fprintf(w, "Size errors:\t%d\n", result.SizeErrors)

	if result.SkippedDirs > 0 {
		fmt.Fprintf(w, "Skipped directories:\t%d\n", result.SkippedDirs)
	}

	fmt.Fprintf(w, "\nElapsed:\t%v\n", result.Elapsed)

	return w.Flush()
}
