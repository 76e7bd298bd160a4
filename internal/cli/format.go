package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/tristan-harris/cbr/internal/engine"
)

var (
	renamedColor = color.New(color.FgGreen, color.Bold)
	arrowColor   = color.New(color.FgGreen)
	removedColor = color.New(color.FgRed, color.Bold)
	trashedColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	summaryColor = color.New(color.FgHiBlack)
)

// StatusPrinter renders per-operation status lines. It implements
// engine.Printer.
type StatusPrinter struct{}

// Renamed prints a two-line rename notice with source and destination.
func (StatusPrinter) Renamed(source, target string) {
	_, _ = renamedColor.Print("Renamed ")
	fmt.Printf("'%s'\n", source)
	_, _ = arrowColor.Print("     ->")
	fmt.Printf(" '%s'\n", target)
}

// Removed prints a deletion notice.
func (StatusPrinter) Removed(name string) {
	_, _ = removedColor.Print("Removed ")
	fmt.Printf("'%s'\n", name)
}

// Trashed prints a trash notice.
func (StatusPrinter) Trashed(name string) {
	_, _ = trashedColor.Print("Trashed ")
	fmt.Printf("'%s'\n", name)
}

// PrintSummary prints the run totals. Idle runs print nothing.
func PrintSummary(result *engine.Result) {
	line := summaryLine(result)
	if line == "" {
		return
	}
	_, _ = summaryColor.Println(line)
}

// summaryLine renders the totals, omitting zero counts. Empty for an
// idle run.
func summaryLine(result *engine.Result) string {
	var parts []string
	if result.Renamed > 0 {
		parts = append(parts, pluralize(result.Renamed, "file renamed", "files renamed"))
	}
	if result.Removed > 0 {
		parts = append(parts, pluralize(result.Removed, "file removed", "files removed"))
	}
	if result.Trashed > 0 {
		parts = append(parts, pluralize(result.Trashed, "file trashed", "files trashed"))
	}
	return strings.Join(parts, ", ")
}

func pluralize(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// PrintError prints an error to stderr.
func PrintError(err error) {
	_, _ = errorColor.Fprint(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, "%v\n", err)
}
