package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
)

var (
	doubleRule = strings.Repeat("═", cli.Width)
	singleRule = strings.Repeat("─", cli.Width)
)

// WriteText writes the plain-text summary used for the saved file.
func WriteText(w io.Writer, f Formatted) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, doubleRule)
	fmt.Fprintln(bw, Title)
	fmt.Fprintln(bw, doubleRule)
	fmt.Fprintf(bw, "Period: %s\n", f.Period)
	fmt.Fprintf(bw, "Scholarship: %s\n", f.Scholarship)
	fmt.Fprintf(bw, "Total days: %s\n", f.TotalDays)
	fmt.Fprintf(bw, "Attendance days: %s\n", f.Attendance)
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "BUDGET")
	fmt.Fprintln(bw, singleRule)

	for _, l := range f.Lines {
		switch l.Kind {
		case KindSubItem:
			fmt.Fprintf(bw, " - %s: %s\n", l.Label, l.Value)
		case KindTotal:
			fmt.Fprintln(bw, singleRule)
			fmt.Fprintf(bw, "%s: %s\n", l.Label, l.Value)
		case KindResult:
			fmt.Fprintf(bw, "Result: %s: %s\n", l.Label, l.Value)
		default:
			fmt.Fprintf(bw, "%s: %s\n", l.Label, l.Value)
		}
	}

	fmt.Fprintln(bw, doubleRule)
	return bw.Flush()
}

// Save overwrites path with the text summary.
func Save(path string, f Formatted) error {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644) //nolint:gosec // user-chosen output path
	if err != nil {
		return fmt.Errorf("creating summary file: %w", err)
	}

	if err := WriteText(file, f); err != nil {
		_ = file.Close()
		return fmt.Errorf("writing summary file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing summary file: %w", err)
	}
	return nil
}
