package report

import (
	"strings"

	"github.com/ImJustSebas/University-budget-manager/internal/cli"
)

// RenderTerminal renders the summary for interactive display: title box,
// general information bullets and a bordered budget table.
func RenderTerminal(f Formatted) string {
	var b strings.Builder

	b.WriteString(cli.RenderTitle("BUDGET SUMMARY"))
	b.WriteString("\n")
	b.WriteString(cli.RenderSubtitle("Period: " + f.Period))
	b.WriteString("\n\n")

	b.WriteString(cli.RenderBadge("GENERAL INFORMATION"))
	b.WriteString("\n")
	b.WriteString(cli.RenderBullet("Scholarship", f.Scholarship))
	b.WriteString("\n")
	b.WriteString(cli.RenderBullet("Total days", f.TotalDays))
	b.WriteString("\n")
	b.WriteString(cli.RenderBullet("Attendance days", f.Attendance))
	b.WriteString("\n\n")

	t := cli.Table{
		Title:    "BUDGET",
		Headers:  []string{"Category", "Amount"},
		Emphasis: make(map[int]cli.Emphasis),
	}
	for _, l := range f.Lines {
		switch l.Kind {
		case KindSubItem:
			t.Emphasis[len(t.Rows)] = cli.EmphasisMoney
			t.Rows = append(t.Rows, []string{"  - " + l.Label, l.Value})
		case KindTotal:
			t.Rows = append(t.Rows, []string{"---"})
			t.Emphasis[len(t.Rows)] = cli.EmphasisTotal
			t.Rows = append(t.Rows, []string{l.Label, l.Value})
		case KindResult:
			mark, emph := "✔ ", cli.EmphasisGood
			if f.Deficit {
				mark, emph = "✘ ", cli.EmphasisBad
			}
			t.Emphasis[len(t.Rows)] = emph
			t.Rows = append(t.Rows, []string{"Result", mark + l.Label + ": " + l.Value})
		default:
			t.Emphasis[len(t.Rows)] = cli.EmphasisMoney
			t.Rows = append(t.Rows, []string{l.Label, l.Value})
		}
	}
	b.WriteString(cli.RenderTable(t))

	return b.String()
}
