package cli

import (
	"fmt"
	"strings"

	"github.com/ImJustSebas/University-budget-manager/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Width is the width of titles, separators and the text summary.
const Width = 60

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	dim    lipgloss.Style
	accent lipgloss.Style
	badge  lipgloss.Style
	money  lipgloss.Style
	total  lipgloss.Style
	good   lipgloss.Style
	bad    lipgloss.Style
	warn   lipgloss.Style
	border lipgloss.Color
}

// current builds styles from the active theme, which can change after
// config is loaded.
func current() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		dim:    lipgloss.NewStyle().Foreground(t.Border),
		accent: lipgloss.NewStyle().Foreground(t.Accent),
		badge:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(t.Highlight).Padding(0, 1),
		money:  lipgloss.NewStyle().Foreground(t.Green),
		total:  lipgloss.NewStyle().Bold(true).Foreground(t.Orange),
		good:   lipgloss.NewStyle().Bold(true).Foreground(t.Green),
		bad:    lipgloss.NewStyle().Bold(true).Foreground(t.Red),
		warn:   lipgloss.NewStyle().Foreground(t.Yellow),
		border: t.Border,
	}
}

// Emphasis selects how a table row's value columns are colored.
type Emphasis int

// Row emphasis levels.
const (
	EmphasisNone Emphasis = iota
	EmphasisMoney
	EmphasisTotal
	EmphasisGood
	EmphasisBad
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
	// Emphasis optionally colors the value columns of a row, by row index.
	Emphasis map[int]Emphasis
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	s := current()
	border := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(s.border).
		Width(Width-2).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(s.title.Render(title))
}

// RenderSubtitle renders a muted line centered under a title.
func RenderSubtitle(text string) string {
	return current().muted.Width(Width).Align(lipgloss.Center).Render(text)
}

// RenderBadge renders a highlighted section label.
func RenderBadge(label string) string {
	return current().badge.Render(label)
}

// RenderBullet renders "• label: value" with a colored value.
func RenderBullet(label, value string) string {
	s := current()
	return fmt.Sprintf("%s %s %s", s.accent.Render("•"), s.muted.Render(label+":"), s.money.Render(value))
}

// RenderWarning renders a warning line.
func RenderWarning(msg string) string {
	return current().warn.Render("⚠ " + msg)
}

// RenderError renders an error line.
func RenderError(msg string) string {
	return current().bad.Render("⚠ " + msg)
}

// RenderSuccess renders a confirmation line.
func RenderSuccess(msg string) string {
	return current().good.Render("✓ " + msg)
}

// RenderMuted renders secondary text.
func RenderMuted(text string) string {
	return current().muted.Render(text)
}

// RenderTable renders a bordered table with headers and rows.
// Widths are measured in terminal cells, so symbols like ₡ align.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	s := current()

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			widths[i] = max(widths[i], lipgloss.Width(h))
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols {
					widths[i] = max(widths[i], lipgloss.Width(cell))
				}
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(s.dim.Render(left))
		for i, w := range widths {
			b.WriteString(s.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(s.dim.Render(mid))
			}
		}
		b.WriteString(s.dim.Render(right))
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString(RenderBadge(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(s.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(s.header.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for r, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		valueStyle := emphasisStyle(s, t.Emphasis[r])
		b.WriteString(s.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align value columns (all except first)
			if i == 0 {
				b.WriteString(s.value.Render(" " + padRight(cell, widths[i]) + " "))
			} else {
				b.WriteString(valueStyle.Render(" " + padLeft(cell, widths[i]) + " "))
			}
			if i < numCols-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderProgressBar renders a step indicator such as "Step 2/6 [██████░░░░]".
func RenderProgressBar(step, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(step) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	s := current()
	return fmt.Sprintf("%s [%s%s]",
		s.muted.Render(fmt.Sprintf("Step %d/%d", step, total)),
		s.accent.Render(strings.Repeat("█", filled)),
		s.dim.Render(strings.Repeat("░", width-filled)),
	)
}

func emphasisStyle(s styles, e Emphasis) lipgloss.Style {
	switch e {
	case EmphasisMoney:
		return s.money
	case EmphasisTotal:
		return s.total
	case EmphasisGood:
		return s.good
	case EmphasisBad:
		return s.bad
	default:
		return s.value
	}
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return strings.Repeat(" ", gap) + s
	}
	return s
}
