package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/glowup-wallet/backend/internal/domain/entity"
)

const (
	titleWidth       = 52
	progressBarWidth = 20
)

// styles are the lipgloss styles derived from one theme palette.
type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	accent lipgloss.Style
	muted  lipgloss.Style
}

func newStyles(w io.Writer, theme entity.ThemeDescriptor) styles {
	r := lipgloss.NewRenderer(w)
	text := lipgloss.Color(theme.Palette.Text)
	accent := lipgloss.Color(theme.Palette.Accent)

	return styles{
		title: r.NewStyle().
			Bold(true).
			Foreground(text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Width(titleWidth).
			Align(lipgloss.Center).
			Padding(0, 1),
		header: r.NewStyle().Bold(true).Foreground(accent),
		value:  r.NewStyle().Foreground(text),
		accent: r.NewStyle().Foreground(accent),
		muted:  r.NewStyle().Faint(true),
	}
}

// table is a plain column table; the first column is left aligned and the
// rest are right aligned.
type table struct {
	Headers []string
	Rows    [][]string
}

func (s styles) renderTable(t table) string {
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string, style lipgloss.Style) {
		b.WriteString("  ")
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", w-lipgloss.Width(cell))
			if i == 0 {
				b.WriteString(style.Render(cell + pad))
			} else {
				b.WriteString(style.Render(pad + cell))
			}
			if i < len(widths)-1 {
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	writeRow(t.Headers, s.header)
	total := 0
	for _, w := range widths {
		total += w + 2
	}
	b.WriteString("  " + s.muted.Render(strings.Repeat("─", total-2)) + "\n")
	for _, row := range t.Rows {
		writeRow(row, s.value)
	}
	return b.String()
}

// progressBar renders a fixed width bar for a 0..100 percentage.
func (s styles) progressBar(percent int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * progressBarWidth / 100
	return s.accent.Render(strings.Repeat("█", filled)) +
		s.muted.Render(strings.Repeat("░", progressBarWidth-filled)) +
		fmt.Sprintf(" %3d%%", percent)
}

// formatMoney renders an amount as dollars with two decimals.
func formatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}
