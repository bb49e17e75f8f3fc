package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/butterflies/internal/chart"
)

func (a *App) View() string {
	mainPane := a.renderMain()
	body := lipgloss.JoinHorizontal(lipgloss.Top, a.renderSidebar(), " ", mainPane)
	return body + "\n" + a.renderStatus() + "\n" + a.renderHelp()
}

// resize recomputes the table height so chart, caption and table share the
// window.
func (a *App) resize() {
	fixed := a.cfg.UI.ChartHeight + 2 // title and tick row
	fixed += 4                        // hover, caption, status, table header
	fixed += lipgloss.Height(a.renderHelp())
	a.table.SetHeight(max(minTableRows, a.height-fixed))
	a.help.Width = a.width
}

func (a *App) mainWidth() int {
	return max(minMainWidth, a.width-sidebarWidth-1)
}

func (a *App) renderMain() string {
	w := a.mainWidth()
	opts := chart.DefaultOptions()
	opts.Title = a.cfg.UI.Title
	opts.Width = w
	opts.Height = a.cfg.UI.ChartHeight
	opts.Selected = a.selected()

	var b strings.Builder
	b.WriteString(chart.RenderStrip(a.view.Points, opts))
	b.WriteString("\n")
	b.WriteString(ansi.Truncate(a.renderHover(), w, "…"))
	b.WriteString("\n")
	b.WriteString(captionStyle.Render(ansi.Truncate(a.cfg.UI.Caption, w, "…")))
	b.WriteString("\n")
	b.WriteString(a.table.View())
	return b.String()
}

// renderHover is the hover label of the selected species.
func (a *App) renderHover() string {
	idx := a.selected()
	if idx < 0 {
		return labelStyle.Render("No species to show.")
	}
	p := a.view.Points[idx]
	parts := []string{
		hoverStyle.Bold(true).Render(p.SpeciesID),
		valueStyle.Render(fmt.Sprintf("%+.1f%%", p.PercentChange)),
		lipgloss.NewStyle().Foreground(lipgloss.Color(string(p.Color))).Render(p.Trend.String()),
	}
	if p.Significant {
		parts = append(parts, toggleOnStyle.Render("significant"))
	}
	return strings.Join(parts, "  ")
}

func (a *App) renderSidebar() string {
	inner := sidebarWidth - 4
	s := a.view.Summary

	check := "[ ]"
	if a.criteria.SignificantOnly {
		check = toggleOnStyle.Render("[x]")
	}

	lines := []string{
		headingStyle.Render("Filters"),
		"",
		labelStyle.Render("Range low   ") + a.low.View(),
		labelStyle.Render("Range high  ") + a.high.View(),
		check + " " + labelStyle.Render("Significant only"),
		"",
		headingStyle.Render("Summary"),
		"",
		countLine("Species shown", s.Shown, inner),
		countLine("Significant trends", s.Significant, inner),
		"",
		countLine("  declining", s.Declining, inner),
		countLine("  stable", s.Stable, inner),
		countLine("  improving", s.Improving, inner),
		"",
		labelStyle.Render(fmt.Sprintf("of %d species", a.view.Total)),
	}
	if a.focus == focusSearch {
		lines = append(lines, "", a.search.View())
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "")
	}

	style := sidebarStyle
	if a.focus == focusLow || a.focus == focusHigh || a.focus == focusSearch {
		style = sidebarFocusStyle
	}
	return style.Width(sidebarWidth - 2).Render(strings.Join(lines, "\n"))
}

func countLine(label string, n, width int) string {
	value := fmt.Sprintf("%d", n)
	gap := max(1, width-lipgloss.Width(label)-lipgloss.Width(value))
	return labelStyle.Render(label) + strings.Repeat(" ", gap) + valueStyle.Render(value)
}

func (a *App) renderStatus() string {
	if a.status == "" {
		return ""
	}
	if a.isErr {
		return errorStyle.Render(ansi.Truncate(a.status, a.width, "…"))
	}
	return statusStyle.Render(ansi.Truncate(a.status, a.width, "…"))
}

func (a *App) renderHelp() string {
	if a.focus != focusTable {
		return a.help.View(a.inputKeys)
	}
	return a.help.View(a.keys)
}
