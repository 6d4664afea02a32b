package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	accent = lipgloss.Color("#1E88E5")

	panelStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#555555"))
	valueStyle = lipgloss.NewStyle().Bold(true)

	noticeStyles = map[string]lipgloss.Style{
		"success": lipgloss.NewStyle().Foreground(lipgloss.Color("#2E7D32")),
		"info":    lipgloss.NewStyle().Foreground(lipgloss.Color("#1565C0")),
		"warning": lipgloss.NewStyle().Foreground(lipgloss.Color("#EF6C00")),
	}
)

// field is one label/value line of a panel.
type field struct {
	Label string
	Value string
}

// panel renders a bordered box with a title and aligned label/value lines.
func panel(title string, fields []field, footer ...string) string {
	width := 0
	for _, f := range fields {
		if w := lipgloss.Width(f.Label); w > width {
			width = w
		}
	}

	lines := []string{titleStyle.Render(title), ""}
	for _, f := range fields {
		label := labelStyle.Width(width).Render(f.Label)
		lines = append(lines, label+"  "+valueStyle.Render(f.Value))
	}
	if len(footer) > 0 {
		lines = append(lines, "")
		lines = append(lines, footer...)
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// notice renders msg in the colour for level ("success", "info", "warning").
func notice(level, msg string) string {
	style, ok := noticeStyles[level]
	if !ok {
		return msg
	}
	return style.Render(msg)
}

// table renders rows under a header with columns padded to their widest cell.
func table(header []string, rows [][]string) string {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			if w := lipgloss.Width(c); i < len(widths) && w > widths[i] {
				widths[i] = w
			}
		}
	}

	render := func(cells []string, style lipgloss.Style) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = style.Width(widths[i]).Render(c)
		}
		return strings.Join(parts, "  ")
	}

	lines := []string{render(header, titleStyle)}
	for _, row := range rows {
		lines = append(lines, render(row, lipgloss.NewStyle()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
