package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// maxCellWidth caps a single cell so one long title or URL cannot blow the
// table past the terminal.
const maxCellWidth = 40

const colGap = 2

// RenderTable renders an aligned table with a dim separator under the
// header row. Column widths are measured by visible width, so styled cells
// align correctly. Empty row sets render a placeholder instead of a lonely
// header.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}
	if len(rows) == 0 {
		return renderTableRow(headerCells(headers), columnWidths(headers, rows)) +
			Dim("(no rows)") + "\n"
	}

	widths := columnWidths(headers, rows)

	var b strings.Builder
	b.WriteString(renderTableRow(headerCells(headers), widths))
	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = clipCell(row[i])
			}
		}
		b.WriteString(renderCells(cells, widths))
	}
	return b.String()
}

// columnWidths measures the widest visible cell per column, header
// included, after clipping.
func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(clipCell(row[i])); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func headerCells(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = StyleHeader.Render(h)
	}
	return out
}

// renderTableRow emits a styled row plus the dim rule beneath it.
func renderTableRow(cells []string, widths []int) string {
	out := renderCells(cells, widths)
	var b strings.Builder
	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	return out + b.String() + "\n"
}

func renderCells(cells []string, widths []int) string {
	var b strings.Builder
	for i, cell := range cells {
		b.WriteString(cell)
		if i < len(widths)-1 {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(strings.Repeat(" ", pad+colGap))
		}
	}
	b.WriteString("\n")
	return b.String()
}

// clipCell truncates an unstyled cell to maxCellWidth. Styled cells pass
// through untouched; truncating inside an ANSI sequence would corrupt it.
func clipCell(cell string) string {
	if strings.Contains(cell, "\x1b") {
		return cell
	}
	return Truncate(cell, maxCellWidth)
}
