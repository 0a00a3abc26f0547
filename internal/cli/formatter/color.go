package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/foliohq/folio/internal/domain"
)

// palette holds one set of Gruvbox colors.
type palette struct {
	green, yellow, red, blue, purple, dim, fg, header lipgloss.Color
}

var darkPalette = palette{
	green:  lipgloss.Color("#8ec07c"),
	yellow: lipgloss.Color("#fabd2f"),
	red:    lipgloss.Color("#fb4934"),
	blue:   lipgloss.Color("#83a598"),
	purple: lipgloss.Color("#d3869b"),
	dim:    lipgloss.Color("#928374"),
	fg:     lipgloss.Color("#ebdbb2"),
	header: lipgloss.Color("#fe8019"),
}

var lightPalette = palette{
	green:  lipgloss.Color("#427b58"),
	yellow: lipgloss.Color("#b57614"),
	red:    lipgloss.Color("#9d0006"),
	blue:   lipgloss.Color("#076678"),
	purple: lipgloss.Color("#8f3f71"),
	dim:    lipgloss.Color("#7c6f64"),
	fg:     lipgloss.Color("#3c3836"),
	header: lipgloss.Color("#af3a03"),
}

// Active color palette, dark by default. Switched by ApplyTheme.
var (
	ColorGreen  = darkPalette.green
	ColorYellow = darkPalette.yellow
	ColorRed    = darkPalette.red
	ColorBlue   = darkPalette.blue
	ColorPurple = darkPalette.purple
	ColorDim    = darkPalette.dim
	ColorFg     = darkPalette.fg
	ColorHeader = darkPalette.header
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ApplyTheme switches the active palette and rebuilds the shared styles.
// Views pick the change up on their next render.
func ApplyTheme(dark bool) {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	ColorGreen = p.green
	ColorYellow = p.yellow
	ColorRed = p.red
	ColorBlue = p.blue
	ColorPurple = p.purple
	ColorDim = p.dim
	ColorFg = p.fg
	ColorHeader = p.header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// StatusPill returns a colored status indicator for project status.
func StatusPill(status domain.ProjectStatus) string {
	switch status {
	case domain.ProjectPlanned:
		return StyleBlue.Render("○ Planned")
	case domain.ProjectInProgress:
		return StyleGreen.Render("● In Progress")
	case domain.ProjectCompleted:
		return StyleDim.Render("✔ Completed")
	case domain.ProjectOnHold:
		return StyleYellow.Render("◌ On Hold")
	default:
		return StyleDim.Render(string(status))
	}
}

// PriorityPill returns a colored priority indicator.
func PriorityPill(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return StyleRed.Render("▲ High")
	case domain.PriorityMedium:
		return StyleYellow.Render("■ Medium")
	case domain.PriorityLow:
		return StyleDim.Render("▽ Low")
	default:
		return StyleDim.Render(string(p))
	}
}

// FavoriteMark returns the favorites indicator for a list row.
func FavoriteMark(favorited bool) string {
	if favorited {
		return StyleYellow.Render("★")
	}
	return " "
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
