package formatter

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestApplyTheme_SwitchesPalettes(t *testing.T) {
	t.Cleanup(func() { ApplyTheme(true) })

	ApplyTheme(false)
	assert.Equal(t, lipgloss.Color("#9d0006"), ColorRed)
	assert.Equal(t, lipgloss.Color("#3c3836"), ColorFg)
	assert.Equal(t, ColorRed, StyleRed.GetForeground(), "styles track the active palette")

	ApplyTheme(true)
	assert.Equal(t, lipgloss.Color("#fb4934"), ColorRed)
	assert.Equal(t, lipgloss.Color("#ebdbb2"), ColorFg)
	assert.Equal(t, ColorRed, StyleRed.GetForeground())
}

func TestTruncID(t *testing.T) {
	long := TruncID("0123456789abcdef")
	assert.Contains(t, long, "01234567")
	assert.NotContains(t, long, "89abcdef")

	assert.Contains(t, TruncID("short"), "short")
}
