package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Title"},
		[][]string{
			{"p1", "Short"},
			{"p2", "A longer title"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4, "header, rule, two rows")
	assert.Contains(t, lines[0], "ID")
	assert.Contains(t, lines[1], "─")
	assert.Contains(t, lines[2], "p1")
	assert.Contains(t, lines[3], "A longer title")
}

func TestRenderTable_EmptyInputs(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, nil))
	assert.Contains(t, RenderTable([]string{"ID"}, nil), "(no rows)")
}

func TestRenderTable_ClipsLongCells(t *testing.T) {
	long := strings.Repeat("x", 100)
	out := RenderTable([]string{"Title"}, [][]string{{long}})
	assert.NotContains(t, out, long)
	assert.Contains(t, out, "...")
}

func TestRenderTable_ShortRowsPadOut(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"only"}})
	assert.Contains(t, out, "only")
}
