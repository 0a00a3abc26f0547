package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderProgress(t *testing.T) {
	half := RenderProgress(0.5, 10)
	assert.Contains(t, half, " 50%")
	assert.Equal(t, 5, strings.Count(half, filledBlock))
	assert.Equal(t, 5, strings.Count(half, emptyBlock))

	full := RenderProgress(1.0, 10)
	assert.Contains(t, full, "100%")
	assert.Equal(t, 10, strings.Count(full, filledBlock))

	clamped := RenderProgress(1.7, 10)
	assert.Contains(t, clamped, "100%")

	empty := RenderProgress(-0.3, 10)
	assert.Contains(t, empty, "  0%")
	assert.Equal(t, 10, strings.Count(empty, emptyBlock))
}

func TestRenderUploadProgress(t *testing.T) {
	mid := RenderUploadProgress(40, 10)
	assert.Contains(t, mid, " 40%")
	assert.NotContains(t, mid, "✔")

	done := RenderUploadProgress(100, 10)
	assert.Contains(t, done, "✔")
}
