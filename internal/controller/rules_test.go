package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequired(t *testing.T) {
	rule := Required("Title")
	assert.NotEmpty(t, rule("", nil))
	assert.NotEmpty(t, rule("   ", nil))
	assert.Empty(t, rule("Project X", nil))
}

func TestNumeric_UsesTolerantExtraction(t *testing.T) {
	rule := Numeric("Budget")

	tests := []struct {
		value string
		valid bool
	}{
		{"", true}, // optional
		{"1234", true},
		{"$12,500.50", true},
		{"10,000+", true},
		{"lots", false},
		{"$", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			msg := rule(tt.value, nil)
			if tt.valid {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}

func TestIntRange(t *testing.T) {
	rule := IntRange("Progress", 0, 100)
	assert.Empty(t, rule("0", nil))
	assert.Empty(t, rule("100", nil))
	assert.NotEmpty(t, rule("101", nil))
	assert.NotEmpty(t, rule("-1", nil))
	assert.NotEmpty(t, rule("half", nil))
}

func TestURLField(t *testing.T) {
	rule := URLField("Live URL")
	assert.Empty(t, rule("", nil))
	assert.Empty(t, rule("https://example.com/app", nil))
	assert.Empty(t, rule("http://localhost:3000", nil))
	assert.NotEmpty(t, rule("ftp://example.com", nil))
	assert.NotEmpty(t, rule("not a url", nil))
	assert.NotEmpty(t, rule("https://", nil))
}

func TestDateISO(t *testing.T) {
	rule := DateISO("Start date")
	assert.Empty(t, rule("2026-02-28", nil))
	assert.NotEmpty(t, rule("2026-02-30", nil))
	assert.NotEmpty(t, rule("28/02/2026", nil))
	assert.NotEmpty(t, rule("2026-2-8", nil))
}

func TestNotBeforeField_SkipsWhenEitherDateInvalid(t *testing.T) {
	rule := NotBeforeField("End date", "startDate", "start date")

	// Garbage dates are DateISO's problem, not the cross-field rule's.
	assert.Empty(t, rule("soon", map[string]string{"startDate": "2026-01-01"}))
	assert.Empty(t, rule("2026-01-01", map[string]string{"startDate": "whenever"}))
	assert.Empty(t, rule("2026-01-01", map[string]string{}))

	assert.NotEmpty(t, rule("2025-12-31", map[string]string{"startDate": "2026-01-01"}))
}

func TestAtMostField(t *testing.T) {
	rule := AtMostField("GPA", "maxGpa", "max GPA")
	assert.Empty(t, rule("3.8", map[string]string{"maxGpa": "4.0"}))
	assert.Empty(t, rule("4.0", map[string]string{"maxGpa": "4.0"}))
	assert.NotEmpty(t, rule("4.1", map[string]string{"maxGpa": "4.0"}))
	assert.Empty(t, rule("4.1", map[string]string{}), "no ceiling configured")
}
