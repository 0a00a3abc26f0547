package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRelativeTimeFrom_Buckets(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ago  time.Duration
		want string
	}{
		{"seconds", 30 * time.Second, "just now"},
		{"just under a minute", 59 * time.Second, "just now"},
		{"one minute", 90 * time.Second, "1 minute ago"},
		{"minutes", 5 * time.Minute, "5 minutes ago"},
		{"one hour", 61 * time.Minute, "1 hour ago"},
		{"hours", 5 * time.Hour, "5 hours ago"},
		{"one day", 25 * time.Hour, "1 day ago"},
		{"days", 2 * 24 * time.Hour, "2 days ago"},
		{"weeks", 10 * 24 * time.Hour, "1 week ago"},
		{"months", 60 * 24 * time.Hour, "2 months ago"},
		{"years", 800 * 24 * time.Hour, "2 years ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTimeFrom(now.Add(-tt.ago), now))
		})
	}
}

func TestRelativeTimeFrom_Edges(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "", RelativeTimeFrom(time.Time{}, now))
	assert.Equal(t, "just now", RelativeTimeFrom(now.Add(time.Minute), now), "future timestamps clamp to now")
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Mar 5, 2026", HumanDate("2026-03-05"))
	assert.Equal(t, "", HumanDate(""))
	assert.Equal(t, "yesterday", HumanDate("yesterday"), "non-dates pass through")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello...", Truncate("hello world", 5))
	assert.Equal(t, "hello", Truncate("hello", 5))
	assert.Equal(t, "", Truncate("anything", 0))
}

func TestCurrency(t *testing.T) {
	assert.Equal(t, "", Currency(nil))

	v := 12500.0
	assert.Equal(t, "$12,500.00", Currency(&v))

	v = 1234.56
	assert.Equal(t, "$1,234.56", Currency(&v))

	v = -99.5
	assert.Equal(t, "-$99.50", Currency(&v))

	v = 0
	assert.Equal(t, "$0.00", Currency(&v))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "0", Number(0))
	assert.Equal(t, "999", Number(999))
	assert.Equal(t, "1,000", Number(1000))
	assert.Equal(t, "1,234,567", Number(1234567))
	assert.Equal(t, "-1,000", Number(-1000))
}

func TestFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FileSize(512))
	assert.Equal(t, "1.5 KB", FileSize(1536))
	assert.Equal(t, "4.2 MB", FileSize(4404019))
	assert.Equal(t, "2.0 GB", FileSize(2<<30))
	assert.Equal(t, "", FileSize(-1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "45%", Percent(0.45))
	assert.Equal(t, "0%", Percent(-0.2))
	assert.Equal(t, "100%", Percent(1.8))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcd…", PadRight("abcdef", 5))
	assert.Equal(t, "abcde", PadRight("abcde", 5))
}
