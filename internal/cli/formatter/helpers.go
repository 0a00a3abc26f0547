package formatter

import (
	"fmt"
	"strings"
	"time"
)

// RelativeTime returns a human-friendly "ago" string for a past timestamp.
func RelativeTime(t time.Time) string {
	return RelativeTimeFrom(t, time.Now())
}

// RelativeTimeFrom buckets the elapsed time with fixed thresholds: under a
// minute is "just now", then minutes, hours (<24h), days (<7d), weeks
// (<~30d), months (<12), years. Counts use floor division and pluralize on
// a simple >1 check; locale-aware pluralization is out of scope.
func RelativeTimeFrom(t time.Time, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	diff := now.Sub(t)
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24/7), "week")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/24/30), "month")
	default:
		return plural(int(diff.Hours()/24/365), "year")
	}
}

func plural(n int, unit string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss ago", n, unit)
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}

// HumanDate returns a human-friendly absolute date for a YYYY-MM-DD string,
// or the input unchanged when it does not parse.
func HumanDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// Truncate shortens s to at most n runes, appending "..." when truncated.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

// Currency formats an amount like "$12,500.00". A nil amount renders as "".
func Currency(amount *float64) string {
	if amount == nil {
		return ""
	}
	neg := *amount < 0
	v := *amount
	if neg {
		v = -v
	}
	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}
	out := fmt.Sprintf("$%s.%02d", groupThousands(whole), cents)
	if neg {
		return "-" + out
	}
	return out
}

// Number formats an integer with thousands separators.
func Number(n int) string {
	if n < 0 {
		return "-" + groupThousands(int64(-n))
	}
	return groupThousands(int64(n))
}

func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FileSize formats a byte count like "4.2 MB". Negative counts render as "".
func FileSize(bytes int64) string {
	if bytes < 0 {
		return ""
	}
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	case bytes < 1024*1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	default:
		return fmt.Sprintf("%.1f GB", float64(bytes)/(1024*1024*1024))
	}
}

// Percent renders a 0..1 fraction as "45%".
func Percent(fraction float64) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	return fmt.Sprintf("%.0f%%", fraction*100)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// PadRight pads a string to a minimum width, truncating if needed.
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
