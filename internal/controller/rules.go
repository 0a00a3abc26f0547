package controller

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/foliohq/folio/internal/api"
)

// Declarative validation rules. Each builder returns a Rule; rules other
// than Required accept the empty string so optional fields stay optional.

// Required rejects empty or whitespace-only values.
func Required(label string) Rule {
	return func(value string, _ map[string]string) string {
		if strings.TrimSpace(value) == "" {
			return label + " is required"
		}
		return ""
	}
}

// MaxLen rejects values longer than n runes.
func MaxLen(label string, n int) Rule {
	return func(value string, _ map[string]string) string {
		if len([]rune(value)) > n {
			return fmt.Sprintf("%s must be at most %d characters", label, n)
		}
		return ""
	}
}

// Numeric accepts values the tolerant extractor can parse.
func Numeric(label string) Rule {
	return func(value string, _ map[string]string) string {
		if value == "" {
			return ""
		}
		if api.ExtractNumber(value) == nil {
			return label + " must be a number"
		}
		return ""
	}
}

// IntRange accepts integers within [lo, hi].
func IntRange(label string, lo, hi int) Rule {
	return func(value string, _ map[string]string) string {
		if value == "" {
			return ""
		}
		n := api.ExtractInt(value)
		if n == nil {
			return label + " must be a number"
		}
		if *n < lo || *n > hi {
			return fmt.Sprintf("%s must be between %d and %d", label, lo, hi)
		}
		return ""
	}
}

// URLField accepts absolute http(s) URLs.
func URLField(label string) Rule {
	return func(value string, _ map[string]string) string {
		if value == "" {
			return ""
		}
		u, err := url.Parse(value)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return label + " must be a valid URL"
		}
		return ""
	}
}

// DateISO accepts YYYY-MM-DD values.
func DateISO(label string) Rule {
	return func(value string, _ map[string]string) string {
		if value == "" {
			return ""
		}
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return label + " must be a date (YYYY-MM-DD)"
		}
		return ""
	}
}

// NotBeforeField rejects dates earlier than the named other field. Both
// must already be valid dates for the comparison to apply.
func NotBeforeField(label, otherField, otherLabel string) Rule {
	return func(value string, form map[string]string) string {
		if value == "" || form[otherField] == "" {
			return ""
		}
		end, err1 := time.Parse("2006-01-02", value)
		start, err2 := time.Parse("2006-01-02", form[otherField])
		if err1 != nil || err2 != nil {
			return ""
		}
		if end.Before(start) {
			return fmt.Sprintf("%s must not be before %s", label, otherLabel)
		}
		return ""
	}
}

// AtMostField rejects numeric values greater than the named other field.
func AtMostField(label, otherField, otherLabel string) Rule {
	return func(value string, form map[string]string) string {
		if value == "" || form[otherField] == "" {
			return ""
		}
		v := api.ExtractNumber(value)
		limit := api.ExtractNumber(form[otherField])
		if v == nil || limit == nil {
			return ""
		}
		if *v > *limit {
			return fmt.Sprintf("%s must not exceed %s", label, otherLabel)
		}
		return ""
	}
}
