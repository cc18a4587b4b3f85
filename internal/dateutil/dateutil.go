// Package dateutil provides date format parsing utilities.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"hh", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// contentDateFormats lists the front matter date shapes accepted by
// ParseContentDate, most specific first.
var contentDateFormats = []string{
	"YYYY-MM-DD[T]hh:mm:ss",
	"YYYY-MM-DD hh:mm:ss",
	"YYYY-MM-DD[T]hh:mm",
	"YYYY-MM-DD",
	"YYYY/MM/DD",
	"YYYY/M/D",
	"YYYY-M-D",
	"MMMM D, YYYY",
	"MMM D, YYYY",
	"D MMMM YYYY",
	"D MMM YYYY",
	"YYYY-MM",
	"YYYY",
}

// contentLayouts holds contentDateFormats translated to Go layouts.
var contentLayouts = mustLayouts(contentDateFormats)

func mustLayouts(formats []string) []string {
	layouts := make([]string, 0, len(formats)+2)
	layouts = append(layouts, time.RFC3339Nano, time.RFC3339)
	for _, f := range formats {
		goFmt, err := ParseDateFormat(f)
		if err != nil {
			panic(err)
		}
		layouts = append(layouts, goFmt)
	}
	return layouts
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, hh, mm, ss
// Use brackets to escape literal text: [Date] preserves "Date" literally.
// Any non-token characters outside brackets are preserved as literals.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var result strings.Builder
	result.Grow(len(format) + 10)

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			result.WriteString(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				result.WriteString(t.goFmt)
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			result.WriteByte(format[i])
			i++
		}
	}

	return result.String(), nil
}

// ParseContentDate parses a front matter date string.
// Empty input is not a date: callers decide what an absent date means.
// Values without a zone are read as UTC.
func ParseContentDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range contentLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatContentDate renders a decoded YAML timestamp back to front matter
// form: a bare date when it falls on UTC midnight, RFC 3339 otherwise.
func FormatContentDate(t time.Time) string {
	u := t.UTC()
	if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
		return u.Format("2006-01-02")
	}
	return t.Format(time.RFC3339)
}
