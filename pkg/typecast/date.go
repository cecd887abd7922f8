package typecast

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	tokenDay   = "dd"
	tokenMonth = "MM"
	tokenYear  = "yyyy"
	separator  = "/"
)

// DefaultDateFormat is the pattern used when none is configured.
const DefaultDateFormat = "dd/MM/yyyy"

// DateFormats maps the short aliases accepted in configuration to their patterns.
var DateFormats = map[string]string{
	"dmy": "dd/MM/yyyy",
	"mdy": "MM/dd/yyyy",
	"ymd": "yyyy/MM/dd",
}

// CalendarDate is a calendar date whose components stay zero when the corresponding
// token is absent or malformed in the raw input.
type CalendarDate struct {
	Year  int
	Month int
	Day   int
}

// IsZero reports whether no component was parsed.
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Compare orders dates by year, month, then day.
func (d CalendarDate) Compare(o CalendarDate) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(d.Month, o.Month)
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func (d CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// DateOf returns the calendar date of t.
func DateOf(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// DateFormat is a parsed token sequence such as dd/MM/yyyy.
type DateFormat struct {
	pattern string
	tokens  []string
}

// NewDateFormat parses a date pattern or one of the DateFormats aliases.
// An empty pattern yields DefaultDateFormat.
func NewDateFormat(pattern string) (DateFormat, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		pattern = DefaultDateFormat
	}
	if p, ok := DateFormats[strings.ToLower(pattern)]; ok {
		pattern = p
	}

	tokens := strings.Split(pattern, separator)
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		switch tok {
		case tokenDay, tokenMonth, tokenYear:
		default:
			return DateFormat{}, fmt.Errorf("%w: unknown token %q in %q", ErrInvalidDateFormat, tok, pattern)
		}
		if seen[tok] {
			return DateFormat{}, fmt.Errorf("%w: repeated token %q in %q", ErrInvalidDateFormat, tok, pattern)
		}
		seen[tok] = true
	}

	return DateFormat{pattern: pattern, tokens: tokens}, nil
}

// Pattern returns the token layout, e.g. "dd/MM/yyyy".
func (f DateFormat) Pattern() string {
	return f.pattern
}

// Parse splits value on "/" and assigns each part to the token at the same
// position. Missing or non-numeric parts leave their component at zero.
func (f DateFormat) Parse(value string) CalendarDate {
	var d CalendarDate
	parts := strings.Split(strings.TrimSpace(value), separator)
	for i, tok := range f.tokens {
		if i >= len(parts) {
			break
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			continue
		}
		switch tok {
		case tokenDay:
			d.Day = n
		case tokenMonth:
			d.Month = n
		case tokenYear:
			d.Year = n
		}
	}
	return d
}

// Format renders d using the token layout.
func (f DateFormat) Format(d CalendarDate) string {
	parts := make([]string, len(f.tokens))
	for i, tok := range f.tokens {
		switch tok {
		case tokenDay:
			parts[i] = fmt.Sprintf("%02d", d.Day)
		case tokenMonth:
			parts[i] = fmt.Sprintf("%02d", d.Month)
		case tokenYear:
			parts[i] = fmt.Sprintf("%04d", d.Year)
		}
	}
	return strings.Join(parts, separator)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
