// Package calendar formats and parses signed catalog years.
//
// Catalog years are plain signed integers: negative years are BCE, zero and
// positive years are CE. There is no year-zero correction.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Era suffixes used when formatting.
const (
	EraBCE = "BCE"
	EraCE  = "CE"
)

// MaxAbsYear bounds the years ParseYear accepts in either era.
const MaxAbsYear = 1_000_000

// FormatYear renders a signed year with its era, e.g. "2100 BCE" or "538 CE".
// Every int formats, including math.MinInt.
func FormatYear(year int) string {
	if year < 0 {
		return strings.TrimPrefix(strconv.Itoa(year), "-") + " " + EraBCE
	}
	return strconv.Itoa(year) + " " + EraCE
}

// FormatSpan renders an interval, e.g. "538 CE to 1798 CE".
func FormatSpan(start, end int) string {
	return FormatYear(start) + " to " + FormatYear(end)
}

// yearPattern accepts "-2100", "2100 BCE", "2100BC", "33 CE", "AD 33", "33 A.D.".
var yearPattern = regexp.MustCompile(`^(?i)\s*(?:(AD|A\.D\.)\s*)?([+-]?\d+)\s*(BCE|BC|B\.C\.|CE|AD|A\.D\.)?\s*$`)

// ParseYear parses a year written as a signed integer or with an era marker.
// BCE markers negate the number; a BCE marker on an already negative number
// is rejected, as is any year beyond MaxAbsYear in either direction.
func ParseYear(s string) (int, error) {
	m := yearPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid year format: %q", s)
	}

	prefix, digits, suffix := m[1], m[2], strings.ToUpper(m[3])
	if prefix != "" && suffix != "" {
		return 0, fmt.Errorf("invalid year format: %q has two era markers", s)
	}

	year, err := strconv.Atoi(digits)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", s, err)
	}
	if year > MaxAbsYear || year < -MaxAbsYear {
		return 0, fmt.Errorf("year %q out of range: at most %d in either era", s, MaxAbsYear)
	}

	switch suffix {
	case "BCE", "BC", "B.C.":
		if year < 0 || strings.HasPrefix(digits, "+") {
			return 0, fmt.Errorf("invalid year format: %q mixes sign and era", s)
		}
		return -year, nil
	case "CE", "AD", "A.D.":
		if year < 0 {
			return 0, fmt.Errorf("invalid year format: %q mixes sign and era", s)
		}
	}
	if prefix != "" && year < 0 {
		return 0, fmt.Errorf("invalid year format: %q mixes sign and era", s)
	}

	return year, nil
}
