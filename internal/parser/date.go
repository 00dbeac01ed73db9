package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Date shapes in priority order. Slash-separated triples are read as
// month/day/year (US convention); dash-separated triples as day/month/year
// unless they already have the YYYY-MM-DD shape.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
	regexp.MustCompile(`(\d{1,2}-\d{1,2}-\d{4})`),
	regexp.MustCompile(`(?i)((?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4})`),
	regexp.MustCompile(`(?i)on\s+(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(?i)date[:\s]*(\d{1,2}/\d{1,2}/\d{4})`),
}

var isoShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var monthLayouts = []string{"Jan 2, 2006", "Jan 2 2006", "January 2, 2006", "January 2 2006"}

// extractDate finds the first recognizable date in text and returns it as a
// canonical YYYY-MM-DD string. Shapes that match but are not valid calendar
// dates (month 13 and the like) are treated as absent, not as errors.
func extractDate(text string) (string, bool) {
	for _, re := range datePatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if date, ok := normalizeDate(m[1]); ok {
			return date, true
		}
	}
	return "", false
}

func normalizeDate(raw string) (string, bool) {
	switch {
	case strings.Contains(raw, "/"):
		return tripleToDate(strings.Split(raw, "/"), 0, 1)
	case isoShape.MatchString(raw):
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return "", false
		}
		return t.Format(dateLayout), true
	case strings.Contains(raw, "-"):
		return tripleToDate(strings.Split(raw, "-"), 1, 0)
	default:
		return monthNameToDate(raw)
	}
}

// tripleToDate interprets a three-part date split given the positions of the
// month and day parts; the year is always last.
func tripleToDate(parts []string, monthIdx, dayIdx int) (string, bool) {
	if len(parts) != 3 {
		return "", false
	}
	month, err1 := strconv.Atoi(parts[monthIdx])
	day, err2 := strconv.Atoi(parts[dayIdx])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	return calendarDate(year, month, day)
}

// calendarDate rejects component triples that time.Date would silently
// normalize, e.g. month 13 or February 30.
func calendarDate(year, month, day int) (string, bool) {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return "", false
	}
	return t.Format(dateLayout), true
}

func monthNameToDate(raw string) (string, bool) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return "", false
	}
	// time.Parse wants "Jan", not "JAN" or "jan"
	name := strings.ToLower(fields[0])
	fields[0] = strings.ToUpper(name[:1]) + name[1:]
	raw = strings.Join(fields, " ")

	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return "", false
}
