package importer

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Spreadsheet serial 25569 corresponds to 1970-01-01: day 1 is 1899-12-31
// with the historical leap-year-1900 off-by-one carried along for
// compatibility with common spreadsheet formats.
const unixEpochSerial = 25569

var isoDatePrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)

// ToCalendarDate converts a spreadsheet cell into a canonical YYYY-MM-DD
// string. Numeric values are treated as spreadsheet day serials, ISO dates
// pass through on prefix match, and DD/MM/YYYY is parsed positionally.
// Anything else returns the empty string, which callers must treat as "no
// date" rather than an error unless the field was mandatory.
func ToCalendarDate(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	if isoDatePrefix.MatchString(trimmed) {
		return trimmed[:10]
	}

	if serial, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return serialToDate(serial)
	}

	return positionalToDate(trimmed)
}

func serialToDate(serial float64) string {
	days := int64(serial) - unixEpochSerial
	t := time.Unix(days*86400, 0).UTC()
	if t.Year() < 1 || t.Year() > 9999 {
		return ""
	}
	return t.Format("2006-01-02")
}

func positionalToDate(value string) string {
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return ""
	}

	day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errD != nil || errM != nil || errY != nil {
		return ""
	}
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 || day > 31 {
		return ""
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. 31/04 becomes 01/05); reject it.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return ""
	}
	return t.Format("2006-01-02")
}
