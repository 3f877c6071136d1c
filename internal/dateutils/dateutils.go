// Package dateutils provides the multi-format date parsing used by the
// statement parser and the month grouping used by summary consumers.
package dateutils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layouts accepted by ParseDate, tried in order. US ordering comes first
// because the statement formats this pipeline ingests are US bank exports.
const (
	LayoutUS       = "01/02/2006"
	LayoutUSDashed = "01-02-2006"
	LayoutISO      = "2006-01-02"
)

// CommonFormats is the full list of layouts tried when parsing dates.
var CommonFormats = []string{
	LayoutUS,
	LayoutUSDashed,
	LayoutISO,
	"1/2/2006",
	"1-2-2006",
	"01/02/06",
	"1/2/06",
	"01-02-06",
	"1-2-06",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"2-Jan-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var spaceRe = regexp.MustCompile(`\s+`)

// ParseDate attempts to parse a date string using the common layouts.
// Returns the parsed time and the layout that matched.
func ParseDate(dateStr string) (time.Time, string, error) {
	dateStr = CleanDateString(dateStr)

	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, format, nil
		}
	}

	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims and collapses whitespace in a date string.
func CleanDateString(dateStr string) string {
	dateStr = strings.TrimSpace(dateStr)
	return spaceRe.ReplaceAllString(dateStr, " ")
}

// ToISODate formats a time.Time as YYYY-MM-DD.
func ToISODate(date time.Time) string {
	return date.Format(LayoutISO)
}

// MonthKey returns the YYYY-MM grouping key for monthly aggregation.
func MonthKey(date time.Time) string {
	return date.Format("2006-01")
}
