// Package timex handles the posted-time formats the listing sources emit:
// relative strings ("2 hours ago", "30 mins ago", "2h ago"), Unix-millisecond
// timestamps, and date-only postings.
package timex

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Matches anywhere in the string, with or without plural, in h/hr/hrs and
// m/min/mins forms.
var relativePattern = regexp.MustCompile(`(?i)(\d+)\s*(hours?|hrs?|h|minutes?|mins?|m)\s+ago`)

// ParseRelative extracts a relative age from free text. It returns the age,
// the matched substring, and whether a match was found.
func ParseRelative(text string) (time.Duration, string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, "", false
	}
	m := relativePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	unit := strings.ToLower(m[2])
	age := time.Duration(n) * time.Hour
	if strings.HasPrefix(unit, "m") {
		age = time.Duration(n) * time.Minute
	}
	return age, strings.TrimSpace(m[0]), true
}

// FormatRelative renders an age the way the sources do, for display.
func FormatRelative(age time.Duration) string {
	mins := int(age.Minutes())
	if mins < 0 {
		mins = 0
	}
	if mins < 60 {
		if mins == 1 {
			return "1 min ago"
		}
		return strconv.Itoa(mins) + " mins ago"
	}
	hrs := mins / 60
	if hrs == 1 {
		return "1 hour ago"
	}
	return strconv.Itoa(hrs) + " hours ago"
}
