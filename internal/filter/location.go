package filter

import (
	"regexp"
	"strings"
)

var nonUSMarkers = []string{
	"canada", "ontario", "quebec", "uk", "united kingdom", "london",
	"europe", "india", "australia", "toronto", "vancouver", "calgary",
	"brisbane",
}

var usMarkers = []string{
	"united states", "usa", " u.s.", " us,", "remote", "multi locations",
}

var stateSuffixPattern = regexp.MustCompile(`,\s*[A-Z]{2}\s*(?:,|$)`)

var usStatePattern = regexp.MustCompile(`(?i)\b(AL|AK|AZ|AR|CA|CO|CT|DE|FL|GA|HI|ID|IL|IN|IA|KS|KY|LA|ME|MD|MA|MI|MN|MS|MO|MT|NE|NV|NH|NJ|NM|NY|NC|ND|OH|OK|OR|PA|RI|SC|SD|TN|TX|UT|VT|VA|WA|WV|WI|WY|DC)\b`)

// IsUSLocation reports whether a listing location is US-based. Known non-US
// markers reject; explicit US markers, ", XX" state suffixes and state
// abbreviations accept. Empty or unrecognized locations are accepted, since
// most listings omit or abbreviate the location.
func IsUSLocation(location string) bool {
	loc := strings.TrimSpace(location)
	if loc == "" {
		return true
	}
	lower := strings.ToLower(loc)
	for _, marker := range nonUSMarkers {
		if strings.Contains(lower, marker) {
			return false
		}
	}
	for _, marker := range usMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	if stateSuffixPattern.MatchString(loc) {
		return true
	}
	if usStatePattern.MatchString(loc) {
		return true
	}
	return true
}
