package timex

import "time"

// Eastern returns the US Eastern timezone, falling back to a fixed EST offset
// when the zone database is unavailable.
func Eastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}

// FormatEasternMillis formats a Unix-millisecond timestamp in US Eastern
// time, e.g. "Feb 13, 2026 09:30 AM EST". Returns "" for non-positive input.
func FormatEasternMillis(ms int64) string {
	if ms <= 0 {
		return ""
	}
	return time.UnixMilli(ms).In(Eastern()).Format("Jan 02, 2006 03:04 PM MST")
}

// NowEastern is the current Eastern wall-clock string used in digest headers.
func NowEastern(now time.Time) string {
	return now.In(Eastern()).Format("Jan 02, 2006 03:04 PM MST")
}
