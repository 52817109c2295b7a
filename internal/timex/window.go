package timex

import "time"

// InWindow reports whether a listing is recent enough to notify on. Recency
// is determined by, in order: a relative posted string within the window, an
// absolute posted timestamp within the window, or, for date-only postings
// (midnight timestamps), a posted date of today or yesterday UTC.
func InWindow(postedAt *time.Time, postedText string, now time.Time, window time.Duration) bool {
	if age, _, ok := ParseRelative(postedText); ok {
		return age <= window
	}
	if postedAt == nil || postedAt.IsZero() {
		return false
	}
	pt := postedAt.UTC()
	elapsed := now.UTC().Sub(pt)
	if elapsed >= 0 && elapsed <= window {
		return true
	}
	if elapsed > 0 && pt.Hour() == 0 && pt.Minute() == 0 {
		yesterday := now.UTC().AddDate(0, 0, -1)
		postedDay := pt.Format("2006-01-02")
		return postedDay >= yesterday.Format("2006-01-02")
	}
	return false
}
