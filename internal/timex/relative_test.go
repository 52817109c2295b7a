package timex

import (
	"testing"
	"time"
)

func TestParseRelative(t *testing.T) {
	cases := []struct {
		text    string
		want    time.Duration
		matched string
		ok      bool
	}{
		{"2 hours ago", 2 * time.Hour, "2 hours ago", true},
		{"1 hour ago", time.Hour, "1 hour ago", true},
		{"2hrs ago", 2 * time.Hour, "2hrs ago", true},
		{"2h ago", 2 * time.Hour, "2h ago", true},
		{"30 mins ago", 30 * time.Minute, "30 mins ago", true},
		{"1 minute ago", time.Minute, "1 minute ago", true},
		{"45m ago", 45 * time.Minute, "45m ago", true},
		{"Posted 3 hours ago by someone", 3 * time.Hour, "3 hours ago", true},
		{"February 13, 2026", 0, "", false},
		{"", 0, "", false},
		{"ago", 0, "", false},
	}
	for _, tc := range cases {
		age, matched, ok := ParseRelative(tc.text)
		if ok != tc.ok || age != tc.want || matched != tc.matched {
			t.Fatalf("ParseRelative(%q) = (%v, %q, %v), want (%v, %q, %v)",
				tc.text, age, matched, ok, tc.want, tc.matched, tc.ok)
		}
	}
}

func TestFormatRelative(t *testing.T) {
	cases := []struct {
		age  time.Duration
		want string
	}{
		{time.Minute, "1 min ago"},
		{30 * time.Minute, "30 mins ago"},
		{time.Hour, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
		{90 * time.Minute, "1 hour ago"},
	}
	for _, tc := range cases {
		if got := FormatRelative(tc.age); got != tc.want {
			t.Fatalf("FormatRelative(%v) = %q, want %q", tc.age, got, tc.want)
		}
	}
}

func TestInWindow(t *testing.T) {
	now := time.Date(2026, 2, 13, 15, 0, 0, 0, time.UTC)
	window := 2 * time.Hour

	recent := now.Add(-time.Hour)
	stale := now.Add(-3 * time.Hour)
	dateOnlyToday := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
	dateOnlyYesterday := time.Date(2026, 2, 12, 0, 0, 0, 0, time.UTC)
	dateOnlyOld := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		postedAt *time.Time
		text     string
		want     bool
	}{
		{"relative recent", nil, "30 mins ago", true},
		{"relative stale", nil, "5 hours ago", false},
		{"absolute recent", &recent, "", true},
		{"absolute stale with clock", &stale, "", false},
		{"date-only today", &dateOnlyToday, "", true},
		{"date-only yesterday", &dateOnlyYesterday, "", true},
		{"date-only old", &dateOnlyOld, "", false},
		{"nothing", nil, "", false},
	}
	for _, tc := range cases {
		if got := InWindow(tc.postedAt, tc.text, now, window); got != tc.want {
			t.Fatalf("%s: InWindow = %v, want %v", tc.name, got, tc.want)
		}
	}
}
