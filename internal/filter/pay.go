// Package filter holds the listing guardrails: minimum pay and US-only
// location checks applied to sources that carry salary and location data.
package filter

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultMinHourlyPay is the hourly floor applied when a source enables the
// pay guardrail without configuring one.
const DefaultMinHourlyPay = 25

const hoursPerYear = 2080

var salaryPattern = regexp.MustCompile(`^\$?\s*(\d+)(?:\s*-\s*\$?\s*(\d+))?\s*/\s*(HR|YR)`)

// MeetsMinPay reports whether salary indicates at least minHourly dollars per
// hour. Ranges use the low bound; yearly amounts divide by 2080 working
// hours. Empty or unparseable salaries fail the check.
func MeetsMinPay(salary string, minHourly float64) bool {
	s := strings.ToUpper(strings.TrimSpace(salary))
	if s == "" || s == "N/A" || s == "NA" {
		return false
	}
	m := salaryPattern.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	low, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return false
	}
	if m[3] == "YR" {
		low /= hoursPerYear
	}
	return low >= minHourly
}
