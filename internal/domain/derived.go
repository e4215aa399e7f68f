package domain

import (
	"math"
	"strings"
	"time"
)

// SalaryBand maps a salary to its display band.
func SalaryBand(salary float64) string {
	switch {
	case salary < 50000:
		return "Entry Level"
	case salary < 100000:
		return "Mid Level"
	case salary < 200000:
		return "Senior Level"
	default:
		return "Executive"
	}
}

// FileExtension extracts the extension from the last path segment of a
// resume URL, or "unknown" if there is none.
func FileExtension(fileURL string) string {
	segment := fileURL
	if i := strings.LastIndex(segment, "/"); i >= 0 {
		segment = segment[i+1:]
	}
	// strip query string / fragment before looking for the extension
	if i := strings.IndexAny(segment, "?#"); i >= 0 {
		segment = segment[:i]
	}
	i := strings.LastIndex(segment, ".")
	if i < 0 || i == len(segment)-1 {
		return "unknown"
	}
	return strings.ToLower(segment[i+1:])
}

// StatusColor maps an application status to its display color tag.
func StatusColor(status string) string {
	switch status {
	case ApplicationStatusApplied:
		return "blue"
	case ApplicationStatusShortlisted:
		return "green"
	case ApplicationStatusRejected:
		return "red"
	default:
		return "gray"
	}
}

// AgeInDays returns the age of an application in whole days, rounded up.
func AgeInDays(appliedAt, now time.Time) int {
	elapsed := now.Sub(appliedAt)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Ceil(elapsed.Hours() / 24))
}
