package routine

import (
	"strconv"
	"strings"
)

// Classes end before 8 in the evening, so any hour below 8 written without AM/PM is
// an afternoon hour.
const afternoonCutoff = 8

// TimeToMinutes converts the start of a time range such as "1:30-2:50" to minutes
// after midnight (810). Text without a range or with an unreadable hour yields 0.
func TimeToMinutes(timeRange string) int {
	start, _, ok := strings.Cut(normalizeDash(timeRange), "-")
	if !ok {
		return 0
	}
	minutes, ok := clockMinutes(start)
	if !ok {
		return 0
	}
	return minutes
}

// ParseTimeRange returns the start and end of a time range in minutes after midnight.
func ParseTimeRange(timeRange string) (start, end int, ok bool) {
	from, to, found := strings.Cut(normalizeDash(timeRange), "-")
	if !found {
		return 0, 0, false
	}
	start, ok = clockMinutes(from)
	if !ok {
		return 0, 0, false
	}
	end, ok = clockMinutes(to)
	if !ok {
		return 0, 0, false
	}
	return start, end, true
}

// clockMinutes reads "H:MM", applying the afternoon correction. Unreadable minutes
// count as 0.
func clockMinutes(clock string) (int, bool) {
	hourStr, minStr, _ := strings.Cut(strings.TrimSpace(clock), ":")
	hours, err := strconv.Atoi(strings.TrimSpace(hourStr))
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(minStr))
	if err != nil {
		minutes = 0
	}
	if hours < afternoonCutoff {
		hours += 12
	}
	return hours*60 + minutes, true
}

func normalizeDash(s string) string {
	return strings.NewReplacer("–", "-", "—", "-").Replace(s)
}
