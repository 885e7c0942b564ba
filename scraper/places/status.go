package places

import (
	"strings"
	"time"

	"restaurant-mapper/models"
)

// Separators seen between opening and closing times in weekday_text lines.
var rangeDashes = []string{"–", "—", "-"}

// DescribeStatus renders the human status line for a place. Times are
// scraped from today's weekday_text line, e.g. "Monday: 11:00 AM – 10:00 PM".
func DescribeStatus(operational bool, hours *models.OpeningHours, now time.Time) string {
	if !operational {
		return models.StatusPermanentlyClosed
	}

	line, found := lineForDay(hours.WeekdayText, now.Weekday())

	if hours.OpenNow {
		if found {
			if closes, ok := closingTime(line); ok {
				return models.StatusOpen + " (Closes " + closes + ")"
			}
		}
		return models.StatusOpen
	}

	switch {
	case !found:
		return models.StatusClosed + " (Hours unknown)"
	case strings.Contains(line, "Closed"):
		return models.StatusClosed + " (Closed today)"
	}
	if opens, ok := openingTime(line); ok {
		return models.StatusClosed + " (Opens " + opens + ")"
	}
	return models.StatusClosed
}

func lineForDay(lines []string, day time.Weekday) (string, bool) {
	name := day.String()
	for _, l := range lines {
		if strings.Contains(l, name) {
			return l, true
		}
	}
	return "", false
}

// closingTime returns everything after the first range dash.
func closingTime(line string) (string, bool) {
	i, width := indexDash(line, 0)
	if i < 0 {
		return "", false
	}
	t := strings.TrimSpace(line[i+width:])
	return t, t != ""
}

// openingTime returns the text between the day's ": " and the next range dash.
func openingTime(line string) (string, bool) {
	colon := strings.Index(line, ": ")
	if colon < 0 {
		return "", false
	}
	start := colon + len(": ")
	i, _ := indexDash(line, start)
	if i < 0 {
		return "", false
	}
	t := strings.TrimSpace(line[start:i])
	return t, t != ""
}

// indexDash finds the earliest range dash at or after from.
func indexDash(s string, from int) (int, int) {
	best, width := -1, 0
	for _, d := range rangeDashes {
		if i := strings.Index(s[from:], d); i >= 0 && (best < 0 || from+i < best) {
			best, width = from+i, len(d)
		}
	}
	return best, width
}
