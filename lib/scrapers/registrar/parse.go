package registrar

import (
	"regexp"
	"strconv"
	"strings"
)

// parseUnits coerces the units column to a credit count. The registrar
// renders the count as a single digit or a "Variable ..." range; only the
// first rune is parsed since multi-digit counts do not occur on the
// source form.
func parseUnits(text string) *int {
	if text == "" || strings.HasPrefix(text, "Variable") {
		return nil
	}
	n, err := strconv.Atoi(text[:1])
	if err != nil {
		return nil
	}
	return &n
}

var clockRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2}) *(AM|PM)$`)

// parseClock converts a 12-hour clock string like "9:50 AM" to minutes
// since midnight. 12:xx AM maps to 0:xx and 12:xx PM stays 12:xx.
func parseClock(text string) (int, bool) {
	groups := clockRegex.FindStringSubmatch(strings.TrimSpace(text))
	if len(groups) < 4 {
		return 0, false
	}
	hour, _ := strconv.Atoi(groups[1])
	minute, _ := strconv.Atoi(groups[2])

	minutes := (hour%12)*60 + minute
	if groups[3] == "PM" {
		minutes += 12 * 60
	}
	return minutes, true
}

// parseMeetingTime parses "9:00 AM - 9:50 AM" into a [start, end] pair of
// minutes since midnight. Blank or unparseable means no meeting time.
func parseMeetingTime(text string) []int {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return nil
	}
	start, ok := parseClock(parts[0])
	if !ok {
		return nil
	}
	end, ok := parseClock(parts[1])
	if !ok {
		return nil
	}
	return []int{start, end}
}

// parseSeats parses the seats column, splitting on every slash rather
// than assuming exactly two counts. A waitlist-only section has no usable
// counts.
func parseSeats(text string) []int {
	if text == "" || strings.HasPrefix(text, "Waitlist") {
		return nil
	}
	parts := strings.Split(text, "/")
	counts := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil
		}
		counts = append(counts, n)
	}
	return counts
}

func parseDays(text string) []string {
	days := strings.Fields(text)
	if len(days) == 0 {
		return nil
	}
	return days
}

// parseInstructors splits the instructor column on ";". An empty column
// yields an empty list rather than a single empty name.
func parseInstructors(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := strings.Split(text, ";")
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}
	return names
}
