package itinerary

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultDuration is used for activities and transfers whose length is unknown.
const DefaultDuration = 60 * time.Minute

// maxDurationMinutes bounds a parsed duration to one week.
const maxDurationMinutes = 7 * 24 * 60

var (
	hoursAndMinutesRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)\s*(?:and\s*)?(\d+)\s*(?:minutes?|mins?|m)\b`)
	compactRe         = regexp.MustCompile(`(\d+)h(\d{1,2})\b`)
	hoursOnlyRe       = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b`)
	minutesOnlyRe     = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|m)\b`)
)

// ParseDuration reads free text such as "2 hours 30 minutes", "1.5h" or
// "45m". Anything it cannot read, or a result that is not positive or longer
// than a week, yields DefaultDuration.
func ParseDuration(text string) time.Duration {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return DefaultDuration
	}

	var minutes float64
	if m := hoursAndMinutesRe.FindStringSubmatch(s); m != nil {
		minutes = parseNumber(m[1])*60 + parseNumber(m[2])
	} else if m := compactRe.FindStringSubmatch(s); m != nil {
		minutes = parseNumber(m[1])*60 + parseNumber(m[2])
	} else if m := hoursOnlyRe.FindStringSubmatch(s); m != nil {
		minutes = parseNumber(m[1]) * 60
	} else if m := minutesOnlyRe.FindStringSubmatch(s); m != nil {
		minutes = parseNumber(m[1])
	}

	if minutes <= 0 || minutes > maxDurationMinutes || math.IsNaN(minutes) {
		return DefaultDuration
	}
	return time.Duration(math.Round(minutes)) * time.Minute
}

func parseNumber(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
