package itinerary

import (
	"strings"
	"time"
)

const day = 24 * time.Hour

// TimeRange is the instant interval an item occupies. It is derived on every
// conflict pass and never stored on the item.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// DayKey is the calendar date of Start, used to scope comparisons to one day.
func (r TimeRange) DayKey() string {
	return r.Start.UTC().Format(DateLayout)
}

// Contains reports whether t lies inside the closed interval.
func (r TimeRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// ExtractTimeRange locates an item in time. ok is false when the item cannot be
// placed: insurance and custom items, or malformed and missing date text.
func ExtractTimeRange(item Item) (TimeRange, bool) {
	switch d := item.Details.(type) {
	case FlightDetails:
		return flightRange(item.Date, d)
	case HotelDetails:
		return spanRange(firstNonEmpty(d.CheckIn, item.Date), d.CheckOut)
	case CarDetails:
		return spanRange(firstNonEmpty(d.PickupDate, item.Date), d.DropoffDate)
	case ActivityDetails:
		start, ok := atClock(item.Date, d.StartTime)
		if !ok {
			return TimeRange{}, false
		}
		length := DefaultDuration
		if strings.TrimSpace(d.StartTime) != "" {
			length = ParseDuration(d.Duration)
		}
		return TimeRange{Start: start, End: start.Add(length)}, true
	case TransferDetails:
		start, ok := atClock(item.Date, d.PickupTime)
		if !ok {
			return TimeRange{}, false
		}
		return TimeRange{Start: start, End: start.Add(DefaultDuration)}, true
	default:
		return TimeRange{}, false
	}
}

func flightRange(date string, d FlightDetails) (TimeRange, bool) {
	start, ok := atClock(date, d.DepartureTime)
	if !ok {
		return TimeRange{}, false
	}
	if strings.TrimSpace(d.ArrivalTime) == "" {
		return TimeRange{Start: start, End: start.Add(DefaultDuration)}, true
	}

	end, ok := atClock(date, d.ArrivalTime)
	if !ok {
		return TimeRange{}, false
	}
	// Overnight flights land on the following day.
	if end.Before(start) {
		end = end.Add(day)
	}
	return TimeRange{Start: start, End: end}, true
}

// spanRange covers whole days from the start date to the end date. A missing
// end means a single day.
func spanRange(startDate, endDate string) (TimeRange, bool) {
	start, ok := parseDate(startDate)
	if !ok {
		return TimeRange{}, false
	}
	if strings.TrimSpace(endDate) == "" {
		return TimeRange{Start: start, End: start.Add(day)}, true
	}

	end, ok := parseDate(endDate)
	if !ok || end.Before(start) {
		return TimeRange{}, false
	}
	return TimeRange{Start: start, End: end}, true
}

// atClock combines a date with an optional "15:04" clock time. An empty clock
// means midnight; a malformed one makes the instant unknown.
func atClock(date, clock string) (time.Time, bool) {
	base, ok := parseDate(date)
	if !ok {
		return time.Time{}, false
	}

	clock = strings.TrimSpace(clock)
	if clock == "" {
		return base, true
	}

	t, err := time.Parse(ClockLayout, normalizeClock(clock))
	if err != nil {
		return time.Time{}, false
	}
	return base.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), true
}

// normalizeClock accepts "9:05" and "09:05:00" as well as "09:05".
func normalizeClock(clock string) string {
	parts := strings.Split(clock, ":")
	if len(parts) == 3 {
		parts = parts[:2]
	}
	if len(parts) == 2 && len(parts[0]) == 1 {
		parts[0] = "0" + parts[0]
	}
	return strings.Join(parts, ":")
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	// Accept full timestamps by keeping only the date part.
	if len(s) > len(DateLayout) && s[len(DateLayout)] == 'T' {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
