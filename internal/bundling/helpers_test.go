package bundling

import (
	"time"

	"travelquote/internal/itinerary"
)

var now = time.Date(2026, 7, 10, 12, 0, 0, 0, time.UTC)

func item(id string, details itinerary.Details, age time.Duration) itinerary.Item {
	return itinerary.Item{ID: id, Date: "2026-08-01", CreatedAt: now.Add(-age), Details: details}
}

func domesticFlight(age time.Duration) itinerary.Item {
	return item("f1", itinerary.FlightDetails{Origin: "USJFK", Destination: "USLAX", DepartureTime: "09:00"}, age)
}

func internationalFlight(age time.Duration) itinerary.Item {
	return item("f1", itinerary.FlightDetails{Origin: "USJFK", Destination: "FRCDG", DepartureTime: "18:00"}, age)
}

func stay(age time.Duration) itinerary.Item {
	return item("h1", itinerary.HotelDetails{CheckIn: "2026-08-01", CheckOut: "2026-08-06"}, age)
}

func fiveDayTrip() itinerary.TripMetadata {
	return itinerary.TripMetadata{
		Destination: "Lisbon",
		StartDate:   "2026-08-01",
		EndDate:     "2026-08-06",
		Travelers:   itinerary.Travelers{Adults: 2},
	}
}

func ids(list []BundleSuggestion) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.ID)
	}
	return out
}
