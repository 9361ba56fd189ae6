package bundling

import (
	"math"
	"strings"
	"time"

	"travelquote/internal/itinerary"
)

// NeverAdded is the elapsed time reported for an itinerary with no items.
const NeverAdded = time.Duration(math.MaxInt64)

// TripContext is a read-only snapshot of the itinerary used to evaluate rules.
// It is rebuilt from scratch on every mutation and on every timer tick.
type TripContext struct {
	Items           []itinerary.Item
	Destination     string
	StartDate       string
	EndDate         string
	Travelers       itinerary.Travelers
	TripDays        int
	IsInternational bool
	ItemCount       int
	Has             map[itinerary.Kind]bool
	Counts          map[itinerary.Kind]int
	SinceLastAdd    time.Duration
}

func (c TripContext) HasFlight() bool    { return c.Has[itinerary.KindFlight] }
func (c TripContext) HasHotel() bool     { return c.Has[itinerary.KindHotel] }
func (c TripContext) HasCar() bool       { return c.Has[itinerary.KindCar] }
func (c TripContext) HasActivity() bool  { return c.Has[itinerary.KindActivity] }
func (c TripContext) HasTransfer() bool  { return c.Has[itinerary.KindTransfer] }
func (c TripContext) HasInsurance() bool { return c.Has[itinerary.KindInsurance] }

// BuildTripContext derives the snapshot. It never mutates its inputs.
func BuildTripContext(items []itinerary.Item, trip itinerary.TripMetadata, now time.Time) TripContext {
	ctx := TripContext{
		Items:        items,
		Destination:  trip.Destination,
		StartDate:    trip.StartDate,
		EndDate:      trip.EndDate,
		Travelers:    trip.Travelers.Normalized(),
		TripDays:     TripDays(trip),
		ItemCount:    len(items),
		Has:          make(map[itinerary.Kind]bool, len(itinerary.Kinds)),
		Counts:       make(map[itinerary.Kind]int, len(itinerary.Kinds)),
		SinceLastAdd: NeverAdded,
	}

	var latest time.Time
	for _, it := range items {
		kind := it.Kind()
		ctx.Has[kind] = true
		ctx.Counts[kind]++
		if it.CreatedAt.After(latest) {
			latest = it.CreatedAt
		}
		if f, ok := it.Details.(itinerary.FlightDetails); ok && crossesBorder(f) {
			ctx.IsInternational = true
		}
	}

	if len(items) > 0 && !latest.IsZero() {
		ctx.SinceLastAdd = max(now.Sub(latest), 0)
	}
	return ctx
}

// TripDays is the whole number of days the trip spans, never less than one.
func TripDays(trip itinerary.TripMetadata) int {
	start, end, ok := trip.DateRange()
	if !ok {
		return 1
	}
	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	return max(days, 1)
}

// crossesBorder treats the first two characters of each code as a country
// prefix. Airport codes do not encode countries, so this is only a hint.
func crossesBorder(f itinerary.FlightDetails) bool {
	origin := strings.ToUpper(strings.TrimSpace(f.Origin))
	dest := strings.ToUpper(strings.TrimSpace(f.Destination))
	if len(origin) < 2 || len(dest) < 2 {
		return false
	}
	return origin[:2] != dest[:2]
}
