package bundling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelquote/internal/itinerary"
)

func evaluate(items []itinerary.Item, trip itinerary.TripMetadata) []BundleSuggestion {
	return Evaluate(BuildTripContext(items, trip, now), now)
}

func TestEvaluate_FlightAndHotelWithoutActivities(t *testing.T) {
	got := evaluate([]itinerary.Item{domesticFlight(time.Minute), stay(time.Minute)}, fiveDayTrip())

	assert.Equal(t, []string{"missing_activity", "missing_car"}, ids(got))
	assert.Equal(t, PriorityMedium, got[0].Priority)
	assert.Equal(t, PriorityLow, got[1].Priority)
	assert.Equal(t, itinerary.KindActivity, got[0].TargetTab)
	assert.Equal(t, itinerary.KindCar, got[1].TargetTab)
}

func TestEvaluate_MissingHotelWaitsFiveSeconds(t *testing.T) {
	fresh := evaluate([]itinerary.Item{domesticFlight(4 * time.Second)}, fiveDayTrip())
	assert.NotContains(t, ids(fresh), "missing_hotel")

	settled := evaluate([]itinerary.Item{domesticFlight(5 * time.Second)}, fiveDayTrip())
	require.NotEmpty(t, settled)
	assert.Equal(t, "missing_hotel", settled[0].ID)
	assert.Equal(t, PriorityHigh, settled[0].Priority)
	assert.Equal(t, "Add accommodation in Lisbon", settled[0].Title)
}

func TestEvaluate_MissingActivityWaitsTenSeconds(t *testing.T) {
	got := evaluate([]itinerary.Item{stay(9 * time.Second)}, fiveDayTrip())
	assert.NotContains(t, ids(got), "missing_activity")

	got = evaluate([]itinerary.Item{stay(10 * time.Second)}, fiveDayTrip())
	assert.Contains(t, ids(got), "missing_activity")
}

func TestEvaluate_InternationalTripCoFires(t *testing.T) {
	trip := fiveDayTrip()
	trip.Travelers.Children = 2

	got := evaluate([]itinerary.Item{internationalFlight(time.Minute), item("c1", itinerary.CarDetails{}, time.Minute)}, trip)

	// high first, then mediums and lows in rule order.
	assert.Equal(t, []string{"missing_hotel", "missing_transfer", "family_activities", "add_insurance"}, ids(got))
}

func TestEvaluate_InsuranceNeedsTwoItems(t *testing.T) {
	got := evaluate([]itinerary.Item{internationalFlight(0)}, fiveDayTrip())
	assert.NotContains(t, ids(got), "add_insurance")
}

func TestEvaluate_CarNeedsThreeDays(t *testing.T) {
	trip := fiveDayTrip()
	trip.EndDate = "2026-08-03"

	got := evaluate([]itinerary.Item{stay(time.Minute)}, trip)

	assert.NotContains(t, ids(got), "missing_car")
}

func TestEvaluate_InfantsTriggerFamilyActivities(t *testing.T) {
	trip := fiveDayTrip()
	trip.Travelers.Infants = 1

	got := evaluate(nil, trip)

	require.Equal(t, []string{"family_activities"}, ids(got))
	assert.Equal(t, "The party includes 1 infants.", got[0].Reason)
}

func TestEvaluate_CompleteItineraryIsQuiet(t *testing.T) {
	items := []itinerary.Item{
		internationalFlight(time.Hour),
		stay(time.Hour),
		item("t1", itinerary.TransferDetails{}, time.Hour),
		item("a1", itinerary.ActivityDetails{}, time.Hour),
		item("i1", itinerary.InsuranceDetails{}, time.Hour),
	}

	assert.Empty(t, evaluate(items, fiveDayTrip()))
}

func TestEvaluate_IDsMatchRuleTypes(t *testing.T) {
	trip := fiveDayTrip()
	trip.Travelers.Children = 1
	got := evaluate([]itinerary.Item{internationalFlight(time.Minute), stay(time.Minute)}, trip)

	seen := map[string]bool{}
	for _, s := range got {
		assert.Equal(t, string(s.Type), s.ID)
		assert.False(t, seen[s.ID], "duplicate %s", s.ID)
		assert.Equal(t, now, s.TriggeredAt)
		assert.Nil(t, s.ExpiresAt)
		seen[s.ID] = true
	}
}
