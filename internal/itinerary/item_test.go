package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_UnmarshalJSON_SelectsPayloadByKind(t *testing.T) {
	data := `[
		{"id":"f1","kind":"flight","price":{"amount":420,"currency":"USD"},"date":"2026-06-01",
		 "details":{"origin":"JFK","destination":"CDG","departure_time":"10:00","arrival_time":"22:00"}},
		{"id":"h1","kind":"hotel","date":"2026-06-02","details":{"check_in":"2026-06-02","check_out":"2026-06-06"}},
		{"id":"a1","kind":"activity","date":"2026-06-03","details":{"start_time":"09:00","duration":"3 hours"}},
		{"id":"i1","kind":"insurance"}
	]`

	var items []Item
	require.NoError(t, json.Unmarshal([]byte(data), &items))
	require.Len(t, items, 4)

	f, ok := items[0].Details.(FlightDetails)
	require.True(t, ok)
	assert.Equal(t, "CDG", f.Destination)
	assert.Equal(t, 420.0, items[0].Price.Amount)

	assert.Equal(t, KindHotel, items[1].Kind())
	assert.Equal(t, "3 hours", items[2].Details.(ActivityDetails).Duration)
	assert.Equal(t, InsuranceDetails{}, items[3].Details)
}

func TestItem_UnmarshalJSON_UnknownKind(t *testing.T) {
	var item Item
	err := json.Unmarshal([]byte(`{"id":"z1","kind":"cruise"}`), &item)

	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown item kind "cruise"`)
}

func TestItem_MarshalJSON_WritesDiscriminator(t *testing.T) {
	item := transfer("t1", "2026-06-01", "09:00")

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	var back Item
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Contains(t, string(raw), `"kind":"transfer"`)
	assert.Equal(t, item, back)
}

func TestTravelers_Normalized(t *testing.T) {
	assert.Equal(t, Travelers{Adults: 1}, Travelers{}.Normalized())
	assert.Equal(t, Travelers{Adults: 1}, Travelers{Adults: -2}.Normalized())
	assert.Equal(t, Travelers{Children: 2}, Travelers{Children: 2}.Normalized())
}

func TestTripMetadata_DateRange(t *testing.T) {
	_, _, ok := TripMetadata{StartDate: "2026-06-01", EndDate: "2026-06-05"}.DateRange()
	assert.True(t, ok)

	_, _, ok = TripMetadata{StartDate: "2026-06-05", EndDate: "2026-06-01"}.DateRange()
	assert.False(t, ok)

	_, _, ok = TripMetadata{StartDate: "soon"}.DateRange()
	assert.False(t, ok)
}
