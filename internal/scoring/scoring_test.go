package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelquote/internal/itinerary"
)

var created = time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

func newItem(id string, price float64, details itinerary.Details) itinerary.Item {
	return itinerary.Item{
		ID:        id,
		Price:     itinerary.Price{Amount: price, Currency: "USD"},
		Date:      "2026-08-01",
		CreatedAt: created,
		Details:   details,
	}
}

func trip(start, end string) itinerary.TripMetadata {
	return itinerary.TripMetadata{
		Destination: "Lisbon",
		StartDate:   start,
		EndDate:     end,
		Travelers:   itinerary.Travelers{Adults: 2},
		ClientName:  "Ana Souza",
	}
}

func metric(t *testing.T, s QuoteScore, name MetricName) Metric {
	t.Helper()
	for _, m := range s.Metrics {
		if m.Name == name {
			return m
		}
	}
	require.Failf(t, "metric not found", "%s", name)
	return Metric{}
}

func TestScore_FullQuote(t *testing.T) {
	items := []itinerary.Item{
		newItem("f1", 900, itinerary.FlightDetails{Origin: "JFK", Destination: "LIS", DepartureTime: "18:00", ArrivalTime: "06:00"}),
		newItem("h1", 800, itinerary.HotelDetails{CheckIn: "2026-08-01", CheckOut: "2026-08-06"}),
		newItem("t1", 100, itinerary.TransferDetails{PickupTime: "08:00"}),
		newItem("a1", 100, itinerary.ActivityDetails{StartTime: "10:00", Duration: "3 hours"}),
		newItem("a2", 100, itinerary.ActivityDetails{}),
	}

	got := Score(items, trip("2026-08-01", "2026-08-06"), PricingFromItems(items))

	assert.Equal(t, 100, metric(t, got, MetricExperience).Score)
	assert.Equal(t, 40, metric(t, got, MetricConvenience).Score)
	assert.Equal(t, 100, metric(t, got, MetricPriceBalance).Score)
	assert.Equal(t, 100, metric(t, got, MetricCompleteness).Score)
	assert.Equal(t, 85, got.Overall)
	assert.Equal(t, "A", got.Grade)
	assert.Equal(t, summaries[MetricExperience], got.Summary)
	assert.Equal(t, "Consider adding a rental car or insurance to smooth the trip.", got.Tip)
}

func TestScore_EmptyQuote(t *testing.T) {
	got := Score(nil, itinerary.TripMetadata{}, Pricing{})

	assert.Equal(t, 0, metric(t, got, MetricExperience).Score)
	assert.Equal(t, 0, metric(t, got, MetricConvenience).Score)
	assert.Equal(t, 40, metric(t, got, MetricPriceBalance).Score)
	assert.Equal(t, 0, metric(t, got, MetricCompleteness).Score)
	assert.Equal(t, 10, got.Overall)
	assert.Equal(t, "D", got.Grade)
	assert.Equal(t, summaries[MetricPriceBalance], got.Summary)
	assert.Equal(t, "Add tours or experiences to fill the stay.", got.Tip)
}

func TestScore_NightsFromHotelsWhenTripDatesMissing(t *testing.T) {
	items := []itinerary.Item{
		newItem("h1", 600, itinerary.HotelDetails{CheckIn: "2026-08-01", CheckOut: "2026-08-04"}),
		newItem("a1", 0, itinerary.ActivityDetails{}),
	}

	got := Score(items, itinerary.TripMetadata{}, PricingFromItems(items))

	// 1/3*200 + 30
	assert.Equal(t, 97, metric(t, got, MetricExperience).Score)
	// 600 over 3 nights
	assert.Equal(t, 100, metric(t, got, MetricPriceBalance).Score)
}

func TestScore_ExperienceBonusWithoutNights(t *testing.T) {
	items := []itinerary.Item{newItem("a1", 50, itinerary.ActivityDetails{})}

	got := Score(items, itinerary.TripMetadata{}, PricingFromItems(items))

	assert.Equal(t, 30, metric(t, got, MetricExperience).Score)
}

func TestScore_ConvenienceIsAdditive(t *testing.T) {
	items := []itinerary.Item{
		newItem("t1", 0, itinerary.TransferDetails{}),
		newItem("c1", 0, itinerary.CarDetails{}),
		newItem("i1", 0, itinerary.InsuranceDetails{}),
	}

	got := Score(items, trip("2026-08-01", "2026-08-03"), Pricing{})

	assert.Equal(t, 100, metric(t, got, MetricConvenience).Score)
}

func TestScore_PriceBuckets(t *testing.T) {
	tests := []struct {
		total float64
		want  int
	}{
		{99.99, 40},
		{100, 100},
		{500, 100},
		{500.01, 80},
		{800, 80},
		{800.01, 60},
		{5000, 60},
	}

	for _, tt := range tests {
		got := Score(nil, trip("2026-08-01", "2026-08-02"), Pricing{Total: tt.total})
		assert.Equal(t, tt.want, metric(t, got, MetricPriceBalance).Score, "total %.2f", tt.total)
	}
}

func TestScore_CompletenessFractions(t *testing.T) {
	items := []itinerary.Item{newItem("f1", 0, itinerary.FlightDetails{})}
	meta := itinerary.TripMetadata{StartDate: "2026-08-01", EndDate: "2026-08-05"}

	got := Score(items, meta, Pricing{})

	m := metric(t, got, MetricCompleteness)
	assert.Equal(t, 40, m.Score)
	assert.Equal(t, "Still missing a hotel, the client name and ground transport.", m.Insight)
}

func TestScore_Bounds(t *testing.T) {
	var items []itinerary.Item
	for i := 0; i < 40; i++ {
		items = append(items, newItem("a", 10000, itinerary.ActivityDetails{}))
	}

	cases := []struct {
		items   []itinerary.Item
		meta    itinerary.TripMetadata
		pricing Pricing
	}{
		{items, trip("2026-08-01", "2026-08-02"), PricingFromItems(items)},
		{nil, trip("2026-08-06", "2026-08-01"), Pricing{Total: -400}},
		{items, itinerary.TripMetadata{StartDate: "bad"}, Pricing{}},
	}

	for _, c := range cases {
		got := Score(c.items, c.meta, c.pricing)
		assert.GreaterOrEqual(t, got.Overall, 0)
		assert.LessOrEqual(t, got.Overall, 100)
		for _, m := range got.Metrics {
			assert.GreaterOrEqual(t, m.Score, 0, m.Name)
			assert.LessOrEqual(t, m.Score, 100, m.Name)
		}
	}
}

func TestWeightsSumTo100(t *testing.T) {
	total := 0
	for _, w := range Weights() {
		total += w
	}
	assert.Equal(t, 100, total)

	got := Score(nil, itinerary.TripMetadata{}, Pricing{})
	total = 0
	for _, m := range got.Metrics {
		total += m.Weight
	}
	assert.Equal(t, 100, total)
}

func TestGrade_EveryScoreHasOneGrade(t *testing.T) {
	want := func(v int) string {
		switch {
		case v >= 90:
			return "A+"
		case v >= 80:
			return "A"
		case v >= 70:
			return "B+"
		case v >= 60:
			return "B"
		case v >= 50:
			return "C"
		}
		return "D"
	}

	for v := 0; v <= 100; v++ {
		assert.Equal(t, want(v), Grade(v), "score %d", v)
	}

	assert.Equal(t, "A+", Grade(90))
	assert.Equal(t, "A", Grade(89))
	assert.Equal(t, "C", Grade(50))
	assert.Equal(t, "D", Grade(49))
}

func uniform(score int) []Metric {
	return []Metric{
		{Name: MetricExperience, Score: score, Weight: experienceWeight, Insight: "experience"},
		{Name: MetricConvenience, Score: score, Weight: convenienceWeight, Insight: "convenience"},
		{Name: MetricPriceBalance, Score: score, Weight: priceWeight, Insight: "price"},
		{Name: MetricCompleteness, Score: score, Weight: completenessWeight, Insight: "completeness"},
	}
}

func TestNewQuoteScore_UniformMetrics(t *testing.T) {
	top := newQuoteScore(uniform(100))
	assert.Equal(t, 100, top.Overall)
	assert.Equal(t, "A+", top.Grade)
	assert.Equal(t, WellOptimized, top.Tip)

	low := newQuoteScore(uniform(45))
	assert.Equal(t, 45, low.Overall)
	assert.Equal(t, "D", low.Grade)
	// Ties resolve to the first metric.
	assert.Equal(t, "experience", low.Tip)
	assert.Equal(t, summaries[MetricExperience], low.Summary)
}

func TestNewQuoteScore_TipOnlyBelowThreshold(t *testing.T) {
	metrics := uniform(80)
	metrics[2].Score = 60

	got := newQuoteScore(metrics)

	assert.Equal(t, WellOptimized, got.Tip)
	assert.Equal(t, 75, got.Overall)
}

func TestPricingFromItems(t *testing.T) {
	items := []itinerary.Item{
		{ID: "x", Price: itinerary.Price{Amount: 10}, Details: itinerary.CustomDetails{}},
		newItem("a", 20.5, itinerary.ActivityDetails{}),
	}

	assert.Equal(t, Pricing{Total: 30.5, Currency: "USD"}, PricingFromItems(items))
}
