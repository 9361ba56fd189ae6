package scoring

import (
	"fmt"
	"math"
	"strings"

	"travelquote/internal/itinerary"
)

const (
	experienceWeight   = 30
	convenienceWeight  = 25
	priceWeight        = 25
	completenessWeight = 20
)

// WellOptimized is the tip shown when no metric scores below tipThreshold.
const WellOptimized = "This quote is well optimized."

const tipThreshold = 60

type MetricName string

const (
	MetricExperience   MetricName = "experience"
	MetricConvenience  MetricName = "convenience"
	MetricPriceBalance MetricName = "price_balance"
	MetricCompleteness MetricName = "completeness"
)

type Metric struct {
	Name    MetricName `json:"name"`
	Label   string     `json:"label"`
	Score   int        `json:"score"`
	Weight  int        `json:"weight"`
	Insight string     `json:"insight"`
}

type QuoteScore struct {
	Metrics []Metric `json:"metrics"`
	Overall int      `json:"overall"`
	Grade   string   `json:"grade"`
	Summary string   `json:"summary"`
	Tip     string   `json:"tip"`
}

// Pricing is the computed quote total the caller already shows the agent.
type Pricing struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
}

// PricingFromItems sums item prices. The currency is the first one set.
func PricingFromItems(items []itinerary.Item) Pricing {
	var p Pricing
	for _, it := range items {
		p.Total += it.Price.Amount
		if p.Currency == "" {
			p.Currency = it.Price.Currency
		}
	}
	return p
}

var summaries = map[MetricName]string{
	MetricExperience:   "A rich itinerary with plenty to do on the ground.",
	MetricConvenience:  "Ground logistics are well covered for a smooth trip.",
	MetricPriceBalance: "Pricing sits in a healthy range for the length of stay.",
	MetricCompleteness: "All the essentials of the trip are in place.",
}

// Score grades the quote. It is a pure function of its inputs.
func Score(items []itinerary.Item, trip itinerary.TripMetadata, pricing Pricing) QuoteScore {
	f := collect(items, trip)

	return newQuoteScore([]Metric{
		experience(f),
		convenience(f),
		priceBalance(f, pricing),
		completeness(f),
	})
}

func newQuoteScore(metrics []Metric) QuoteScore {
	weighted := 0
	for i := range metrics {
		metrics[i].Score = clamp(metrics[i].Score)
		weighted += metrics[i].Score * metrics[i].Weight
	}
	overall := clamp(int(math.Round(float64(weighted) / 100)))

	high, low := metrics[0], metrics[0]
	for _, m := range metrics[1:] {
		if m.Score > high.Score {
			high = m
		}
		if m.Score < low.Score {
			low = m
		}
	}

	tip := WellOptimized
	if low.Score < tipThreshold {
		tip = low.Insight
	}

	return QuoteScore{
		Metrics: metrics,
		Overall: overall,
		Grade:   Grade(overall),
		Summary: summaries[high.Name],
		Tip:     tip,
	}
}

// Grade buckets an overall score into a letter grade.
func Grade(overall int) string {
	switch {
	case overall >= 90:
		return "A+"
	case overall >= 80:
		return "A"
	case overall >= 70:
		return "B+"
	case overall >= 60:
		return "B"
	case overall >= 50:
		return "C"
	default:
		return "D"
	}
}

// Weights returns the weight of every metric. They sum to 100.
func Weights() map[MetricName]int {
	return map[MetricName]int{
		MetricExperience:   experienceWeight,
		MetricConvenience:  convenienceWeight,
		MetricPriceBalance: priceWeight,
		MetricCompleteness: completenessWeight,
	}
}

type facts struct {
	nights    int
	counts    map[itinerary.Kind]int
	hasClient bool
	hasDates  bool
}

func (f facts) has(k itinerary.Kind) bool { return f.counts[k] > 0 }

func collect(items []itinerary.Item, trip itinerary.TripMetadata) facts {
	f := facts{
		counts:    make(map[itinerary.Kind]int, len(itinerary.Kinds)),
		hasClient: strings.TrimSpace(trip.ClientName) != "",
	}

	hotelNights := 0
	for _, it := range items {
		f.counts[it.Kind()]++
		if it.Kind() != itinerary.KindHotel {
			continue
		}
		if span, ok := itinerary.ExtractTimeRange(it); ok {
			hotelNights += wholeDays(span.End.Sub(span.Start).Hours())
		}
	}

	start, end, ok := trip.DateRange()
	f.hasDates = ok
	switch {
	case ok:
		f.nights = wholeDays(end.Sub(start).Hours())
	default:
		f.nights = hotelNights
	}
	return f
}

func wholeDays(hours float64) int {
	return max(int(math.Round(hours/24)), 0)
}

func experience(f facts) Metric {
	activities := f.counts[itinerary.KindActivity]
	bonus := 0.0
	if activities > 0 {
		bonus = 30
	}

	score := bonus
	if f.nights > 0 {
		score = float64(activities)/float64(f.nights)*200 + bonus
	}

	insight := "Add tours or experiences to fill the stay."
	if activities > 0 && f.nights > 0 {
		insight = fmt.Sprintf("%d activities over %d nights; a few more would round out the trip.", activities, f.nights)
	}

	return Metric{
		Name:    MetricExperience,
		Label:   "Experience richness",
		Score:   int(math.Round(math.Min(100, score))),
		Weight:  experienceWeight,
		Insight: insight,
	}
}

func convenience(f facts) Metric {
	score := 0
	var missing []string
	if f.has(itinerary.KindTransfer) {
		score += 40
	} else {
		missing = append(missing, "a transfer")
	}
	if f.has(itinerary.KindCar) {
		score += 30
	} else {
		missing = append(missing, "a rental car")
	}
	if f.has(itinerary.KindInsurance) {
		score += 30
	} else {
		missing = append(missing, "insurance")
	}

	insight := "Transport and cover are all arranged."
	if len(missing) > 0 {
		insight = "Consider adding " + joinOr(missing) + " to smooth the trip."
	}

	return Metric{
		Name:    MetricConvenience,
		Label:   "Convenience",
		Score:   score,
		Weight:  convenienceWeight,
		Insight: insight,
	}
}

func priceBalance(f facts, pricing Pricing) Metric {
	perNight := pricing.Total / float64(max(f.nights, 1))

	var score int
	var insight string
	switch {
	case perNight < 100:
		score = 40
		insight = "The nightly cost looks low; check that the hotel quality meets expectations."
	case perNight <= 500:
		score = 100
		insight = "The nightly cost is in the sweet spot."
	case perNight <= 800:
		score = 80
		insight = "The nightly cost is on the high side of typical packages."
	default:
		score = 60
		insight = "The nightly cost is high; a better value hotel could lower it."
	}

	return Metric{
		Name:    MetricPriceBalance,
		Label:   "Price balance",
		Score:   score,
		Weight:  priceWeight,
		Insight: insight,
	}
}

func completeness(f facts) Metric {
	checks := []struct {
		ok    bool
		label string
	}{
		{f.has(itinerary.KindFlight), "a flight"},
		{f.has(itinerary.KindHotel), "a hotel"},
		{f.hasClient, "the client name"},
		{f.hasDates, "the trip dates"},
		{f.has(itinerary.KindTransfer) || f.has(itinerary.KindCar), "ground transport"},
	}

	done := 0
	var missing []string
	for _, c := range checks {
		if c.ok {
			done++
			continue
		}
		missing = append(missing, c.label)
	}

	insight := "Every essential is filled in."
	if len(missing) > 0 {
		insight = "Still missing " + joinAnd(missing) + "."
	}

	return Metric{
		Name:    MetricCompleteness,
		Label:   "Completeness",
		Score:   int(math.Round(float64(done) / float64(len(checks)) * 100)),
		Weight:  completenessWeight,
		Insight: insight,
	}
}

func clamp(v int) int {
	return min(max(v, 0), 100)
}

func joinOr(parts []string) string  { return join(parts, "or") }
func joinAnd(parts []string) string { return join(parts, "and") }

func join(parts []string, last string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return strings.Join(parts[:len(parts)-1], ", ") + " " + last + " " + parts[len(parts)-1]
	}
}
