package bundling

import (
	"fmt"
	"sort"
	"time"

	"travelquote/internal/itinerary"
)

type SuggestionType string

const (
	SuggestMissingHotel     SuggestionType = "missing_hotel"
	SuggestMissingTransfer  SuggestionType = "missing_transfer"
	SuggestMissingCar       SuggestionType = "missing_car"
	SuggestMissingActivity  SuggestionType = "missing_activity"
	SuggestFamilyActivities SuggestionType = "family_activities"
	SuggestAddInsurance     SuggestionType = "add_insurance"
)

// Valid reports whether t names one of the bundling rules.
func (t SuggestionType) Valid() bool {
	switch t {
	case SuggestMissingHotel, SuggestMissingTransfer, SuggestMissingCar,
		SuggestMissingActivity, SuggestFamilyActivities, SuggestAddInsurance:
		return true
	}
	return false
}

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Rule thresholds on the time since the last item was added.
const (
	hotelPromptDelay    = 5 * time.Second
	activityPromptDelay = 10 * time.Second
	carMinTripDays      = 3
	insuranceMinItems   = 2
)

// BundleSuggestion is one recommended next product. Its ID is the rule type,
// so re-evaluation replaces a suggestion rather than duplicating it.
type BundleSuggestion struct {
	ID          string         `json:"id"`
	Type        SuggestionType `json:"type"`
	Priority    Priority       `json:"priority"`
	TargetTab   itinerary.Kind `json:"target_tab"`
	Title       string         `json:"title"`
	Reason      string         `json:"reason"`
	Benefit     string         `json:"benefit"`
	TriggeredAt time.Time      `json:"triggered_at"`
	ExpiresAt   *time.Time     `json:"expires_at,omitempty"`
}

// Expired reports whether the suggestion has an expiry at or before now.
func (s BundleSuggestion) Expired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}

// suggestionText is the display text of one rule.
type suggestionText struct {
	title, reason, benefit string
}

type rule struct {
	kind     SuggestionType
	priority Priority
	target   itinerary.Kind
	applies  func(TripContext) bool
	text     func(TripContext) suggestionText
}

// rules is evaluated in this order; ties in priority keep it.
var rules = []rule{
	{
		kind:     SuggestMissingHotel,
		priority: PriorityHigh,
		target:   itinerary.KindHotel,
		applies: func(c TripContext) bool {
			return c.HasFlight() && !c.HasHotel() && c.SinceLastAdd >= hotelPromptDelay
		},
		text: func(c TripContext) suggestionText {
			return suggestionText{
				title:   "Add accommodation" + in(c.Destination),
				reason:  "The quote has flights but nowhere to stay.",
				benefit: "Bundling a hotel with the flight usually lowers the package price.",
			}
		},
	},
	{
		kind:     SuggestMissingTransfer,
		priority: PriorityMedium,
		target:   itinerary.KindTransfer,
		applies: func(c TripContext) bool {
			return c.HasFlight() && c.IsInternational && !c.HasTransfer()
		},
		text: func(c TripContext) suggestionText {
			return suggestionText{
				title:   "Arrange an airport transfer",
				reason:  "International arrivals are easier with a driver waiting.",
				benefit: "Avoids taxi queues and currency hassles on arrival.",
			}
		},
	},
	{
		kind:     SuggestMissingCar,
		priority: PriorityLow,
		target:   itinerary.KindCar,
		applies: func(c TripContext) bool {
			return c.TripDays >= carMinTripDays && !c.HasCar() && c.HasHotel() && !c.HasActivity()
		},
		text: func(c TripContext) suggestionText {
			return suggestionText{
				title:   "Offer a rental car",
				reason:  fmt.Sprintf("A %d day stay with no activities planned leaves room to explore.", c.TripDays),
				benefit: "Gives the travelers freedom to plan their own day trips.",
			}
		},
	},
	{
		kind:     SuggestMissingActivity,
		priority: PriorityMedium,
		target:   itinerary.KindActivity,
		applies: func(c TripContext) bool {
			return c.HasHotel() && !c.HasActivity() && c.SinceLastAdd >= activityPromptDelay
		},
		text: func(c TripContext) suggestionText {
			return suggestionText{
				title:   "Suggest things to do" + in(c.Destination),
				reason:  "The stay is booked but no experiences are planned.",
				benefit: "Tours and tickets raise the value of the quote.",
			}
		},
	},
	{
		kind:     SuggestFamilyActivities,
		priority: PriorityMedium,
		target:   itinerary.KindActivity,
		applies: func(c TripContext) bool {
			return (c.Travelers.Children > 0 || c.Travelers.Infants > 0) && !c.HasActivity()
		},
		text: func(c TripContext) suggestionText {
			return suggestionText{
				title:   "Add family friendly activities",
				reason:  fmt.Sprintf("The party includes %s.", youngTravelers(c.Travelers)),
				benefit: "Kid friendly plans keep the whole group happy.",
			}
		},
	},
	{
		kind:     SuggestAddInsurance,
		priority: PriorityLow,
		target:   itinerary.KindInsurance,
		applies: func(c TripContext) bool {
			return c.IsInternational && !c.HasInsurance() && c.ItemCount >= insuranceMinItems
		},
		text: func(c TripContext) suggestionText {
			return suggestionText{
				title:   "Protect the trip with travel insurance",
				reason:  "International trips carry more risk of disruption.",
				benefit: "Covers cancellations, medical costs and lost luggage.",
			}
		},
	},
}

// Evaluate runs every rule against the context and returns the suggestions
// that fire, high priority first. It keeps no state between calls.
func Evaluate(c TripContext, now time.Time) []BundleSuggestion {
	out := make([]BundleSuggestion, 0, len(rules))
	for _, r := range rules {
		if !r.applies(c) {
			continue
		}
		text := r.text(c)
		out = append(out, BundleSuggestion{
			ID:          string(r.kind),
			Type:        r.kind,
			Priority:    r.priority,
			TargetTab:   r.target,
			Title:       text.title,
			Reason:      text.reason,
			Benefit:     text.benefit,
			TriggeredAt: now,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.rank() < out[j].Priority.rank()
	})
	return out
}

func in(destination string) string {
	if destination == "" {
		return ""
	}
	return " in " + destination
}

func youngTravelers(t itinerary.Travelers) string {
	switch {
	case t.Children > 0 && t.Infants > 0:
		return fmt.Sprintf("%d children and %d infants", t.Children, t.Infants)
	case t.Children > 0:
		return fmt.Sprintf("%d children", t.Children)
	default:
		return fmt.Sprintf("%d infants", t.Infants)
	}
}
