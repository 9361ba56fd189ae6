package itinerary

import (
	"encoding/json"
	"fmt"
	"time"
)

type Kind string

const (
	KindFlight    Kind = "flight"
	KindHotel     Kind = "hotel"
	KindCar       Kind = "car"
	KindActivity  Kind = "activity"
	KindTransfer  Kind = "transfer"
	KindInsurance Kind = "insurance"
	KindCustom    Kind = "custom"
)

// Kinds lists every item kind in display order.
var Kinds = []Kind{KindFlight, KindHotel, KindCar, KindActivity, KindTransfer, KindInsurance, KindCustom}

// Layouts for the textual date and clock fields carried by items.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

type Price struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Details is the kind specific payload of an Item. The set of implementations
// is closed; the kind of an item is always the kind of its payload.
type Details interface {
	Kind() Kind
	isDetails()
}

type FlightDetails struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
	Airline       string `json:"airline,omitempty"`
	FlightNumber  string `json:"flight_number,omitempty"`
}

type HotelDetails struct {
	Name     string `json:"name,omitempty"`
	CheckIn  string `json:"check_in,omitempty"`
	CheckOut string `json:"check_out,omitempty"`
	RoomType string `json:"room_type,omitempty"`
}

type CarDetails struct {
	Company     string `json:"company,omitempty"`
	PickupDate  string `json:"pickup_date,omitempty"`
	DropoffDate string `json:"dropoff_date,omitempty"`
}

type ActivityDetails struct {
	Name      string `json:"name,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

type TransferDetails struct {
	PickupTime      string `json:"pickup_time,omitempty"`
	PickupLocation  string `json:"pickup_location,omitempty"`
	DropoffLocation string `json:"dropoff_location,omitempty"`
}

type InsuranceDetails struct {
	Provider string `json:"provider,omitempty"`
	Plan     string `json:"plan,omitempty"`
}

type CustomDetails struct {
	Title string `json:"title,omitempty"`
	Notes string `json:"notes,omitempty"`
}

func (FlightDetails) Kind() Kind    { return KindFlight }
func (HotelDetails) Kind() Kind     { return KindHotel }
func (CarDetails) Kind() Kind       { return KindCar }
func (ActivityDetails) Kind() Kind  { return KindActivity }
func (TransferDetails) Kind() Kind  { return KindTransfer }
func (InsuranceDetails) Kind() Kind { return KindInsurance }
func (CustomDetails) Kind() Kind    { return KindCustom }

func (FlightDetails) isDetails()    {}
func (HotelDetails) isDetails()     {}
func (CarDetails) isDetails()       {}
func (ActivityDetails) isDetails()  {}
func (TransferDetails) isDetails()  {}
func (InsuranceDetails) isDetails() {}
func (CustomDetails) isDetails()    {}

// Item is one bookable unit of a quote.
type Item struct {
	ID        string
	Price     Price
	Date      string
	CreatedAt time.Time
	SortOrder int
	Details   Details
}

// Kind returns the kind of the payload, or "" for an item without one.
func (i Item) Kind() Kind {
	if i.Details == nil {
		return ""
	}
	return i.Details.Kind()
}

type itemJSON struct {
	ID        string          `json:"id"`
	Kind      Kind            `json:"kind"`
	Price     Price           `json:"price"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
	SortOrder int             `json:"sort_order"`
	Details   json.RawMessage `json:"details,omitempty"`
}

func (i Item) MarshalJSON() ([]byte, error) {
	var details json.RawMessage
	if i.Details != nil {
		raw, err := json.Marshal(i.Details)
		if err != nil {
			return nil, fmt.Errorf("marshal %s details: %w", i.Kind(), err)
		}
		details = raw
	}

	return json.Marshal(itemJSON{
		ID:        i.ID,
		Kind:      i.Kind(),
		Price:     i.Price,
		Date:      i.Date,
		CreatedAt: i.CreatedAt,
		SortOrder: i.SortOrder,
		Details:   details,
	})
}

func (i *Item) UnmarshalJSON(data []byte) error {
	var raw itemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	details, err := decodeDetails(raw.Kind, raw.Details)
	if err != nil {
		return fmt.Errorf("item %q: %w", raw.ID, err)
	}

	*i = Item{
		ID:        raw.ID,
		Price:     raw.Price,
		Date:      raw.Date,
		CreatedAt: raw.CreatedAt,
		SortOrder: raw.SortOrder,
		Details:   details,
	}
	return nil
}

func decodeDetails(kind Kind, raw json.RawMessage) (Details, error) {
	switch kind {
	case KindFlight:
		return decodeInto[FlightDetails](raw)
	case KindHotel:
		return decodeInto[HotelDetails](raw)
	case KindCar:
		return decodeInto[CarDetails](raw)
	case KindActivity:
		return decodeInto[ActivityDetails](raw)
	case KindTransfer:
		return decodeInto[TransferDetails](raw)
	case KindInsurance:
		return decodeInto[InsuranceDetails](raw)
	case KindCustom:
		return decodeInto[CustomDetails](raw)
	default:
		return nil, fmt.Errorf("unknown item kind %q", kind)
	}
}

func decodeInto[T Details](raw json.RawMessage) (Details, error) {
	var d T
	if len(raw) == 0 || string(raw) == "null" {
		return d, nil
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode %s details: %w", d.Kind(), err)
	}
	return d, nil
}

// Travelers counts the people on the trip.
type Travelers struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Normalized defaults an empty party to a single adult.
func (t Travelers) Normalized() Travelers {
	n := Travelers{Adults: max(t.Adults, 0), Children: max(t.Children, 0), Infants: max(t.Infants, 0)}
	if n.Adults+n.Children+n.Infants == 0 {
		n.Adults = 1
	}
	return n
}

func (t Travelers) Total() int {
	return t.Adults + t.Children + t.Infants
}

// TripMetadata is the quote level information the agent fills in next to the items.
type TripMetadata struct {
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Travelers   Travelers `json:"travelers"`
	ClientName  string    `json:"client_name,omitempty"`
}

// DateRange parses the trip dates. ok is false when either is missing or
// malformed, or when the end precedes the start.
func (m TripMetadata) DateRange() (start, end time.Time, ok bool) {
	start, err := time.Parse(DateLayout, m.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(DateLayout, m.EndDate)
	if err != nil || end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}
