package itinerary

import "time"

var created = time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)

func flight(id, date, dep, arr string) Item {
	return Item{ID: id, Date: date, CreatedAt: created, Details: FlightDetails{
		Origin: "JFK", Destination: "LHR", DepartureTime: dep, ArrivalTime: arr,
	}}
}

func activity(id, date, start, duration string) Item {
	return Item{ID: id, Date: date, CreatedAt: created, Details: ActivityDetails{
		Name: "Walking tour", StartTime: start, Duration: duration,
	}}
}

func transfer(id, date, pickup string) Item {
	return Item{ID: id, Date: date, CreatedAt: created, Details: TransferDetails{PickupTime: pickup}}
}

func hotel(id, checkIn, checkOut string) Item {
	return Item{ID: id, Date: checkIn, CreatedAt: created, Details: HotelDetails{
		Name: "Harbour Inn", CheckIn: checkIn, CheckOut: checkOut,
	}}
}

func at(date, clock string) time.Time {
	t, err := time.Parse(DateLayout+" "+ClockLayout, date+" "+clock)
	if err != nil {
		panic(err)
	}
	return t
}
