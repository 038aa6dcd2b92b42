package models

// Trip is a directed route between two stops, operated by one cab of one
// agency. Every creation produces a to/fro pair sharing cab, agency, fare
// and journey time.
type Trip struct {
	ID           int64 `json:"id"`
	Fare         int64 `json:"fare"`
	JourneyTime  int   `json:"journey_time"`
	SourceStopID int64 `json:"source_stop_id"`
	DestStopID   int64 `json:"dest_stop_id"`
	CabID        int64 `json:"cab_id"`
	AgencyID     int64 `json:"agency_id"`
}

// TripSchedule is a dated instance of a trip. Capacity is frozen from the
// cab at creation; seats_claimed only ever moves through the claim/release
// statements and stays within [0, capacity].
type TripSchedule struct {
	ID           int64  `json:"id"`
	TripID       int64  `json:"trip_id"`
	TripDate     string `json:"trip_date"`
	Capacity     int    `json:"capacity"`
	SeatsClaimed int    `json:"seats_claimed"`
}

// AvailableSeats reports remaining capacity as of the loaded snapshot.
func (s TripSchedule) AvailableSeats() int {
	return s.Capacity - s.SeatsClaimed
}
