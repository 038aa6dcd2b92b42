package models

// Ticket is an append-only ledger record. Seat numbers are claim ordinals
// (0-indexed), never reassigned after a release.
type Ticket struct {
	ID          int64  `json:"id"`
	ScheduleID  int64  `json:"schedule_id"`
	SeatNumber  int    `json:"seat_number"`
	PassengerID int64  `json:"passenger_id"`
	JourneyDate string `json:"journey_date"`
	Cancellable bool   `json:"cancellable"`
}
