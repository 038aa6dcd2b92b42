package models

// Agency operates cabs on routes. Code is generated at creation and unique.
type Agency struct {
	ID      int64  `json:"id"`
	Code    string `json:"code"`
	Name    string `json:"name"`
	Details string `json:"details"`
	OwnerID int64  `json:"owner_id"`
}

// Cab supplies the capacity copied onto schedules at creation time.
type Cab struct {
	ID       int64  `json:"id"`
	Code     string `json:"code"`
	Capacity int    `json:"capacity"`
	Make     string `json:"make"`
	AgencyID int64  `json:"agency_id"`
}
