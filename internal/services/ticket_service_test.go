package services

import "testing"

func TestGenerateETicket(t *testing.T) {
	loader := func(id int64) (ticketDocData, error) {
		return ticketDocData{
			TicketID:      id,
			SeatNumber:    0,
			PassengerName: "Tester",
			JourneyDate:   "2024-06-01",
			SourceStop:    "CityA",
			DestStop:      "CityB",
			AgencyName:    "Agency One",
			CabCode:       "CAB1",
			Fare:          150,
		}, nil
	}

	svc := TicketService{Loader: loader}

	pdf, filename, err := svc.GenerateETicket(1)
	if err != nil {
		t.Fatalf("GenerateETicket returned error: %v", err)
	}
	if len(pdf) == 0 || filename == "" {
		t.Fatalf("GenerateETicket returned empty data")
	}
}
